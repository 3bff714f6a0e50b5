package service

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/slipsense/slip-ocr-service/client"
	"github.com/slipsense/slip-ocr-service/dto"
	"github.com/slipsense/slip-ocr-service/utils"
)

// SlipService turns an uploaded slip (image or PDF) or raw OCR text into the
// structured record, its summary, and an optional sheet row.
type SlipService struct {
	tesseractClient *client.TesseractClient
	pdfProcessor    PDFProcessor
	sheetsClient    *client.SheetsClient
	minTextLength   int
}

func NewSlipService(
	tesseractClient *client.TesseractClient,
	pdfProcessor PDFProcessor,
	sheetsClient *client.SheetsClient,
	minTextLength int,
) *SlipService {
	return &SlipService{
		tesseractClient: tesseractClient,
		pdfProcessor:    pdfProcessor,
		sheetsClient:    sheetsClient,
		minTextLength:   minTextLength,
	}
}

// ParseUpload OCRs one uploaded file and parses the result. PDFs try the text
// layer first and fall back to OCR over embedded images; images also get a QR
// decode attempt.
func (s *SlipService) ParseUpload(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.SlipParseResponse, error) {
	isPDF := strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf")

	var (
		text       string
		confidence float64
		qrContent  string
	)

	if isPDF {
		f, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}

		text, confidence, qrContent, err = s.processPDF(data)
		if err != nil {
			return nil, err
		}
	} else {
		f, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		tempFile, err := s.tesseractClient.CreateTempFile(f, fileHeader.Filename)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to create temp file: %w", err)
		}
		defer os.Remove(tempFile)

		text, confidence, err = s.tesseractClient.ExtractTextAndQuality(tempFile)
		if err != nil {
			return nil, fmt.Errorf("OCR extraction failed: %w", err)
		}

		if qr, err := DecodeQRFromFile(tempFile); err == nil {
			qrContent = qr
		}
	}

	resp := s.buildResponse(ctx, text, confidence)
	resp.QRContent = qrContent
	return resp, nil
}

// ParseText parses OCR text supplied directly by the caller.
func (s *SlipService) ParseText(ctx context.Context, text string) *dto.SlipParseResponse {
	return s.buildResponse(ctx, text, 0)
}

func (s *SlipService) processPDF(data []byte) (string, float64, string, error) {
	text, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		log.Printf("PDF text extraction failed: %v", err)
	}
	if len(strings.TrimSpace(text)) >= 20 {
		return text, 0, "", nil
	}

	// Scanned PDF or bare screenshot wrapper: OCR the embedded images.
	images, err := s.pdfProcessor.ExtractImages(data)
	if err != nil || len(images) == 0 {
		if err != nil {
			return "", 0, "", fmt.Errorf("failed to extract images from pdf: %w", err)
		}
		return text, 0, "", nil
	}

	var (
		combined  strings.Builder
		totalConf float64
		ocrCount  int
		qrContent string
	)
	for _, img := range images {
		tempImg, err := saveImageToTempFile(img)
		if err != nil {
			log.Printf("Failed to save pdf image: %v", err)
			continue
		}

		pageText, conf, err := s.tesseractClient.ExtractTextAndQuality(tempImg)
		if err == nil {
			combined.WriteString(pageText)
			combined.WriteString("\n")
			totalConf += conf
			ocrCount++
		}

		if qrContent == "" {
			if qr, qrErr := DecodeQRFromFile(tempImg); qrErr == nil {
				qrContent = qr
			}
		}
		os.Remove(tempImg)
	}

	avgConf := 0.0
	if ocrCount > 0 {
		avgConf = totalConf / float64(ocrCount)
	}
	return combined.String(), avgConf, qrContent, nil
}

func (s *SlipService) buildResponse(ctx context.Context, text string, confidence float64) *dto.SlipParseResponse {
	// Fewer than a handful of characters means the image was unreadable;
	// treat it the same as no input at all.
	if len([]rune(strings.TrimSpace(text))) < s.minTextLength {
		text = ""
	}

	slip := utils.ParsePaymentSlip(text)
	isSlip := !slip.IsError() && utils.LooksLikeSlip(text, slip)

	if isSlip && s.sheetsClient != nil {
		if err := s.sheetsClient.AppendSlip(ctx, slip); err != nil {
			// Sheet logging is best-effort; the parsed record still goes back.
			log.Printf("Failed to log slip to sheet: %v", err)
		}
	}

	return &dto.SlipParseResponse{
		RequestID:     uuid.NewString(),
		Slip:          slip,
		Summary:       utils.FormatSlipSummary(slip),
		IsSlip:        isSlip,
		OcrConfidence: confidence,
		ProcessedAt:   time.Now().Format(time.RFC3339),
	}
}

func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "slip-page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return tempFile.Name(), nil
}
