package client

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// TesseractClient wraps Tesseract OCR for Thai/English slip screenshots.
type TesseractClient struct {
	dataPath  string
	languages []string
}

func NewTesseractClient(dataPath string, languages []string) *TesseractClient {
	if len(languages) == 0 {
		languages = []string{"tha", "eng"}
	}
	return &TesseractClient{
		dataPath:  dataPath,
		languages: languages,
	}
}

// ExtractTextFromFile extracts text from an uploaded image using Tesseract OCR.
func (tc *TesseractClient) ExtractTextFromFile(fileHeader *multipart.FileHeader) (string, error) {
	text, _, err := tc.ExtractTextAndQualityFromFile(fileHeader)
	return text, err
}

// ExtractTextAndQualityFromFile extracts text plus the mean word confidence
// from an uploaded image.
func (tc *TesseractClient) ExtractTextAndQualityFromFile(fileHeader *multipart.FileHeader) (string, float64, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	tempFile, err := tc.CreateTempFile(file, fileHeader.Filename)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile)

	return tc.ExtractTextAndQuality(tempFile)
}

// CreateTempFile creates a temporary file from uploaded content.
func (tc *TesseractClient) CreateTempFile(file multipart.File, filename string) (string, error) {
	ext := filepath.Ext(filename)
	tempFile, err := os.CreateTemp("", "slip-ocr-*"+ext)
	if err != nil {
		return "", err
	}
	defer tempFile.Close()

	if _, err := io.Copy(tempFile, file); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}

	return tempFile.Name(), nil
}

// ExtractTextAndQuality runs OCR on an image file on disk.
func (tc *TesseractClient) ExtractTextAndQuality(filePath string) (string, float64, error) {
	ocrPath := tc.preprocess(filePath)
	if ocrPath != filePath {
		defer os.Remove(ocrPath)
	}

	client := gosseract.NewClient()
	defer client.Close()

	client.SetTessdataPrefix(tc.dataPath)

	if err := client.SetLanguage(tc.languages...); err != nil {
		return "", 0, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImage(ocrPath); err != nil {
		return "", 0, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("failed to extract text: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Confidence is best-effort; the text alone is still usable.
		return text, 0, nil
	}

	var totalConf float64
	for _, box := range boxes {
		totalConf += box.Confidence
	}

	avgConf := 0.0
	if len(boxes) > 0 {
		avgConf = totalConf / float64(len(boxes))
	}

	return text, avgConf, nil
}

// preprocess grayscales the screenshot and upscales small ones before OCR.
// Chat-app thumbnails are often too small for Tesseract to read Thai glyphs.
// Returns the original path when preprocessing fails.
func (tc *TesseractClient) preprocess(filePath string) string {
	img, err := imaging.Open(filePath)
	if err != nil {
		return filePath
	}

	gray := imaging.Grayscale(img)
	if gray.Bounds().Dy() < 800 {
		gray = imaging.Resize(gray, 0, 1200, imaging.Lanczos)
	}

	tempFile, err := os.CreateTemp("", "slip-pre-*.png")
	if err != nil {
		return filePath
	}
	tempFile.Close()

	if err := imaging.Save(gray, tempFile.Name()); err != nil {
		os.Remove(tempFile.Name())
		return filePath
	}
	return tempFile.Name()
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}
