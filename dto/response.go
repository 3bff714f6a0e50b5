package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// SlipParseResponse is the full answer for one parsed upload or text.
type SlipParseResponse struct {
	RequestID string     `json:"request_id"`
	Slip      ParsedSlip `json:"slip"`
	Summary   string     `json:"summary"`
	// IsSlip distinguishes payment slips from other photographed documents.
	IsSlip bool `json:"is_slip"`
	// OcrConfidence is the mean Tesseract word confidence, 0 when the text
	// came from a PDF text layer or was submitted directly.
	OcrConfidence float64 `json:"ocr_confidence,omitempty"`
	// QRContent carries the decoded QR payload when the image held one.
	QRContent   string `json:"qr_content,omitempty"`
	ProcessedAt string `json:"processed_at"`
}
