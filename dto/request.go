package dto

// ParseTextRequest carries raw OCR text submitted directly, bypassing the OCR
// step. Text is allowed to be empty: the parser answers with its terminal
// error record rather than rejecting the request.
type ParseTextRequest struct {
	Text string `json:"text"`
}
