package dto

// ParsedSlip is the structured record extracted from one slip's OCR text.
// Every optional field is either a non-empty trimmed string or absent (empty
// and omitted from JSON) — never an empty JSON string. Amount, when present,
// is a plain decimal with exactly two fraction digits and no separators;
// Reference contains no whitespace. The record is read-only once built.
type ParsedSlip struct {
	Bank      string `json:"bank,omitempty"`
	Amount    string `json:"amount,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Sender    string `json:"sender,omitempty"`
	Recipient string `json:"recipient,omitempty"`
	Reference string `json:"reference,omitempty"`
	RawText   string `json:"raw_text,omitempty"`

	// NeedsReview marks records whose date components were found but failed
	// calendar validation; Date then carries the raw literal.
	NeedsReview bool `json:"needs_review,omitempty"`

	// Error is set only when no input text was supplied. An error record is
	// terminal: every other field is absent.
	Error string `json:"error,omitempty"`
}

// IsError reports whether this is the terminal no-input record.
func (p ParsedSlip) IsError() bool {
	return p.Error != ""
}
