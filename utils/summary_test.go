package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slipsense/slip-ocr-service/dto"
)

func TestFormatSlipSummary(t *testing.T) {
	slip := dto.ParsedSlip{
		Bank:      "กสิกรไทย",
		Amount:    "1250.00",
		Date:      "15 มกราคม 2567",
		Time:      "14:30",
		Sender:    "นาย สมชาย ใจดี",
		Recipient: "นางสาว สมหญิง รักดี",
		Reference: "015123456789012",
		RawText:   "raw",
	}

	summary := FormatSlipSummary(slip)

	assert.Contains(t, summary, "1,250.00 บาท")
	assert.Contains(t, summary, "กสิกรไทย")
	assert.Contains(t, summary, "15 มกราคม 2567")
	assert.Contains(t, summary, "14:30 น.")
	assert.Contains(t, summary, "015123456789012")
	assert.Contains(t, summary, "raw")
}

func TestFormatSlipSummaryAbsentFields(t *testing.T) {
	summary := FormatSlipSummary(dto.ParsedSlip{RawText: "บางอย่าง"})

	assert.Contains(t, summary, "จาก: -")
	assert.Contains(t, summary, "ไปยัง: -")
	assert.NotContains(t, summary, "ธนาคาร:")
	assert.NotContains(t, summary, "จำนวนเงิน:")
}

func TestFormatSlipSummaryErrorRecord(t *testing.T) {
	summary := FormatSlipSummary(dto.ParsedSlip{Error: "no text supplied"})

	assert.True(t, strings.HasPrefix(summary, "❌"))
	assert.Contains(t, summary, "no text supplied")
}

func TestFormatAmountGrouping(t *testing.T) {
	assert.Equal(t, "1,234,567.89", formatAmount("1234567.89"))
	assert.Equal(t, "75.50", formatAmount("75.50"))
	assert.Equal(t, "not-a-number", formatAmount("not-a-number"))
}
