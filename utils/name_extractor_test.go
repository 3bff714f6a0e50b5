package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNameKeywordAnchored(t *testing.T) {
	text := "จาก: สมชาย\nไปยัง: สมหญิง"

	assert.Equal(t, "สมชาย", ParseName(text, []string{"จาก", "From", "ผู้โอน"}))
	assert.Equal(t, "สมหญิง", ParseName(text, []string{"ไปยัง", "ไปที่", "To", "ผู้รับเงิน", "ผู้รับ", "Recipient", "ถึง"}))
}

func TestParseNameWithHonorific(t *testing.T) {
	text := "จาก นาย สมชาย ใจดี\nx-1234-5"

	assert.Equal(t, "นาย สมชาย ใจดี", ParseName(text, []string{"จาก", "From", "ผู้โอน"}))
}

func TestParseNameRejectsBareHonorific(t *testing.T) {
	assert.Equal(t, "", ParseName("จาก คุณ", []string{"จาก", "From", "ผู้โอน"}))
}

func TestParseNameAbsent(t *testing.T) {
	assert.Equal(t, "", ParseName("โอนเงินสำเร็จ 100.00 บาท", []string{"จาก", "From", "ผู้โอน"}))
}

func TestFindStandaloneNameUsesPrecedingLineContext(t *testing.T) {
	text := "ผู้รับเงิน\nนาย สมชาย ใจดี xx-1234"

	got := FindStandaloneName(text, []string{"ผู้รับเงิน", "ผู้รับ", "To"})
	assert.Equal(t, "นาย สมชาย ใจดี", got)
}

func TestFindStandaloneNameNoContext(t *testing.T) {
	text := "ยอดเงินคงเหลือ\nนาย สมชาย ใจดี"

	assert.Equal(t, "", FindStandaloneName(text, []string{"ผู้รับเงิน", "ผู้รับ"}))
}

func TestFindNamesByAccountNumberNextLine(t *testing.T) {
	// Name line immediately followed by an account-number-shaped line.
	text := "โอนเงินสำเร็จ\nx-1234\nนาย สมชาย ใจดี\n1234567890\nธนาคารกรุงเทพ"

	names := FindNamesByAccountNumber(text)
	assert.Equal(t, []string{"นาย สมชาย ใจดี"}, names)
}

func TestFindNamesByAccountNumberTwoNames(t *testing.T) {
	text := "นาย สมชาย ใจดี\nx-1234-5\nนางสาว สมหญิง รักดี\nธนาคารกรุงเทพ\n1234567890"

	names := FindNamesByAccountNumber(text)
	assert.Equal(t, []string{"นาย สมชาย ใจดี", "นางสาว สมหญิง รักดี"}, names)
}

func TestFindNamesByAccountNumberSkipsClueLines(t *testing.T) {
	text := "ธนาคารกสิกรไทย\nx-1234-5"

	assert.Empty(t, FindNamesByAccountNumber(text))
}

func TestCleanOCRName(t *testing.T) {
	assert.Equal(t, "สมชาย", CleanOCRName(".ฺ าสมชาย"))
	assert.Equal(t, "", CleanOCRName(""))
	assert.Equal(t, "สมชาย ใจดี", CleanOCRName("สมชาย ใจดี"))
}
