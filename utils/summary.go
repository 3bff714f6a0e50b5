package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/slipsense/slip-ocr-service/dto"
)

// FormatSlipSummary renders a parsed slip into the human-readable Thai report
// sent back to the user. Presentation only; absent fields are shown as "-" or
// skipped.
func FormatSlipSummary(slip dto.ParsedSlip) string {
	if slip.Error != "" {
		return fmt.Sprintf("❌ ไม่สามารถสร้างสรุปได้: %s", slip.Error)
	}

	lines := []string{
		"📄 สรุปข้อมูลการทำรายการ",
		strings.Repeat("-", 30),
		"",
		"--- ข้อมูลผู้ทำรายการ ---",
		fmt.Sprintf("👤 จาก: %s", orDash(slip.Sender)),
		fmt.Sprintf("👥 ไปยัง: %s", orDash(slip.Recipient)),
		"",
		"--- รายละเอียดธุรกรรม ---",
	}

	if slip.Bank != "" {
		lines = append(lines, fmt.Sprintf("🏦 ธนาคาร: %s", slip.Bank))
	}
	if slip.Amount != "" {
		lines = append(lines, fmt.Sprintf("💰 จำนวนเงิน: %s บาท", formatAmount(slip.Amount)))
	}
	if slip.Date != "" {
		lines = append(lines, fmt.Sprintf("📅 วันที่: %s", slip.Date))
	}
	if slip.Time != "" {
		lines = append(lines, fmt.Sprintf("⏰ เวลา: %s น.", slip.Time))
	}
	if slip.Reference != "" {
		lines = append(lines, fmt.Sprintf("🔢 เลขที่อ้างอิง: %s", slip.Reference))
	}

	raw := slip.RawText
	if raw == "" {
		raw = "ไม่มีข้อมูล"
	}
	lines = append(lines,
		fmt.Sprintf("\n📝 ข้อความเต็มจากสลิป:\n```\n%s\n```", raw),
		"",
		strings.Repeat("-", 30),
		fmt.Sprintf("(สร้างเมื่อ: %s)", time.Now().Format("02/01/2006 15:04:05")),
	)

	return strings.Join(lines, "\n")
}

// formatAmount re-inserts thousands separators for display. The stored amount
// is already a plain two-fraction-digit decimal; anything unparseable is shown
// as-is.
func formatAmount(amount string) string {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return amount
	}
	fixed := d.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return groupThousands(intPart) + "." + fracPart
}

func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
