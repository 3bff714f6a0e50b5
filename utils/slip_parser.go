package utils

import (
	"log"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/slipsense/slip-ocr-service/dto"
)

// bankEntry pairs a canonical bank label with its recognition tokens:
// abbreviations, localized names and OCR-garbled variants with inserted
// spaces. Tested in declaration order, first hit wins.
type bankEntry struct {
	Name     string
	Keywords []string
}

var bankKeywords = []bankEntry{
	{"กรุงเทพ", []string{"BBL", "BBLA", "BANGKOK BANK", "ธนาคารกรุงเทพ", "กรุงเทพ"}},
	{"กสิกรไทย", []string{"KBANK", "KASIKORNBANK", "KASI", "KPLUS", "K+", "+", "MAKE", "MAKE by KBank", "ธนาคารกสิกรไทย", "กสิกรไทย", "กสิกร", "ร.กสิกรไทย", "ภ ส ก ร ไท ย"}},
	{"ไทยพาณิชย์", []string{"SCB", "SIAM COMMERCIAL BANK", "ธนาคารไทยพาณิชย์", "ไทยพาณิชย์"}},
	{"กรุงไทย", []string{"KTB", "KRUNGTHAI", "krungthai", "ธนาคารกรุงไทย", "กรุงไทย", "ก ร ง ไท ย"}},
	{"ทหารไทยธนชาต", []string{"TTB", "ttb", "TMBTHANACHART BANK", "ธนาคารทหารไทยธนชาต", "ทีเอ็มบีธนชาต", "ทหารไทย", "ธนชาต", "TTMB"}},
	{"ออมสิน", []string{"GSB", "GOVERNMENT SAVINGS BANK", "MYMO", "ธนาคารออมสิน", "ออมสิน", "อ อ ม ส น"}},
	{"กรุงศรีอยุธยา", []string{"BAY", "KRUNGSRI", "BANK OF AYUDHYA", "ธนาคารกรุงศรีอยุธยา", "กรุงศรี"}},
	{"ธ.ก.ส.", []string{"BAAC", "ธกส", "ธ.ก.ส."}},
}

var (
	senderKeywords    = []string{"จาก", "From", "ผู้โอน"}
	recipientKeywords = []string{"ไปยัง", "ไปที่", "To", "ผู้รับเงิน", "ผู้รับ", "Recipient", "ถึง"}

	recipientMarker = regexp.MustCompile(`(?i)(ไปยัง|ไปที่|TO|ผู้รับเงิน|ผู้รับ|RECIPIENT|ถึง)`)

	slipKeywords = []string{"จำนวนเงิน", "บาท", "THB", "Amount"}

	// Amount patterns from most to least specific: label-anchored, currency-
	// suffixed, then any bare decimal. Exactly two fraction digits throughout,
	// which is what keeps account numbers and reference codes out.
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:จำนวนเงิน|Amount|โอนเงินสำเร็จ|ยอดเงิน|จำนวน\s?เงิน)\s*[:\s]*([\d,]+\.\d{2})`),
		regexp.MustCompile(`(?im)([\d,]+\.\d{2})\s*(?:บาท|BAHT|thb)`),
		regexp.MustCompile(`(?im)\b([\d,]{1,10}\.\d{2})\b`),
	}

	// A time token on the same line as a recognized date wins over anything
	// keyword-anchored or bare.
	timeOnDateLine = regexp.MustCompile(`(?im)\d{1,2}\s+[ก-ฮเ-์.]+\s+\d{2,4}[,\s]+(\d{1,2}:\d{2}(?::\d{2})?)`)
	timePatterns   = []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:เวลา|Time)\s*[:\s]*(\d{2}:\d{2}(?::\d{2})?)`),
		regexp.MustCompile(`(?im)\b(\d{2}:\d{2}:\d{2})\b`),
		regexp.MustCompile(`(?im)\b(\d{1,2}:\d{2})\b`),
	}

	referencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:รหัสอ้างอิง|หมายเลขอ้างอิง|เลขที่อ้างอิง|เลขที่รายการ|เลขอ้างอิง|อ้างอิง|Ref|Ref\.\s*No|No\.)[\s:.]*([a-zA-Z0-9\s-]+)`),
		regexp.MustCompile(`(?im)\b([a-zA-Z0-9]{15,})\b`),
	}
)

// ResolveAmount returns the transfer amount with thousands separators stripped
// and exactly two fraction digits, or "" when no amount-shaped decimal occurs.
func ResolveAmount(text string) string {
	amount := FindFirstMatch(text, amountPatterns)
	if amount == "" {
		return ""
	}
	amount = strings.ReplaceAll(amount, ",", "")
	if d, err := decimal.NewFromString(amount); err == nil {
		return d.StringFixed(2)
	}
	return amount
}

// ResolveTime returns HH:MM or HH:MM:SS, preferring a token that shares a line
// with the date, then a เวลา/Time label, then any bare clock value.
func ResolveTime(text string) string {
	if m := timeOnDateLine.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return FindFirstMatch(text, timePatterns)
}

// ResolveBank determines the sending institution. Sender-bank branding appears
// before any recipient section, so when a recipient marker exists the keyword
// search is restricted to the text preceding it, falling back to the whole text
// when that window yields nothing.
func ResolveBank(text string) string {
	upper := strings.ToUpper(text)
	window := upper
	if loc := recipientMarker.FindStringIndex(text); loc != nil {
		window = strings.ToUpper(text[:loc[0]])
	}

	if bank := searchBanks(window); bank != "" {
		return bank
	}
	return searchBanks(upper)
}

func searchBanks(window string) string {
	for _, entry := range bankKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(window, strings.ToUpper(kw)) {
				return entry.Name
			}
		}
	}
	return ""
}

// ResolveReference returns the transaction reference with all whitespace
// removed. Unlabeled alphanumeric runs of 15+ characters are accepted as a
// fallback; tokens that long are almost always references.
func ResolveReference(text string) string {
	ref := FindFirstMatch(text, referencePatterns)
	if ref == "" {
		return ""
	}
	return strings.Join(strings.Fields(ref), "")
}

// ParsePaymentSlip runs every field resolver over one OCR text and assembles
// the structured record. Resolver failures are local: a missing field never
// aborts extraction of the others. Empty input yields the terminal error
// record and nothing else.
func ParsePaymentSlip(text string) dto.ParsedSlip {
	if text == "" {
		return dto.ParsedSlip{Error: "no text supplied"}
	}

	slip := dto.ParsedSlip{RawText: text}

	slip.Bank = ResolveBank(text)
	slip.Amount = ResolveAmount(text)

	date := ResolveDate(text)
	slip.Date = date.Display
	if date.Status == DatePartial {
		// Components were found but failed calendar validation; keep the raw
		// literal and route the record to human review.
		slip.NeedsReview = true
	}

	slip.Time = ResolveTime(text)

	sender := ParseName(text, senderKeywords)
	if sender == "" {
		sender = FindStandaloneName(text, senderKeywords)
	}
	recipient := ParseName(text, recipientKeywords)
	if recipient == "" {
		recipient = FindStandaloneName(text, recipientKeywords)
	}

	// Positional correlation is the least precise strategy, so it only fills
	// roles the keyword and standalone strategies left unresolved.
	if sender == "" || recipient == "" {
		positional := FindNamesByAccountNumber(text)
		if sender == "" && len(positional) >= 1 {
			sender = positional[0]
		}
		if recipient == "" && len(positional) >= 2 {
			recipient = positional[1]
		}
	}

	slip.Sender = CleanOCRName(sender)
	slip.Recipient = CleanOCRName(recipient)

	slip.Reference = ResolveReference(text)

	log.Printf("Slip parsed: bank=%q amount=%q date=%q", slip.Bank, slip.Amount, slip.Date)
	return slip
}

// LooksLikeSlip reports whether the text is a payment slip rather than some
// other photographed document: an amount resolved, or amount vocabulary occurs.
func LooksLikeSlip(text string, slip dto.ParsedSlip) bool {
	if slip.Amount != "" {
		return true
	}
	for _, kw := range slipKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
