package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Thai honorific and company prefixes that may lead a name line.
const namePrefix = `(?:นาย|นาง|นางสาว|น\.ส\.|คุณ|บจก\.|หจก\.)?`

var (
	nameLinePattern = regexp.MustCompile(`(?i)^(` + namePrefix + `\s*[ก-๙A-Za-z\s.'"]+)`)

	// Tokens that disqualify a line from being a bare name: bank branding,
	// transaction vocabulary, currency markers.
	nonNameClues = regexp.MustCompile(`(?im)(ธนาคาร|bank|(?:^|\s)ธ[.\s]|โอนเงิน|จำนวนเงิน|วันที่|สำเร็จ|บาท|baht|amount|transfer)`)

	// Account-number-shaped tokens: 10 bare digits or a masked run like x-123x4.
	accountPattern = regexp.MustCompile(`(?i)(\b\d{10}\b|x-?[\dx-]{5,})`)

	maskedSuffix    = regexp.MustCompile(`(?i)\s*x-?[\dx]+.*`)
	trailingDigits  = regexp.MustCompile(`[\d\s-]+$`)
	maskedOnly      = regexp.MustCompile(`(?i)^[\sx-]+$`)
	accountSuffix   = regexp.MustCompile(`(?i)\s+x-?[\dx-]+.*`)
	leadingDots     = regexp.MustCompile(`^[.\s]+`)
	leadingStrayOCR = regexp.MustCompile(`^[.\sาอ]+`)
)

var bareHonorifics = map[string]bool{
	"นาย": true, "นาง": true, "นางสาว": true, "น.ส.": true, "คุณ": true,
}

// ParseName extracts a person or company name anchored to one of the given
// role keywords (e.g. จาก/From for the sender). The capture runs until a masked
// account token, a bank token or end of line. Returns "" when nothing usable
// remains after cleaning.
func ParseName(text string, keywords []string) string {
	alts := strings.Join(keywords, "|")
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:` + alts + `)[\s:.-]*(` + namePrefix + `\s*[ก-๙A-Za-z\s.'"]+?)(?:\s*x-?[\dx]+|\s*ธนาคาร|$)`),
		regexp.MustCompile(`(?im)(?:` + alts + `)\s+(` + namePrefix + `\s*[ก-๙A-Za-z\s.'"]+)`),
	}

	name := FindFirstMatch(text, patterns)
	if name == "" {
		return ""
	}
	cleaned := strings.TrimSpace(trailingDigits.ReplaceAllString(name, ""))
	keywordRun := regexp.MustCompile(`(?i)(` + alts + `)`)
	cleaned = strings.TrimSpace(keywordRun.ReplaceAllString(cleaned, ""))
	if cleaned == "" || bareHonorifics[strings.ToLower(cleaned)] {
		return ""
	}
	return cleaned
}

// FindStandaloneName handles slips that print the name on its own line below
// the role label. A line is accepted when it is name-shaped and the immediately
// preceding line contains one of the context keywords.
func FindStandaloneName(text string, contextKeywords []string) string {
	lines := nonEmptyLines(text)
	for i, line := range lines {
		m := nameLinePattern.FindStringSubmatch(line)
		if m == nil || i == 0 {
			continue
		}
		previous := strings.ToUpper(lines[i-1])
		for _, kw := range contextKeywords {
			if strings.Contains(previous, strings.ToUpper(kw)) {
				name := strings.TrimSpace(m[1])
				return strings.TrimSpace(maskedSuffix.ReplaceAllString(name, ""))
			}
		}
	}
	return ""
}

// FindNamesByAccountNumber collects name candidates by their position relative
// to account-number-shaped tokens, in document order. A name-shaped line with
// no non-name clue qualifies when the account token sits on the same line, the
// next line, or two lines down with a clue line in between. Used only when the
// keyword and standalone strategies left a role unresolved.
func FindNamesByAccountNumber(text string) []string {
	var found []string
	lines := nonEmptyLines(text)

	for i, line := range lines {
		m := nameLinePattern.FindStringSubmatch(line)
		if m == nil || nonNameClues.MatchString(line) {
			continue
		}

		confirmed := accountPattern.MatchString(line)
		if !confirmed && i+1 < len(lines) {
			confirmed = accountPattern.MatchString(lines[i+1])
		}
		if !confirmed && i+2 < len(lines) {
			confirmed = nonNameClues.MatchString(lines[i+1]) && accountPattern.MatchString(lines[i+2])
		}
		if !confirmed {
			continue
		}

		name := strings.TrimSpace(m[1])
		if maskedOnly.MatchString(name) {
			continue
		}
		name = strings.TrimSpace(accountSuffix.ReplaceAllString(name, ""))
		if utf8.RuneCountInString(name) > 2 && !contains(found, name) {
			found = append(found, name)
		}
	}
	return found
}

// CleanOCRName strips the leading punctuation, the stray phinthu diacritic and
// the leading า/อ characters that EasyOCR-style engines smear onto Thai names.
func CleanOCRName(name string) string {
	if name == "" {
		return ""
	}
	cleaned := leadingDots.ReplaceAllString(name, "")
	cleaned = strings.ReplaceAll(cleaned, "ฺ", "")
	cleaned = strings.TrimSpace(leadingStrayOCR.ReplaceAllString(cleaned, ""))
	return strings.TrimSpace(cleaned)
}

func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
