package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// thaiMonth maps a Thai month token (full or abbreviated) to its month number.
// Order matters: full names come first so the alternation prefers the longest,
// most specific token, and the substring lookup resolves full names before
// abbreviations.
type thaiMonth struct {
	Name  string
	Month int
}

var thaiMonths = []thaiMonth{
	{"มกราคม", 1}, {"กุมภาพันธ์", 2}, {"มีนาคม", 3}, {"เมษายน", 4},
	{"พฤษภาคม", 5}, {"มิถุนายน", 6}, {"กรกฎาคม", 7}, {"สิงหาคม", 8},
	{"กันยายน", 9}, {"ตุลาคม", 10}, {"พฤศจิกายน", 11}, {"ธันวาคม", 12},
	{"ม.ค.", 1}, {"ก.พ.", 2}, {"มี.ค.", 3}, {"เม.ย.", 4},
	{"พ.ค.", 5}, {"มิ.ย.", 6}, {"ก.ค.", 7}, {"ส.ค.", 8},
	{"ก.ย.", 9}, {"ต.ค.", 10}, {"พ.ย.", 11}, {"ธ.ค.", 12},
}

// fullThaiMonths indexes full Thai month names by month number minus one,
// used to render the canonical display form.
var fullThaiMonths = []string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

var (
	monthYearPattern   *regexp.Regexp
	standaloneDay      = regexp.MustCompile(`\b(\d{1,2})\b`)
	numericDatePattern = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)
)

func init() {
	keys := make([]string, 0, len(thaiMonths))
	for _, m := range thaiMonths {
		keys = append(keys, regexp.QuoteMeta(m.Name))
	}
	monthYearPattern = regexp.MustCompile(`(?i)(` + strings.Join(keys, "|") + `)[\s/.-]+(\d{2,4})`)
}

// DateStatus reports how far date resolution got.
type DateStatus int

const (
	// DateNotFound means no date-shaped pattern occurred in the text.
	DateNotFound DateStatus = iota
	// DateResolved means day, month and year validated against the calendar.
	DateResolved
	// DatePartial means day/month/year components were identified but failed
	// validation; Display carries the raw components for human review.
	DatePartial
)

// DateResult is the outcome of ResolveDate. Day, Month and Year are only
// populated when Status is DateResolved; Year is Gregorian.
type DateResult struct {
	Status  DateStatus
	Display string
	Day     int
	Month   int
	Year    int
}

// ResolveDate finds a date expression in noisy OCR text and normalizes it to
// the Thai display form "D <month name> <year>".
//
// Two phases, in order: first a Thai month token followed by a 2-4 digit year,
// with the day taken as the last standalone 1-2 digit number preceding the
// match (slips lay out dates as "D Month YYYY", so scanning backward from the
// month anchor avoids unrelated numbers earlier in the text). If no month/year
// pair exists, a slash- or dash-delimited numeric D/M/Y is tried instead.
//
// Years above 2500 are Buddhist and converted by subtracting 543; 2-digit years
// are expanded into the current Buddhist century first.
func ResolveDate(text string) DateResult {
	var dayStr, monthStr, yearStr string

	loc := monthYearPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		m := numericDatePattern.FindStringSubmatch(text)
		if m == nil {
			return DateResult{Status: DateNotFound}
		}
		dayStr, monthStr, yearStr = m[1], m[2], m[3]
	} else {
		monthStr = text[loc[2]:loc[3]]
		yearStr = text[loc[4]:loc[5]]
		days := standaloneDay.FindAllStringSubmatch(text[:loc[0]], -1)
		if len(days) == 0 {
			return DateResult{Status: DateNotFound}
		}
		dayStr = days[len(days)-1][1]
	}

	partial := DateResult{
		Status:  DatePartial,
		Display: strings.TrimSpace(fmt.Sprintf("%s %s %s", dayStr, monthStr, yearStr)),
	}

	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return partial
	}
	yearBE, err := strconv.Atoi(yearStr)
	if err != nil {
		return partial
	}
	if len(yearStr) <= 2 {
		currentBE := time.Now().Year() + 543
		yearBE += (currentBE / 100) * 100
	}
	yearAD := yearBE
	if yearBE > 2500 {
		yearAD = yearBE - 543
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		month = lookupThaiMonth(monthStr)
	}
	if month == 0 {
		return partial
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return partial
	}

	// time.Date normalizes impossible dates (e.g. 31 February) instead of
	// failing, so check the components round-trip.
	d := time.Date(yearAD, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != time.Month(month) || d.Year() != yearAD {
		return partial
	}

	return DateResult{
		Status:  DateResolved,
		Display: fmt.Sprintf("%d %s %d", day, fullThaiMonths[month-1], yearBE),
		Day:     day,
		Month:   month,
		Year:    yearAD,
	}
}

func lookupThaiMonth(token string) int {
	lower := strings.ToLower(token)
	for _, m := range thaiMonths {
		if strings.Contains(lower, strings.ToLower(m.Name)) {
			return m.Month
		}
	}
	return 0
}
