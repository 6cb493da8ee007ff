package heuristic

import (
	"regexp"
	"strings"
)

// monthNumbers maps lowercase English month prefixes to their zero-padded
// number. Only English month names are recognized; other locales fall
// through to the bare-year path or produce no date at all.
var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

const monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

const presentPattern = `(?:Present|Current|Now|Ongoing)`

var (
	dateTokenPattern = `(?:` + monthPattern + `\.?\s+\d{4}|\d{4})`

	// dateRangeRe matches "Jan 2020 - Present", "2016 - 2020",
	// "March 2021 to June 2023" and similar.
	dateRangeRe = regexp.MustCompile(`(?i)(` + dateTokenPattern + `)\s*(?:-|–|—|to)\s*(` + dateTokenPattern + `|` + presentPattern + `)`)

	monthYearRe = regexp.MustCompile(`(?i)^(` + monthPattern + `)\.?\s+(\d{4})$`)
	presentRe   = regexp.MustCompile(`(?i)^` + presentPattern + `$`)
	yearOnlyRe  = regexp.MustCompile(`^\d{4}$`)
)

// DateRange is a heuristically recognized start/end date pair
type DateRange struct {
	Start   string // YYYY-MM or YYYY
	End     string // YYYY-MM, YYYY, or the "Present" sentinel
	Current bool
}

// ParseDateRange extracts the first recognizable date range from a line.
// Returns ok=false when the line carries no such range.
func ParseDateRange(line string) (DateRange, bool) {
	m := dateRangeRe.FindStringSubmatch(line)
	if m == nil {
		return DateRange{}, false
	}

	var r DateRange
	r.Start = normalizeDateToken(m[1])

	if presentRe.MatchString(strings.TrimSpace(m[2])) {
		r.End = "Present"
		r.Current = true
	} else {
		r.End = normalizeDateToken(m[2])
	}

	return r, true
}

// ContainsDateRange reports whether a line carries a recognizable range
func ContainsDateRange(line string) bool {
	return dateRangeRe.MatchString(line)
}

// StripDateRange removes the first date range from a line along with any
// separator punctuation left dangling around it.
func StripDateRange(line string) string {
	stripped := dateRangeRe.ReplaceAllString(line, "")
	return strings.Trim(strings.TrimSpace(stripped), "|,–—-() \t")
}

// normalizeDateToken converts a matched date token to YYYY-MM or YYYY
// granularity. Unrecognizable tokens yield the empty string.
func normalizeDateToken(token string) string {
	token = strings.TrimSpace(token)

	if yearOnlyRe.MatchString(token) {
		return token
	}

	if m := monthYearRe.FindStringSubmatch(token); m != nil {
		prefix := strings.ToLower(m[1])
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
		if num, ok := monthNumbers[prefix]; ok {
			return m[2] + "-" + num
		}
	}

	return ""
}
