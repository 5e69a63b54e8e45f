package cv

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Accepted year window for any extracted date. CVs with typos routinely
// produce years like 1900 or 2200.
const (
	minAcceptedYear = 1990
	maxAcceptedYear = 2030
)

const monthNames = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`

var (
	// "Month Year - Month Year" or "Month Year - Present"
	dateRangePattern = regexp.MustCompile(
		`(?i)((?:` + monthNames + `)[a-z]*)\s+(\d{4})\s*[-\x{2013}\x{2014}]\s*(Present|Current|(?:` + monthNames + `)[a-z]*\s+\d{4})`)

	monthYearPattern   = regexp.MustCompile(`(?i)\b((?:` + monthNames + `)[a-z]*)\s+(\d{4})\b`)
	numericDatePattern = regexp.MustCompile(`\b(\d{1,2})/(\d{4})\b`)
	bareYearPattern    = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

func monthFromToken(token string) (time.Month, bool) {
	token = strings.ToLower(token)
	if len(token) > 3 {
		token = token[:3]
	}
	m, ok := monthIndex[token]
	return m, ok
}

func yearInRange(year int) bool {
	return year >= minAcceptedYear && year <= maxAcceptedYear
}

func monthYearDate(monthToken, yearToken string) (time.Time, bool) {
	month, ok := monthFromToken(monthToken)
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(yearToken)
	if err != nil || !yearInRange(year) {
		return time.Time{}, false
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
}

// ExtractDates returns up to two dates found in the text. A
// "Month Year - Month Year|Present" range is tried first; a Present/Current
// end token contributes no end date (current role). Without a range the text
// is scanned for lone month-year, numeric month/year, and bare year tokens.
func ExtractDates(text string) []time.Time {
	var dates []time.Time

	for _, m := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		if start, ok := monthYearDate(m[1], m[2]); ok {
			dates = append(dates, start)
		}
		endToken := m[3]
		switch strings.ToLower(endToken) {
		case "present", "current":
			// Open-ended range: no end date.
		default:
			fields := strings.Fields(endToken)
			if len(fields) == 2 {
				if end, ok := monthYearDate(fields[0], fields[1]); ok {
					dates = append(dates, end)
				}
			}
		}
	}
	if len(dates) >= 1 {
		if len(dates) > 2 {
			dates = dates[:2]
		}
		// "Dec 2022 - Jan 2020" is a typo for the reverse order.
		if len(dates) == 2 && dates[1].Before(dates[0]) {
			dates[0], dates[1] = dates[1], dates[0]
		}
		return dates
	}

	// Fallback: individual tokens, most specific first. A bare year is only
	// used when no month-bearing date already covered that year.
	seen := map[time.Time]bool{}
	seenYears := map[int]bool{}
	add := func(d time.Time) {
		if yearInRange(d.Year()) && !seen[d] {
			seen[d] = true
			seenYears[d.Year()] = true
			dates = append(dates, d)
		}
	}

	for _, m := range monthYearPattern.FindAllStringSubmatch(text, -1) {
		if d, ok := monthYearDate(m[1], m[2]); ok {
			add(d)
		}
	}
	for _, m := range numericDatePattern.FindAllStringSubmatch(text, -1) {
		month, err1 := strconv.Atoi(m[1])
		year, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil || month < 1 || month > 12 {
			continue
		}
		add(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
	}
	for _, tok := range bareYearPattern.FindAllString(text, -1) {
		parsed, err := dateparse.ParseAny(tok)
		if err != nil || seenYears[parsed.Year()] {
			continue
		}
		add(time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC))
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	if len(dates) > 2 {
		dates = dates[:2]
	}
	return dates
}

// monthsBetween counts calendar months from a to b.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
