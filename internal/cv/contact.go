package cv

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"

	"cv-score/internal/models"
)

const (
	maxEmails = 3
	maxPhones = 3

	// Contact details live in the document header.
	locationScanWindow  = 500
	portfolioScanWindow = 1000
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Loose candidate sequences; real validation happens via phonenumbers.
	phoneCandidatePattern = regexp.MustCompile(`[+(]?\d[\d\s().\-]{7,}\d`)

	linkedinPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+/?`)
	githubPattern     = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w-]+/?`)
	genericURLPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?[\w-]+\.(?:com|io|dev|net|org)/[\w/-]*`)

	// "City, Region" with capitalized one- or two-word parts.
	locationPattern = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?),\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`)

	columnSplitPattern = regexp.MustCompile(`\t|\s{3,}`)
)

// Region candidates tried in order when parsing phone numbers. ZZ means
// "unknown region": only internationally formatted numbers parse.
var phoneRegions = []string{"GB", "US", "IN", "ZZ"}

var locationKeywords = []string{
	"london", "manchester", "birmingham", "leeds", "glasgow", "reading",
	"uk", "united kingdom", "england", "scotland", "wales",
	"usa", "united states", "new york", "california", "texas",
	"berkshire", "warwickshire", "surrey", "kent",
}

// ExtractContact heuristically pulls contact details out of the document,
// mostly from the header zone.
func ExtractContact(text string) models.ContactInfo {
	return models.ContactInfo{
		FullName:  extractName(text),
		Emails:    extractEmails(text),
		Phones:    extractPhones(text),
		Location:  extractLocation(text),
		LinkedIn:  extractURL(text, linkedinPattern),
		GitHub:    extractURL(text, githubPattern),
		Portfolio: extractPortfolio(text),
	}
}

// extractName takes the first non-blank line, keeps only the first column of
// multi-column layouts, and accepts it only when it reads like a name
// (2-4 capitalized words). No guessing beyond that rule.
func extractName(text string) *string {
	var firstLine string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			firstLine = s
			break
		}
	}
	if firstLine == "" {
		return nil
	}

	if parts := columnSplitPattern.Split(firstLine, -1); len(parts) > 0 {
		firstLine = strings.TrimSpace(parts[0])
	}

	words := strings.Fields(firstLine)
	if len(words) < 2 || len(words) > 4 {
		return nil
	}
	for _, w := range words {
		r := []rune(w)
		if !unicode.IsUpper(r[0]) {
			return nil
		}
	}
	return &firstLine
}

func extractEmails(text string) []string {
	var emails []string
	seen := map[string]bool{}
	for _, candidate := range emailPattern.FindAllString(text, -1) {
		addr, err := mail.ParseAddress(candidate)
		if err != nil {
			continue
		}
		normalized := strings.ToLower(addr.Address)
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		emails = append(emails, normalized)
		if len(emails) == maxEmails {
			break
		}
	}
	return emails
}

func extractPhones(text string) []string {
	var phones []string
	seenDigits := map[string]bool{}

	for _, raw := range phoneCandidatePattern.FindAllString(text, -1) {
		digits := digitsOnly(raw)
		if seenDigits[digits] {
			continue
		}
		for _, region := range phoneRegions {
			num, err := phonenumbers.Parse(raw, region)
			if err != nil {
				continue
			}
			if !phonenumbers.IsValidNumber(num) {
				continue
			}
			phones = append(phones, phonenumbers.Format(num, phonenumbers.INTERNATIONAL))
			seenDigits[digits] = true
			break
		}
		if len(phones) == maxPhones {
			break
		}
	}
	return phones
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// extractLocation scans the header zone for a "City, Region" pair where at
// least one part is a known place keyword. Tokens that reappear in the
// candidate's name are excluded: "Smith, John" is not a location.
func extractLocation(text string) *string {
	header := text
	if len(header) > locationScanWindow {
		header = header[:locationScanWindow]
	}

	nameWords := map[string]bool{}
	if name := extractName(text); name != nil {
		for _, w := range strings.Fields(*name) {
			if len(w) > 1 {
				nameWords[strings.ToLower(w)] = true
			}
		}
	}

	for _, m := range locationPattern.FindAllStringSubmatch(header, -1) {
		city, region := m[1], m[2]
		cityFirst := strings.ToLower(strings.Fields(city)[0])
		if nameWords[cityFirst] {
			continue
		}
		combined := strings.ToLower(city + " " + region)
		for _, keyword := range locationKeywords {
			if strings.Contains(combined, keyword) {
				loc := city + ", " + region
				return &loc
			}
		}
	}
	return nil
}

func extractURL(text string, pattern *regexp.Regexp) *string {
	match := pattern.FindString(text)
	if match == "" {
		return nil
	}
	url := ensureScheme(match)
	return &url
}

// extractPortfolio finds the first generic domain-looking URL in the header
// zone that is not a known social profile.
func extractPortfolio(text string) *string {
	window := text
	if len(window) > portfolioScanWindow {
		window = window[:portfolioScanWindow]
	}
	for _, match := range genericURLPattern.FindAllString(window, -1) {
		lower := strings.ToLower(match)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		url := ensureScheme(match)
		return &url
	}
	return nil
}

func ensureScheme(url string) string {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "https://" + url
	}
	return url
}
