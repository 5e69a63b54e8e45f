package cv

import (
	"strings"

	"cv-score/internal/models"
)

const (
	maxCertifications = 10
	minCertLineLength = 5
)

// knownCertCodes normalizes a line to a short code when it mentions a
// well-known certification family.
var knownCertCodes = []string{"aws", "azure", "gcp", "pmp", "scrum", "cissp", "cisa"}

// ParseCertifications turns each non-trivial line of the certifications
// section into an entry. Callers pass "" when no section was found; the
// certifications list is then empty rather than scanned from the whole text.
func ParseCertifications(sectionText string) []models.Certification {
	var certs []models.Certification
	for _, line := range strings.Split(sectionText, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= minCertLineLength {
			continue
		}

		name := line
		lower := strings.ToLower(line)
		for _, code := range knownCertCodes {
			if strings.Contains(lower, code) {
				name = strings.ToUpper(code)
				break
			}
		}

		cert := models.Certification{
			Name:       truncate(name, maxFieldLength),
			Confidence: 0.5,
		}
		if dates := ExtractDates(line); len(dates) > 0 {
			cert.IssueDate = &dates[0]
		}

		certs = append(certs, cert)
		if len(certs) == maxCertifications {
			break
		}
	}
	return certs
}
