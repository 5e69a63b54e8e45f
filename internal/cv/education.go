package cv

import (
	"regexp"
	"strconv"
	"strings"

	"cv-score/internal/models"
)

const (
	maxEducationEntries = 5
	minEntryLength      = 20
)

var gpaPattern = regexp.MustCompile(`(?i)\bGPA[:\s]+([0-4](?:\.\d{1,2})?)\b`)

// degreeKeywords is scanned in rank order; the first level with a hit wins.
// Plain-letter keywords are matched on word boundaries so "ma" does not fire
// inside "management"; dotted abbreviations are matched by containment.
var degreeKeywords = []struct {
	level    models.EducationLevel
	keywords []string
}{
	{models.EducationDoctorate, []string{"phd", "ph.d", "doctorate", "doctoral", "d.phil"}},
	{models.EducationMasters, []string{"master", "master's", "msc", "m.sc", "ma", "m.a", "mba", "m.b.a"}},
	{models.EducationBachelors, []string{"bachelor", "bachelor's", "bsc", "b.sc", "ba", "b.a", "bs", "b.s"}},
	{models.EducationAssociates, []string{"associate", "associate's", "a.s"}},
}

var degreeMatchers = buildDegreeMatchers()

type degreeMatcher struct {
	level    models.EducationLevel
	patterns []*regexp.Regexp
	literals []string
}

func buildDegreeMatchers() []degreeMatcher {
	var matchers []degreeMatcher
	for _, entry := range degreeKeywords {
		m := degreeMatcher{level: entry.level}
		for _, kw := range entry.keywords {
			if strings.ContainsAny(kw, ".'") {
				m.literals = append(m.literals, kw)
			} else {
				m.patterns = append(m.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
			}
		}
		matchers = append(matchers, m)
	}
	return matchers
}

// ParseEducation extracts education entries from the education section.
func ParseEducation(sectionText string) []models.Education {
	if strings.TrimSpace(sectionText) == "" {
		return nil
	}

	var entries []models.Education
	for _, block := range splitEntryBlocks(sectionText, minEntryLength) {
		if entry := parseEducationBlock(block); entry != nil {
			entries = append(entries, *entry)
		}
		if len(entries) == maxEducationEntries {
			break
		}
	}
	return entries
}

// splitEntryBlocks splits text into blank-line-delimited blocks, dropping
// fragments shorter than minLen.
func splitEntryBlocks(text string, minLen int) []string {
	var (
		blocks  []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			block := strings.Join(current, "\n")
			if len(block) > minLen {
				blocks = append(blocks, block)
			}
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

func parseEducationBlock(block string) *models.Education {
	var lines []string
	for _, l := range strings.Split(block, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	entry := models.Education{
		Institution: truncate(lines[0], maxFieldLength),
		Confidence:  0.6,
	}

	entry.Degree = inferDegree(block)

	dates := ExtractDates(block)
	if len(dates) > 0 {
		entry.StartDate = &dates[0]
	}
	if len(dates) > 1 {
		entry.EndDate = &dates[1]
	}

	if m := gpaPattern.FindStringSubmatch(block); m != nil {
		if gpa, err := strconv.ParseFloat(m[1], 64); err == nil {
			entry.GPA = &gpa
		}
	}

	return &entry
}

func inferDegree(text string) models.EducationLevel {
	lower := strings.ToLower(text)
	for _, m := range degreeMatchers {
		for _, p := range m.patterns {
			if p.MatchString(lower) {
				return m.level
			}
		}
		for _, lit := range m.literals {
			if strings.Contains(lower, lit) {
				return m.level
			}
		}
	}
	return ""
}
