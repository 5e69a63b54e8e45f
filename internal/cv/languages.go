package cv

import (
	"strings"

	"cv-score/internal/models"
)

const (
	maxLanguages      = 10
	minLangLineLength = 3
)

// proficiencySynonyms is checked in order against the lowercased line; the
// first keyword found wins. Defaults to intermediate when nothing matches.
var proficiencySynonyms = []struct {
	keyword string
	level   models.Proficiency
}{
	{"native", models.ProficiencyNative},
	{"fluent", models.ProficiencyFluent},
	{"professional", models.ProficiencyProfessional},
	{"intermediate", models.ProficiencyIntermediate},
	{"basic", models.ProficiencyBasic},
	{"conversational", models.ProficiencyIntermediate},
	{"working", models.ProficiencyProfessional},
}

// ParseLanguages parses the languages section line by line. Scanning stops
// early when a line looks like another section's header, which guards
// against overrunning into the next section.
func ParseLanguages(sectionText string) []models.Language {
	var languages []models.Language
	for _, line := range strings.Split(sectionText, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < minLangLineLength {
			continue
		}
		if matchesAnyHeader(line) {
			break
		}

		proficiency := models.ProficiencyIntermediate
		lower := strings.ToLower(line)
		for _, syn := range proficiencySynonyms {
			if strings.Contains(lower, syn.keyword) {
				proficiency = syn.level
				break
			}
		}

		name := languageName(line)
		if len(name) <= 1 {
			continue
		}

		languages = append(languages, models.Language{
			Name:        titleCase(name),
			Proficiency: proficiency,
			Confidence:  0.7,
		})
		if len(languages) == maxLanguages {
			break
		}
	}
	return languages
}

// languageName takes the text before a dash or colon separator, or the first
// token when neither is present.
func languageName(line string) string {
	if idx := strings.Index(line, " - "); idx >= 0 {
		return strings.TrimSpace(line[:idx])
	}
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[:idx])
	}
	if fields := strings.Fields(line); len(fields) > 0 {
		return fields[0]
	}
	return line
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
