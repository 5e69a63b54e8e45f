package cv

import "regexp"

// Section names the fixed set of CV sections the segmenter knows about.
type Section string

const (
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
)

// sectionPatterns matches common header phrasings anchored to the start of a
// line, with an optional trailing colon. Patterns are deliberately loose: CVs
// phrase the same section a dozen ways.
var sectionPatterns = map[Section]*regexp.Regexp{
	SectionExperience: regexp.MustCompile(
		`(?im)^\s*(?:WORK\s+)?(?:EXPERIENCE|EMPLOYMENT|CAREER|PROFESSIONAL\s+(?:BACKGROUND|EXPERIENCE|HISTORY)|WORK\s*HISTORY)S?\s*:?[ \t]*$`),
	SectionEducation: regexp.MustCompile(
		`(?im)^\s*(?:EDUCATION|ACADEMIC\s*(?:BACKGROUND|HISTORY)?|QUALIFICATIONS|DEGREES?|TRAINING)\s*:?[ \t]*$`),
	SectionSkills: regexp.MustCompile(
		`(?im)^\s*(?:(?:KEY|CORE|TECHNICAL|PROFESSIONAL)?\s*SKILLS|COMPETENC(?:IES|Y)|EXPERTISE|TECHNOLOGIES|PROFICIENCIES|ADDITIONAL\s+INFORMATION)\s*:?[ \t]*$`),
	SectionCertifications: regexp.MustCompile(
		`(?im)^\s*(?:CERTIFICATIONS?|LICENSES?|CREDENTIALS|ACCREDITATIONS?|PROFESSIONAL\s+DEVELOPMENT)\s*:?[ \t]*$`),
	SectionLanguages: regexp.MustCompile(
		`(?im)^\s*(?:LANGUAGES?|LANGUAGE\s+(?:SKILLS|PROFICIENCY))\s*:?[ \t]*$`),
}

// Span is a half-open byte range into the document text.
type Span struct {
	Start int
	End   int
}

// Locate finds the first occurrence of a section header.
func Locate(text string, section Section) (Span, bool) {
	pattern, ok := sectionPatterns[section]
	if !ok {
		return Span{}, false
	}
	loc := pattern.FindStringIndex(text)
	if loc == nil {
		return Span{}, false
	}
	return Span{Start: loc[0], End: loc[1]}, true
}

// SliceFrom returns the text from pos up to the start of whichever section
// header appears soonest after it, or to the end of the document.
func SliceFrom(text string, pos int) string {
	if pos < 0 || pos >= len(text) {
		return ""
	}
	remaining := text[pos:]

	next := -1
	for _, pattern := range sectionPatterns {
		loc := pattern.FindStringIndex(remaining)
		if loc != nil && (next == -1 || loc[0] < next) {
			next = loc[0]
		}
	}
	if next >= 0 {
		return remaining[:next]
	}
	return remaining
}

// SectionText locates a section and returns its body, or "" when the section
// is absent. Absence of a section is a valid candidate state, not an error.
func SectionText(text string, section Section) string {
	span, ok := Locate(text, section)
	if !ok {
		return ""
	}
	return SliceFrom(text, span.End)
}

// matchesAnyHeader reports whether a single line looks like a section header.
// Used by line-oriented parsers to stop before running into the next section.
func matchesAnyHeader(line string) bool {
	for _, pattern := range sectionPatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
