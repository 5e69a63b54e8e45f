package cv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-score/internal/models"
)

const johnSmithCV = `John Smith
London, England
john.smith@example.com
+44 7911 123456
linkedin.com/in/johnsmith

WORK EXPERIENCE

Senior Software Engineer
Google
Jan 2019 - Present
• Led the migration of a payments platform serving millions of users
• Mentored five engineers across two product teams

Software Engineer
Acme Corp, London
Jun 2016 - Dec 2018
• Built and operated order management microservices in production

EDUCATION

Massachusetts Institute of Technology
Bachelor of Science in Computer Science
Sep 2012 - Jun 2016
GPA: 3.9

TECHNICAL SKILLS

Python, Go, Kubernetes, AWS, PostgreSQL, Docker

CERTIFICATIONS

AWS Certified Solutions Architect, Mar 2021

LANGUAGES

English - Native
French - Intermediate
`

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p := NewParser(nil, nil)
	p.now = func() time.Time { return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC) }
	return p
}

func TestParseCV_EndToEnd(t *testing.T) {
	parser := newTestParser(t)

	candidate, err := parser.ParseCV([]byte(johnSmithCV), "john_smith.txt")
	require.NoError(t, err)

	require.NotNil(t, candidate.Contact.FullName)
	assert.Equal(t, "John Smith", *candidate.Contact.FullName)
	assert.Equal(t, []string{"john.smith@example.com"}, candidate.Contact.Emails)

	require.Len(t, candidate.WorkExperience, 2)
	current := candidate.WorkExperience[0]
	assert.Equal(t, "Senior Software Engineer", current.Title)
	assert.Equal(t, "Google", current.Employer)
	assert.Equal(t, models.SenioritySenior, current.InferredSeniority)
	assert.Nil(t, current.EndDate)

	previous := candidate.WorkExperience[1]
	assert.Equal(t, "Acme Corp", previous.Employer)
	require.NotNil(t, previous.EndDate)

	require.Len(t, candidate.Education, 1)
	assert.Equal(t, "Massachusetts Institute of Technology", candidate.Education[0].Institution)
	assert.Equal(t, models.EducationBachelors, candidate.Education[0].Degree)

	assert.NotEmpty(t, candidate.Skills)
	skillIDs := map[string]bool{}
	for _, s := range candidate.Skills {
		skillIDs[s.CanonicalID] = true
	}
	assert.True(t, skillIDs["python"])
	assert.True(t, skillIDs["kubernetes"])

	require.Len(t, candidate.Certifications, 1)
	assert.Equal(t, "AWS", candidate.Certifications[0].Name)

	require.Len(t, candidate.Languages, 2)
	assert.Equal(t, "English", candidate.Languages[0].Name)
}

func TestParseCV_Metadata(t *testing.T) {
	parser := newTestParser(t)

	candidate, err := parser.ParseCV([]byte(johnSmithCV), "john_smith.txt")
	require.NoError(t, err)

	meta := candidate.ParsingMetadata
	assert.Equal(t, "john_smith.txt", meta.Filename)
	assert.Equal(t, len(candidate.RawText), meta.TextLength)
	assert.Equal(t, ParserName, meta.Parser)
	assert.NotEmpty(t, meta.ParseID)
	assert.Equal(t, 2024, meta.ParsedAt.Year())

	assert.Len(t, candidate.FileHash, 64, "sha-256 hex digest")
}

func TestParseCV_Idempotent(t *testing.T) {
	parser := newTestParser(t)

	first, err := parser.ParseCV([]byte(johnSmithCV), "john_smith.txt")
	require.NoError(t, err)
	second, err := parser.ParseCV([]byte(johnSmithCV), "john_smith.txt")
	require.NoError(t, err)

	// Parse IDs are unique per call; everything else must be identical.
	assert.NotEqual(t, first.ParsingMetadata.ParseID, second.ParsingMetadata.ParseID)
	first.ParsingMetadata.ParseID = ""
	second.ParsingMetadata.ParseID = ""
	assert.Equal(t, first, second)
}

func TestParseCV_MinimalDocument(t *testing.T) {
	parser := newTestParser(t)
	text := "John Smith\njohn@email.com\n\nEXPERIENCE\nSenior Engineer\nGoogle\nJan 2020 - Present\n• Built scalable APIs\n\nEDUCATION\nMIT\nBachelor of Science"

	candidate, err := parser.ParseCV([]byte(text), "minimal.txt")
	require.NoError(t, err)

	require.NotNil(t, candidate.Contact.FullName)
	assert.Equal(t, "John Smith", *candidate.Contact.FullName)
	assert.Equal(t, []string{"john@email.com"}, candidate.Contact.Emails)

	require.Len(t, candidate.WorkExperience, 1)
	work := candidate.WorkExperience[0]
	assert.Contains(t, work.Employer, "Google")
	assert.Equal(t, models.SenioritySenior, work.InferredSeniority)
	assert.Nil(t, work.EndDate)

	require.Len(t, candidate.Education, 1)
	assert.Equal(t, "MIT", candidate.Education[0].Institution)
	assert.Equal(t, models.EducationBachelors, candidate.Education[0].Degree)
}

func TestParseCV_NoSections(t *testing.T) {
	parser := newTestParser(t)
	text := "A plain document with enough text to pass the minimum length check, mentioning Python once."

	candidate, err := parser.ParseCV([]byte(text), "plain.txt")
	require.NoError(t, err)

	assert.Empty(t, candidate.WorkExperience)
	assert.Empty(t, candidate.Education)
	// With no skills section the whole document is scanned.
	require.NotEmpty(t, candidate.Skills)
	assert.Equal(t, "python", candidate.Skills[0].CanonicalID)
}

func TestParseCV_UnsupportedType(t *testing.T) {
	parser := newTestParser(t)

	_, err := parser.ParseCV([]byte("data"), "cv.xlsx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}
