package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-score/internal/models"
)

func TestParseLanguages_SeparatorsAndProficiency(t *testing.T) {
	section := `English - Native
French: Fluent
Spanish (conversational)
German
`

	langs := ParseLanguages(section)
	require.Len(t, langs, 4)

	assert.Equal(t, "English", langs[0].Name)
	assert.Equal(t, models.ProficiencyNative, langs[0].Proficiency)

	assert.Equal(t, "French", langs[1].Name)
	assert.Equal(t, models.ProficiencyFluent, langs[1].Proficiency)

	assert.Equal(t, "Spanish", langs[2].Name)
	assert.Equal(t, models.ProficiencyIntermediate, langs[2].Proficiency)

	assert.Equal(t, "German", langs[3].Name)
	assert.Equal(t, models.ProficiencyIntermediate, langs[3].Proficiency, "default when unstated")
}

func TestParseLanguages_StopsAtNextSectionHeader(t *testing.T) {
	section := `English - Native
EDUCATION
French - Fluent
`

	langs := ParseLanguages(section)
	require.Len(t, langs, 1)
	assert.Equal(t, "English", langs[0].Name)
}

func TestParseLanguages_WorkingProficiencyMapsToProfessional(t *testing.T) {
	langs := ParseLanguages("German - Working proficiency\n")
	require.Len(t, langs, 1)
	assert.Equal(t, models.ProficiencyProfessional, langs[0].Proficiency)
}

func TestParseLanguages_EmptySection(t *testing.T) {
	assert.Empty(t, ParseLanguages(""))
}
