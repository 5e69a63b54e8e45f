package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-score/internal/models"
)

func TestParseEducation_SingleEntry(t *testing.T) {
	section := `Massachusetts Institute of Technology
Bachelor of Science in Computer Science
Sep 2012 - Jun 2016
GPA: 3.8
`

	entries := ParseEducation(section)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Massachusetts Institute of Technology", entry.Institution)
	assert.Equal(t, models.EducationBachelors, entry.Degree)

	require.NotNil(t, entry.StartDate)
	assert.Equal(t, 2012, entry.StartDate.Year())
	require.NotNil(t, entry.EndDate)
	assert.Equal(t, 2016, entry.EndDate.Year())

	require.NotNil(t, entry.GPA)
	assert.InDelta(t, 3.8, *entry.GPA, 1e-9)
}

func TestParseEducation_MultipleEntries(t *testing.T) {
	section := `University of Oxford
MSc in Financial Economics
2018 - 2019

University of Manchester
BSc Economics
2014 - 2017
`

	entries := ParseEducation(section)
	require.Len(t, entries, 2)
	assert.Equal(t, models.EducationMasters, entries[0].Degree)
	assert.Equal(t, models.EducationBachelors, entries[1].Degree)
}

func TestInferDegree(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.EducationLevel
	}{
		{"phd", "PhD in Physics", models.EducationDoctorate},
		{"masters word", "Master of Business Administration", models.EducationMasters},
		{"mba", "MBA, Finance", models.EducationMasters},
		{"ma abbreviation", "MA in Economics", models.EducationMasters},
		{"bachelors word", "Bachelor of Arts", models.EducationBachelors},
		{"bsc", "BSc Computer Science", models.EducationBachelors},
		{"dotted bsc", "B.Sc. Mathematics", models.EducationBachelors},
		{"associates", "Associate Degree in Nursing", models.EducationAssociates},
		{"no degree", "Some Training Course", models.EducationLevel("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferDegree(tt.text))
		})
	}
}

func TestInferDegree_NoSubstringFalsePositives(t *testing.T) {
	// "ma" must not fire inside words like Manchester or management.
	assert.Equal(t, models.EducationLevel(""), inferDegree("University of Manchester"))
	assert.Equal(t, models.EducationLevel(""), inferDegree("Management training programme"))
	// "bs" must not fire inside "jobs".
	assert.Equal(t, models.EducationLevel(""), inferDegree("Previous jobs listed above"))
}

func TestParseEducation_DropsShortFragments(t *testing.T) {
	entries := ParseEducation("MIT\n\nshort")
	assert.Empty(t, entries)
}

func TestParseEducation_EmptySection(t *testing.T) {
	assert.Nil(t, ParseEducation(""))
	assert.Nil(t, ParseEducation("  \n "))
}
