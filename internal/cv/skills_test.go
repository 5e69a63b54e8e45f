package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_FromSkillsSection(t *testing.T) {
	text := "Python, TypeScript, React, AWS, Docker, PostgreSQL, Git"

	skills := ExtractSkills(text)
	require.NotEmpty(t, skills)

	byID := map[string]bool{}
	for _, s := range skills {
		byID[s.CanonicalID] = true
		assert.InDelta(t, 0.85, s.Confidence, 1e-9)
	}
	for _, id := range []string{"python", "typescript", "react", "aws", "docker", "postgresql", "git"} {
		assert.True(t, byID[id], "expected canonical id %q", id)
	}
}

func TestExtractSkills_OneEntryPerCanonicalID(t *testing.T) {
	skills := ExtractSkills("Kubernetes and k8s and more kubernetes")

	count := 0
	for _, s := range skills {
		if s.CanonicalID == "kubernetes" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractSkills_DisplayNames(t *testing.T) {
	skills := ExtractSkills("python aws google cloud")

	names := map[string]string{}
	for _, s := range skills {
		names[s.CanonicalID] = s.Name
	}
	assert.Equal(t, "Python", names["python"])
	assert.Equal(t, "AWS", names["aws"])
	assert.Equal(t, "Google Cloud", names["gcp"])
}

func TestExtractSkills_Groups(t *testing.T) {
	skills := ExtractSkills("python react aws postgres git")

	groups := map[string]string{}
	for _, s := range skills {
		groups[s.CanonicalID] = s.Group
	}
	assert.Equal(t, "languages", groups["python"])
	assert.Equal(t, "frameworks", groups["react"])
	assert.Equal(t, "cloud", groups["aws"])
	assert.Equal(t, "databases", groups["postgresql"])
	assert.Equal(t, "tools", groups["git"])
}

func TestExtractSkills_WordBoundaries(t *testing.T) {
	// "go" inside other words must not match.
	skills := ExtractSkills("category golang-adjacent googling")
	for _, s := range skills {
		assert.NotEqual(t, "go", s.CanonicalID)
	}
}

func TestExtractSkills_DeterministicOrder(t *testing.T) {
	text := "git aws python react"
	first := ExtractSkills(text)
	second := ExtractSkills(text)
	assert.Equal(t, first, second)

	// Output follows taxonomy order, not text order.
	require.True(t, len(first) >= 2)
	assert.Equal(t, "python", first[0].CanonicalID)
}

func TestExtractSkills_Empty(t *testing.T) {
	assert.Nil(t, ExtractSkills(""))
	assert.Nil(t, ExtractSkills("   "))
}
