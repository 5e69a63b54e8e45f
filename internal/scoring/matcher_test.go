package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cv-score/internal/models"
)

func skillSet(names ...string) map[string]models.Skill {
	set := make(map[string]models.Skill, len(names))
	for _, n := range names {
		set[n] = models.Skill{Name: n, Confidence: 0.85}
	}
	return set
}

func TestMatchSkill_Exact(t *testing.T) {
	m := NewSkillMatcher()
	assert.InDelta(t, matchExact, m.MatchSkill("python", skillSet("python", "java")), 1e-9)
	assert.InDelta(t, matchExact, m.MatchSkill("  Python  ", skillSet("python")), 1e-9, "input is normalized")
}

func TestMatchSkill_Containment(t *testing.T) {
	m := NewSkillMatcher()
	assert.InDelta(t, matchContainment, m.MatchSkill("sql", skillSet("postgresql")), 1e-9)
	assert.InDelta(t, matchContainment, m.MatchSkill("financial modeling", skillSet("modeling")), 1e-9)
}

func TestMatchSkill_Synonym(t *testing.T) {
	m := NewSkillMatcher()
	assert.InDelta(t, matchSynonym, m.MatchSkill("k8s", skillSet("kubernetes")), 1e-9)
	assert.InDelta(t, matchSynonym, m.MatchSkill("amazon web services", skillSet("aws")), 1e-9)
}

func TestMatchSkill_Category(t *testing.T) {
	m := NewSkillMatcher()
	assert.InDelta(t, matchCategory, m.MatchSkill("banking", skillSet("accounting")), 1e-9)
}

func TestMatchSkill_FuzzyTypo(t *testing.T) {
	m := NewSkillMatcher()
	score := m.MatchSkill("kuberntes", skillSet("kubernetes"))
	assert.InDelta(t, matchFuzzyHigh, score, 1e-9)
}

func TestFuzzyStrength_Thresholds(t *testing.T) {
	// A scaled partial ratio just over a threshold must clear it:
	// 89 * 0.9 = 80.1 is high tier, 73 * 0.9 = 65.7 is medium.
	assert.InDelta(t, matchFuzzyHigh, fuzzyStrength(89*0.9), 1e-9)
	assert.InDelta(t, matchFuzzyMedium, fuzzyStrength(73*0.9), 1e-9)
	assert.InDelta(t, matchFuzzyLow, fuzzyStrength(57*0.9), 1e-9)
	assert.Zero(t, fuzzyStrength(55*0.9))

	// Exact threshold values do not clear their tier.
	assert.InDelta(t, matchFuzzyMedium, fuzzyStrength(80), 1e-9)
	assert.InDelta(t, matchFuzzyLow, fuzzyStrength(65), 1e-9)
	assert.Zero(t, fuzzyStrength(50))
}

func TestMatchSkill_NoMatch(t *testing.T) {
	m := NewSkillMatcher()
	assert.Zero(t, m.MatchSkill("java", skillSet("photoshop")))
}

func TestMatchSkill_EmptyInputs(t *testing.T) {
	m := NewSkillMatcher()
	assert.Zero(t, m.MatchSkill("", skillSet("python")))
	assert.Zero(t, m.MatchSkill("python", nil))
	assert.Zero(t, m.MatchSkill("python", map[string]models.Skill{}))
}

func TestMatchSkill_TierOrdering(t *testing.T) {
	m := NewSkillMatcher()

	exact := m.MatchSkill("python", skillSet("python"))
	containment := m.MatchSkill("sql", skillSet("postgresql"))
	synonym := m.MatchSkill("k8s", skillSet("kubernetes"))
	category := m.MatchSkill("banking", skillSet("accounting"))
	none := m.MatchSkill("java", skillSet("photoshop"))

	assert.Greater(t, exact, containment)
	assert.Greater(t, containment, synonym)
	assert.Greater(t, synonym, category)
	assert.Greater(t, category, none)
}
