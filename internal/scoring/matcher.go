package scoring

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"cv-score/internal/models"
)

// Graded match strengths, strongest first. The ladder is deliberately
// non-binary: it is what lets the skills scorer produce smooth scores
// instead of cliff edges.
const (
	matchExact          = 1.0
	matchContainment    = 0.9
	matchSynonym        = 0.85
	matchPartialSynonym = 0.8
	matchCategory       = 0.6
	matchFuzzyHigh      = 0.7
	matchFuzzyMedium    = 0.5
	matchFuzzyLow       = 0.3
)

// synonymGroup maps a canonical skill to its accepted surface forms.
type synonymGroup struct {
	canonical string
	synonyms  []string
}

var skillSynonyms = []synonymGroup{
	// Programming
	{"python", []string{"python", "python3", "py"}},
	{"javascript", []string{"js", "javascript", "ecmascript", "node", "nodejs"}},
	{"java", []string{"java"}},
	{"csharp", []string{"c#", "csharp", "c-sharp", ".net"}},
	{"sql", []string{"sql", "structured query language", "database"}},

	// Cloud & DevOps
	{"aws", []string{"amazon web services", "aws", "amazon cloud"}},
	{"gcp", []string{"google cloud", "google cloud platform", "gcp"}},
	{"azure", []string{"azure", "microsoft azure"}},
	{"kubernetes", []string{"k8s", "kubernetes"}},
	{"docker", []string{"docker", "containerization", "containers"}},

	// Databases
	{"postgresql", []string{"postgres", "postgresql", "psql"}},
	{"mysql", []string{"mysql"}},
	{"mongodb", []string{"mongo", "mongodb"}},

	// Web frameworks
	{"react", []string{"reactjs", "react.js", "react"}},
	{"angular", []string{"angular", "angularjs"}},
	{"vue", []string{"vue", "vuejs", "vue.js"}},

	// Finance & business
	{"excel", []string{"excel", "microsoft excel", "spreadsheets"}},
	{"financial_modeling", []string{"financial modeling", "financial modelling", "modeling", "modelling"}},
	{"financial_analysis", []string{"financial analysis", "finance", "financial"}},
	{"accounting", []string{"accounting", "accountancy"}},
	{"valuation", []string{"valuation", "company valuation", "dcf"}},
	{"portfolio_management", []string{"portfolio management", "portfolio", "investment management"}},
	{"risk_management", []string{"risk management", "risk"}},
	{"data_analysis", []string{"data analysis", "analytics", "data analytics"}},
	{"powerpoint", []string{"powerpoint", "presentations", "ppt"}},
	{"communication", []string{"communication", "presentation", "writing"}},
}

// categoryGroup buckets skills into broad domains for the loosest match tier.
type categoryGroup struct {
	name     string
	keywords []string
}

var skillCategories = []categoryGroup{
	{"finance", []string{"finance", "financial", "accounting", "investment", "banking"}},
	{"programming", []string{"programming", "coding", "development", "software"}},
	{"data", []string{"data", "analytics", "analysis", "statistics"}},
	{"cloud", []string{"cloud", "aws", "azure", "gcp"}},
}

// SkillMatcher grades how well a required skill string matches a candidate's
// skill set. It is stateless and safe for concurrent use.
type SkillMatcher struct{}

func NewSkillMatcher() *SkillMatcher {
	return &SkillMatcher{}
}

// MatchSkill returns a graded match strength for the required skill against
// the candidate's skills (keyed by lowercased name). Tiers are checked in
// priority order and the first hit wins: exact (1.0), containment either
// direction (0.9), synonym (0.85 exact / 0.8 partial), shared category
// bucket (0.6), then fuzzy string similarity (0.7 / 0.5 / 0.3), else 0.
func (m *SkillMatcher) MatchSkill(required string, candidateSkills map[string]models.Skill) float64 {
	required = strings.ToLower(strings.TrimSpace(required))
	if required == "" || len(candidateSkills) == 0 {
		return 0.0
	}

	if _, ok := candidateSkills[required]; ok {
		return matchExact
	}

	for name := range candidateSkills {
		if strings.Contains(name, required) || strings.Contains(required, name) {
			return matchContainment
		}
	}

	for _, group := range skillSynonyms {
		if required != group.canonical && !containsString(group.synonyms, required) {
			continue
		}
		for _, syn := range group.synonyms {
			if _, ok := candidateSkills[syn]; ok {
				return matchSynonym
			}
			for name := range candidateSkills {
				if strings.Contains(name, syn) || strings.Contains(syn, name) {
					return matchPartialSynonym
				}
			}
		}
	}

	for _, category := range skillCategories {
		if !keywordHit(required, category.keywords) {
			continue
		}
		for name := range candidateSkills {
			if keywordHit(name, category.keywords) {
				return matchCategory
			}
		}
	}

	best := 0.0
	for name := range candidateSkills {
		if ratio := float64(fuzzy.Ratio(required, name)); ratio > best {
			best = ratio
		}
		// The scaled partial ratio stays in float so its fractional part
		// still counts against the tier thresholds.
		if partial := float64(fuzzy.PartialRatio(required, name)) * 0.9; partial > best {
			best = partial
		}
	}
	return fuzzyStrength(best)
}

// fuzzyStrength maps a similarity ratio in [0, 100] to a match tier.
func fuzzyStrength(best float64) float64 {
	switch {
	case best > 80:
		return matchFuzzyHigh
	case best > 65:
		return matchFuzzyMedium
	case best > 50:
		return matchFuzzyLow
	}
	return 0.0
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func keywordHit(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
