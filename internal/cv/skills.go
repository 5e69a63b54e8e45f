package cv

import (
	"regexp"
	"strings"

	"cv-score/internal/models"
)

const maxSkills = 30

// skillEntry maps a canonical skill id to its surface-form variants. Order
// matters twice: the table order fixes output order, and within an entry the
// first variant that matches is the one reported.
type skillEntry struct {
	id       string
	group    string
	variants []string
}

var skillTaxonomy = []skillEntry{
	// Languages
	{"python", "languages", []string{"python", "python3", "py"}},
	{"javascript", "languages", []string{"javascript", "js", "ecmascript"}},
	{"typescript", "languages", []string{"typescript", "ts"}},
	{"java", "languages", []string{"java"}},
	{"csharp", "languages", []string{"c#", "csharp", "c-sharp"}},
	{"cpp", "languages", []string{"c++", "cpp"}},
	{"go", "languages", []string{"golang", "go"}},
	{"rust", "languages", []string{"rust"}},
	{"sql", "languages", []string{"sql", "mysql", "postgresql", "postgres"}},

	// Frameworks
	{"react", "frameworks", []string{"react", "reactjs", "react.js"}},
	{"angular", "frameworks", []string{"angular", "angularjs"}},
	{"vue", "frameworks", []string{"vue", "vuejs", "vue.js"}},
	{"django", "frameworks", []string{"django"}},
	{"flask", "frameworks", []string{"flask"}},
	{"fastapi", "frameworks", []string{"fastapi", "fast api"}},
	{"nodejs", "frameworks", []string{"node", "nodejs", "node.js"}},
	{"express", "frameworks", []string{"express", "expressjs"}},

	// Cloud & DevOps
	{"aws", "cloud", []string{"aws", "amazon web services"}},
	{"azure", "cloud", []string{"azure", "microsoft azure"}},
	{"gcp", "cloud", []string{"gcp", "google cloud", "google cloud platform"}},
	{"docker", "cloud", []string{"docker", "containerization"}},
	{"kubernetes", "cloud", []string{"kubernetes", "k8s"}},
	{"terraform", "cloud", []string{"terraform"}},
	{"jenkins", "cloud", []string{"jenkins"}},
	{"cicd", "cloud", []string{"ci/cd", "ci-cd", "continuous integration"}},

	// Databases
	{"postgresql", "databases", []string{"postgresql", "postgres", "psql"}},
	{"mongodb", "databases", []string{"mongodb", "mongo"}},
	{"redis", "databases", []string{"redis"}},
	{"elasticsearch", "databases", []string{"elasticsearch", "elastic"}},

	// Tools & methodologies
	{"git", "tools", []string{"git", "github", "gitlab"}},
	{"linux", "tools", []string{"linux", "unix"}},
	{"agile", "tools", []string{"agile", "scrum", "kanban"}},
}

var skillVariantPatterns = buildSkillPatterns()

func buildSkillPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, entry := range skillTaxonomy {
		for _, v := range entry.variants {
			if _, ok := patterns[v]; !ok {
				patterns[v] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(v) + `\b`)
			}
		}
	}
	return patterns
}

// ExtractSkills matches the curated taxonomy against the given text, which is
// the skills section when one exists and the full document otherwise. At most
// one Skill per canonical id is emitted, named after the first variant that
// matched.
func ExtractSkills(text string) []models.Skill {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var skills []models.Skill
	for _, entry := range skillTaxonomy {
		for _, variant := range entry.variants {
			if !skillVariantPatterns[variant].MatchString(text) {
				continue
			}
			skills = append(skills, models.Skill{
				Name:        displaySkillName(variant),
				CanonicalID: entry.id,
				Group:       entry.group,
				Confidence:  0.85,
			})
			break
		}
		if len(skills) == maxSkills {
			break
		}
	}
	return skills
}

// displaySkillName title-cases longer variants and upper-cases short ones
// ("python" -> "Python", "aws" -> "AWS").
func displaySkillName(variant string) string {
	if len(variant) <= 3 {
		return strings.ToUpper(variant)
	}
	words := strings.Fields(variant)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
