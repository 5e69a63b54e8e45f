package scoring

import "strings"

// Prestige multipliers per tier. Tier 1 is checked before tier 2 before
// tier 3; the first matching tier wins.
const (
	universityTier1Multiplier = 1.3
	universityTier2Multiplier = 1.15

	companyTier1Multiplier = 1.4
	companyTier2Multiplier = 1.2
	companyTier3Multiplier = 1.05
)

// Top-tier universities by global ranking.
var tier1Universities = []string{
	"oxford", "cambridge", "harvard", "stanford", "mit", "yale", "princeton",
	"caltech", "berkeley", "imperial", "eth zurich", "university college london",
	"ucl", "london school of economics", "lse", "columbia", "chicago",
}

// Strong universities: Russell Group, top US state schools, and similar.
var tier2Universities = []string{
	"manchester", "edinburgh", "warwick", "bristol", "durham",
	"nottingham", "birmingham", "leeds", "sheffield", "southampton",
	"reading",
	"ucla", "michigan", "virginia", "texas", "washington", "cornell",
	"penn", "duke", "northwestern", "johns hopkins", "carnegie mellon",
}

// FAANG, Big 4, major banks, top consultancies.
var tier1Companies = []string{
	"google", "apple", "microsoft", "amazon", "meta", "facebook",
	"goldman sachs", "morgan stanley", "jp morgan", "jpmorgan",
	"mckinsey", "bain", "bcg", "boston consulting",
	"deloitte", "pwc", "ey", "kpmg", "accenture",
}

// Well-known established firms and boutiques.
var tier2Companies = []string{
	"salesforce", "adobe", "oracle", "ibm", "uber", "airbnb",
	"barclays", "hsbc", "citi", "citigroup", "credit suisse",
	"rothschild", "lazard", "evercore", "moelis",
}

// Small but legitimate boutiques and startups.
var tier3Companies = []string{
	"laven partners",
	"rolabotic",
}

// UniversityMultiplier returns the prestige multiplier for an institution:
// 1.3 for tier 1, 1.15 for tier 2, 1.0 otherwise. Matching is
// case-insensitive substring containment; empty input has no effect.
func UniversityMultiplier(institution string) float64 {
	if institution == "" {
		return 1.0
	}
	lower := strings.ToLower(institution)
	if containsAny(lower, tier1Universities) {
		return universityTier1Multiplier
	}
	if containsAny(lower, tier2Universities) {
		return universityTier2Multiplier
	}
	return 1.0
}

// CompanyMultiplier returns the prestige multiplier for an employer:
// 1.4 for tier 1, 1.2 for tier 2, 1.05 for tier 3, 1.0 otherwise.
func CompanyMultiplier(company string) float64 {
	if company == "" {
		return 1.0
	}
	lower := strings.ToLower(company)
	if containsAny(lower, tier1Companies) {
		return companyTier1Multiplier
	}
	if containsAny(lower, tier2Companies) {
		return companyTier2Multiplier
	}
	if containsAny(lower, tier3Companies) {
		return companyTier3Multiplier
	}
	return 1.0
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
