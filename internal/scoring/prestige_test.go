package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniversityMultiplier(t *testing.T) {
	tests := []struct {
		institution string
		want        float64
	}{
		{"Massachusetts Institute of Technology (MIT)", 1.3},
		{"University of Oxford", 1.3},
		{"London School of Economics", 1.3},
		{"University of Manchester", 1.15},
		{"Carnegie Mellon University", 1.15},
		{"Unknown Polytechnic", 1.0},
		{"", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.institution, func(t *testing.T) {
			assert.InDelta(t, tt.want, UniversityMultiplier(tt.institution), 1e-9)
		})
	}
}

func TestUniversityMultiplier_CaseInsensitive(t *testing.T) {
	assert.InDelta(t, 1.3, UniversityMultiplier("HARVARD UNIVERSITY"), 1e-9)
	assert.InDelta(t, 1.3, UniversityMultiplier("harvard university"), 1e-9)
}

func TestCompanyMultiplier(t *testing.T) {
	tests := []struct {
		company string
		want    float64
	}{
		{"Google", 1.4},
		{"Goldman Sachs International", 1.4},
		{"McKinsey & Company", 1.4},
		{"Barclays Bank", 1.2},
		{"Lazard", 1.2},
		{"Laven Partners", 1.05},
		{"Some Startup Ltd", 1.0},
		{"", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.company, func(t *testing.T) {
			assert.InDelta(t, tt.want, CompanyMultiplier(tt.company), 1e-9)
		})
	}
}

func TestMultiplier_TierOrdering(t *testing.T) {
	assert.Greater(t, CompanyMultiplier("Google"), CompanyMultiplier("Barclays"))
	assert.Greater(t, CompanyMultiplier("Barclays"), CompanyMultiplier("Laven Partners"))
	assert.Greater(t, CompanyMultiplier("Laven Partners"), CompanyMultiplier("Nobody Knows Ltd"))
	assert.Greater(t, UniversityMultiplier("Oxford"), UniversityMultiplier("Manchester"))
}
