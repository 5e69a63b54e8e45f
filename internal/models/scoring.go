package models

// ScoringMode identifies which path produced a result.
type ScoringMode string

const (
	ModeBaseline ScoringMode = "baseline"
	ModeLLM      ScoringMode = "llm"
)

// FlagSeverity grades a risk flag.
type FlagSeverity string

const (
	SeverityLow    FlagSeverity = "low"
	SeverityMedium FlagSeverity = "medium"
	SeverityHigh   FlagSeverity = "high"
)

// RiskFlag is a structured warning attached to a scoring result.
type RiskFlag struct {
	Type        string       `json:"type"`
	Severity    FlagSeverity `json:"severity"`
	Description string       `json:"description"`
}

// ScoreBreakdown carries the raw component scores and their weighted
// contributions, both rounded to 2 decimals for audit.
type ScoreBreakdown struct {
	SkillsScore         float64 `json:"skills_score"`
	ExperienceScore     float64 `json:"experience_score"`
	EducationScore      float64 `json:"education_score"`
	CertificationsScore float64 `json:"certifications_score"`
	StabilityScore      float64 `json:"stability_score"`

	SkillsContribution         float64 `json:"skills_contribution"`
	ExperienceContribution     float64 `json:"experience_contribution"`
	EducationContribution      float64 `json:"education_contribution"`
	CertificationsContribution float64 `json:"certifications_contribution"`
	StabilityContribution      float64 `json:"stability_contribution"`
}

// ScoringResult is the full output of scoring one candidate/job pair.
type ScoringResult struct {
	OverallScore  float64        `json:"overall_score"`
	Breakdown     ScoreBreakdown `json:"breakdown"`
	Rationale     *string        `json:"rationale"`
	Flags         []RiskFlag     `json:"flags"`
	Mode          ScoringMode    `json:"mode"`
	LLMAdjustment *float64       `json:"llm_adjustment"`
	ModelVersion  string         `json:"model_version"`
	RulesVersion  string         `json:"rules_version"`
}
