package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"cv-score/internal/models"
)

// Adjustment bounds. The model can nudge a baseline score, never replace it.
const (
	maxAdjustment = 10.0
	minAdjustment = -10.0
)

// contentGenerator is the slice of Generator the rescorer needs; tests
// substitute a canned implementation.
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// verdict is the JSON shape the model is asked to produce.
type verdict struct {
	Adjustment float64  `json:"adjustment"`
	Rationale  string   `json:"rationale"`
	Flags      []string `json:"flags"`
}

// Rescorer refines a baseline scoring result with a model-generated
// adjustment and rationale. The baseline breakdown is never modified; only
// the overall score moves, and only within the adjustment bounds.
type Rescorer struct {
	generator contentGenerator
	logger    *zap.Logger
}

func NewRescorer(generator contentGenerator, logger *zap.Logger) *Rescorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rescorer{generator: generator, logger: logger}
}

// Rescore asks the model for a bounded adjustment to the baseline result.
// On any failure the baseline result is returned unchanged alongside the
// error, so callers can always fall back to the deterministic score.
func (r *Rescorer) Rescore(ctx context.Context, candidate *models.Candidate, job *models.JobProfile, baseline models.ScoringResult) (models.ScoringResult, error) {
	prompt, err := buildPrompt(candidate, job, baseline)
	if err != nil {
		return baseline, fmt.Errorf("llm: build prompt: %w", err)
	}

	raw, err := r.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return baseline, err
	}

	var v verdict
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &v); err != nil {
		return baseline, fmt.Errorf("llm: parse verdict: %w", err)
	}

	adjustment := v.Adjustment
	if adjustment > maxAdjustment {
		adjustment = maxAdjustment
	}
	if adjustment < minAdjustment {
		adjustment = minAdjustment
	}

	adjusted := baseline.OverallScore + adjustment
	if adjusted > 100 {
		adjusted = 100
	}
	if adjusted < 0 {
		adjusted = 0
	}

	result := baseline
	result.OverallScore = adjusted
	result.Mode = models.ModeLLM
	result.LLMAdjustment = &adjustment
	if v.Rationale != "" {
		result.Rationale = &v.Rationale
	}
	for _, flag := range v.Flags {
		result.Flags = append(result.Flags, models.RiskFlag{
			Type:        "llm_observation",
			Severity:    models.SeverityLow,
			Description: flag,
		})
	}

	r.logger.Debug("rescored candidate",
		zap.Float64("baseline", baseline.OverallScore),
		zap.Float64("adjustment", adjustment),
		zap.Float64("adjusted", adjusted),
	)
	return result, nil
}

func buildPrompt(candidate *models.Candidate, job *models.JobProfile, baseline models.ScoringResult) (string, error) {
	candidateJSON, err := json.Marshal(summarizeCandidate(candidate))
	if err != nil {
		return "", err
	}
	jobJSON, err := json.Marshal(job)
	if err != nil {
		return "", err
	}
	breakdownJSON, err := json.Marshal(baseline.Breakdown)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`You are reviewing an automated candidate-job match score.

Job profile:
%s

Candidate summary:
%s

Baseline score: %.2f out of 100, with this component breakdown:
%s

Review the match for signals the rule-based scorer cannot see, such as career
trajectory, relevance of specific projects, or mismatched seniority. Respond
with a JSON object:
{"adjustment": <number between -10 and 10>, "rationale": "<one or two sentences>", "flags": ["<optional concern>", ...]}

The adjustment is added to the baseline score. Use 0 if the baseline looks right.`,
		jobJSON, candidateJSON, baseline.OverallScore, breakdownJSON), nil
}

// candidateSummary is the trimmed view sent to the model. Raw text and
// contact details are excluded to keep the prompt small and free of PII.
type candidateSummary struct {
	WorkExperience []models.WorkExperience `json:"work_experience"`
	Education      []models.Education      `json:"education"`
	Skills         []string                `json:"skills"`
	Certifications []string                `json:"certifications"`
	TotalYears     float64                 `json:"total_years_experience"`
}

func summarizeCandidate(candidate *models.Candidate) candidateSummary {
	summary := candidateSummary{
		WorkExperience: candidate.WorkExperience,
		Education:      candidate.Education,
	}
	for _, s := range candidate.Skills {
		summary.Skills = append(summary.Skills, s.Name)
	}
	for _, c := range candidate.Certifications {
		summary.Certifications = append(summary.Certifications, c.Name)
	}
	var months int
	for _, w := range candidate.WorkExperience {
		if w.DurationMonths != nil {
			months += *w.DurationMonths
		}
	}
	summary.TotalYears = float64(months) / 12
	return summary
}

// stripJSONFences removes a markdown code fence wrapper when the model
// ignores the JSON response instruction.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
