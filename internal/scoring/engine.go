package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"go.uber.org/zap"

	"cv-score/internal/models"
)

// Version strings are part of the public contract: bumped whenever scoring
// heuristics change so downstream caching and audit can detect drift.
const (
	RulesVersion = "2.1.0"
	ModelVersion = "baseline-2.1"
)

// JobLevel is the coarse classification of a job posting that gates how
// lenient or harsh each component scorer is.
type JobLevel string

const (
	LevelIntern JobLevel = "intern"
	LevelEntry  JobLevel = "entry"
	LevelMid    JobLevel = "mid"
	LevelSenior JobLevel = "senior"
)

var (
	internKeywords = []string{"intern", "internship", "trainee", "placement", "summer analyst", "spring week"}
	entryKeywords  = []string{"entry", "junior", "graduate", "analyst", "associate", "assistant"}
	seniorKeywords = []string{"senior", "lead", "principal", "staff", "head", "director", "manager", "vp", "vice president"}
)

// Weights are the component weights of the overall score; they must sum
// to 100.
type Weights struct {
	Skills         float64 `json:"skills"`
	Experience     float64 `json:"experience"`
	Education      float64 `json:"education"`
	Certifications float64 `json:"certifications"`
	Stability      float64 `json:"stability"`
}

// DefaultWeights reflect that skills dominate the match decision.
var DefaultWeights = Weights{
	Skills:         55,
	Experience:     25,
	Education:      10,
	Certifications: 5,
	Stability:      5,
}

func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.Certifications + w.Stability
}

func (w Weights) Valid() bool {
	return math.Abs(w.Sum()-100) < 1e-9
}

// Engine is the deterministic baseline scorer. It is stateless apart from
// its collaborators and safe for concurrent use on disjoint inputs.
type Engine struct {
	matcher *SkillMatcher
	logger  *zap.Logger
	now     func() time.Time
}

func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		matcher: NewSkillMatcher(),
		logger:  logger,
		now:     time.Now,
	}
}

// Score computes the weighted match score for a candidate against a job.
// It is a total function: every well-formed input produces a result. A nil
// weights override, or one that does not sum to 100, falls back to the
// defaults.
func (e *Engine) Score(candidate *models.Candidate, job *models.JobProfile, weights *Weights) models.ScoringResult {
	w := DefaultWeights
	if weights != nil {
		if weights.Valid() {
			w = *weights
		} else {
			e.logger.Warn("custom weights do not sum to 100, using defaults",
				zap.Float64("sum", weights.Sum()))
		}
	}

	level := e.detectJobLevel(job)

	skillsScore := e.scoreSkills(candidate, job, level)
	experienceScore := e.scoreExperience(candidate, job, level)
	educationScore := e.scoreEducation(candidate, job)
	certificationsScore := e.scoreCertifications(candidate, job)
	stabilityScore := e.scoreStability(candidate, level)

	overall := skillsScore*w.Skills/100 +
		experienceScore*w.Experience/100 +
		educationScore*w.Education/100 +
		certificationsScore*w.Certifications/100 +
		stabilityScore*w.Stability/100

	breakdown := models.ScoreBreakdown{
		SkillsScore:         skillsScore,
		ExperienceScore:     experienceScore,
		EducationScore:      educationScore,
		CertificationsScore: certificationsScore,
		StabilityScore:      stabilityScore,

		SkillsContribution:         round2(skillsScore * w.Skills / 100),
		ExperienceContribution:     round2(experienceScore * w.Experience / 100),
		EducationContribution:      round2(educationScore * w.Education / 100),
		CertificationsContribution: round2(certificationsScore * w.Certifications / 100),
		StabilityContribution:      round2(stabilityScore * w.Stability / 100),
	}

	result := models.ScoringResult{
		OverallScore: round2(overall),
		Breakdown:    breakdown,
		Flags:        e.generateFlags(candidate, skillsScore, experienceScore, stabilityScore),
		Mode:         models.ModeBaseline,
		ModelVersion: ModelVersion,
		RulesVersion: RulesVersion,
	}

	e.logger.Debug("scored candidate",
		zap.Float64("overall", result.OverallScore),
		zap.String("job_level", string(level)),
		zap.Int("flags", len(result.Flags)),
	)
	return result
}

// detectJobLevel classifies the job from title and description keywords,
// intern checked first as the most specific, then falls back to the stated
// experience requirement.
func (e *Engine) detectJobLevel(job *models.JobProfile) JobLevel {
	combined := strings.ToLower(job.Title + " " + job.Description)

	if keywordHit(combined, internKeywords) {
		return LevelIntern
	}
	if keywordHit(combined, seniorKeywords) {
		return LevelSenior
	}
	if keywordHit(combined, entryKeywords) {
		return LevelEntry
	}

	if job.MinYearsExperience != nil {
		switch {
		case *job.MinYearsExperience <= 1:
			return LevelEntry
		case *job.MinYearsExperience <= 3:
			return LevelMid
		default:
			return LevelSenior
		}
	}
	return LevelMid
}

// courseworkSkills maps education coursework keywords to pseudo-skill names
// credited to intern/entry candidates whose CVs list coursework instead of
// job-acquired skills.
var courseworkSkills = []struct {
	keyword string
	skill   string
}{
	{"corporate finance", "corporate finance"},
	{"financial modelling", "financial modeling"},
	{"financial modeling", "financial modeling"},
	{"portfolio management", "portfolio management"},
	{"fx", "foreign exchange"},
	{"debt markets", "debt markets"},
	{"econometrics", "econometrics"},
	{"accounting", "accounting"},
	{"valuation", "valuation"},
	{"investment", "investment"},
	{"financial analysis", "financial analysis"},
}

func (e *Engine) scoreSkills(candidate *models.Candidate, job *models.JobProfile, level JobLevel) float64 {
	if len(job.RequiredSkills) == 0 && len(job.PreferredSkills) == 0 {
		// No requirements: credit the candidate for having any skills at all.
		score := 50.0
		if len(candidate.Skills) > 0 {
			score = math.Min(80, 50+float64(len(candidate.Skills))*5)
		}
		return round2(score)
	}

	candidateSkills := make(map[string]models.Skill, len(candidate.Skills))
	for _, s := range candidate.Skills {
		candidateSkills[strings.ToLower(s.Name)] = s
	}

	// Interns and graduates rarely list job-acquired skills; synthesize
	// pseudo-skills from coursework mentions in their education entries.
	if level == LevelIntern || level == LevelEntry {
		for _, edu := range candidate.Education {
			coursework := strings.ToLower(stringOrEmpty(edu.Field) + " " + edu.Institution)
			for _, cs := range courseworkSkills {
				if strings.Contains(coursework, cs.keyword) {
					if _, ok := candidateSkills[cs.skill]; !ok {
						candidateSkills[cs.skill] = models.Skill{
							Name:        cs.skill,
							CanonicalID: strings.ReplaceAll(cs.skill, " ", "_"),
							Group:       "coursework",
							Confidence:  0.6,
						}
					}
				}
			}
		}
	}

	var baseCredit float64
	if n := float64(len(candidateSkills)); n > 0 {
		switch level {
		case LevelIntern:
			baseCredit = math.Min(40, n*4)
		case LevelEntry:
			baseCredit = math.Min(35, n*3.5)
		default:
			baseCredit = math.Min(30, n*3)
		}
	}

	requiredScore := 85.0
	if len(job.RequiredSkills) > 0 {
		var matches float64
		for _, req := range job.RequiredSkills {
			matches += e.matcher.MatchSkill(req, candidateSkills)
		}
		requiredScore = requiredBand(matches/float64(len(job.RequiredSkills)), baseCredit)
	}

	preferredScore := requiredScore
	if len(job.PreferredSkills) > 0 {
		var matches float64
		for _, pref := range job.PreferredSkills {
			matches += e.matcher.MatchSkill(pref, candidateSkills)
		}
		ratio := matches / float64(len(job.PreferredSkills))
		preferredScore = math.Min(92, ratio*92)
	}

	var score float64
	if len(job.RequiredSkills) > 0 {
		score = requiredScore*0.65 + preferredScore*0.35
	} else {
		score = preferredScore
	}

	if score < baseCredit && len(candidate.Skills) > 0 {
		score = baseCredit
	}
	return round2(score)
}

// requiredBand maps the matched-requirement ratio to a score band.
// Non-linear: "mostly there" is rewarded, near-zero matches are penalized
// hard. The bands join continuously at 0.5 and 0.8, but not at 0.3: the
// lowest band adds the level's base credit, so a ratio just under 0.3 can
// outscore the 0.3 floor of 50 when base credit is high.
func requiredBand(ratio, baseCredit float64) float64 {
	switch {
	case ratio >= 0.8:
		return math.Min(95, 85+(ratio-0.8)*50)
	case ratio >= 0.5:
		return 70 + (ratio-0.5)*50
	case ratio >= 0.3:
		return 50 + (ratio-0.3)*100
	default:
		return baseCredit + ratio*67
	}
}

func (e *Engine) scoreExperience(candidate *models.Candidate, job *models.JobProfile, level JobLevel) float64 {
	if len(candidate.WorkExperience) == 0 {
		// No history is fine for interns, weak for entry, fatal otherwise.
		switch level {
		case LevelIntern:
			return 65.0
		case LevelEntry:
			return 30.0
		default:
			return 0.0
		}
	}

	var (
		totalMonths    float64
		weightedMonths float64
		prestigeMonths float64
		maxPrestige    = 1.0
		currentYear    = e.now().Year()
	)

	for _, work := range candidate.WorkExperience {
		if work.DurationMonths == nil {
			continue
		}
		months := float64(*work.DurationMonths)
		totalMonths += months

		prestige := CompanyMultiplier(work.Employer)
		if prestige > maxPrestige {
			maxPrestige = prestige
		}

		recency := 1.0 // current role
		if work.EndDate != nil {
			yearsAgo := float64(currentYear - work.EndDate.Year())
			recency = math.Max(0.5, 1.0-yearsAgo*0.1)
		}
		weightedMonths += months * recency
		prestigeMonths += months * recency * prestige
	}

	totalYears := totalMonths / 12
	weightedYears := weightedMonths / 12
	prestigeYears := prestigeMonths / 12

	var score float64
	switch level {
	case LevelIntern:
		if allShortStints(candidate.WorkExperience) || totalYears < 1 {
			// A short stint at a prestigious firm beats six months at an
			// unknown one; tier sets the base, prestige-weighted months
			// scale the bonus.
			var base, maxBonus float64
			switch {
			case maxPrestige >= 1.4:
				base, maxBonus = 70, 25
			case maxPrestige >= 1.2:
				base, maxBonus = 60, 25
			case maxPrestige >= 1.05:
				base, maxBonus = 45, 20
			default:
				base, maxBonus = 35, 15
			}
			const targetYears = 0.5
			bonus := prestigeYears / targetYears * maxBonus
			score = math.Min(base+maxBonus, base+bonus)
		} else {
			// Overqualified for an internship but still a good signal.
			score = 90 + (maxPrestige-1.0)*5
		}

	case LevelEntry:
		if totalYears <= 2 {
			score = math.Min(95, 75+prestigeYears/2*20)
		} else {
			score = 85.0
		}

	default:
		if job.MinYearsExperience != nil && *job.MinYearsExperience > 0 {
			minYears := *job.MinYearsExperience
			if totalYears >= minYears {
				preferred := minYears * 1.5
				if job.PreferredYearsExperience != nil {
					preferred = *job.PreferredYearsExperience
				}
				span := preferred - minYears
				if span <= 0 {
					span = 1
				}
				excess := math.Min(prestigeYears-minYears, preferred-minYears)
				score = math.Min(95, 75+excess/span*20)
			} else {
				base := totalYears / minYears * 75
				score = math.Min(85, base+(maxPrestige-1.0)*20)
			}
		} else {
			base := math.Min(85, weightedYears/6*85)
			score = math.Min(95, base+(maxPrestige-1.0)*10)
		}
	}

	return round2(clampScore(score))
}

func (e *Engine) scoreEducation(candidate *models.Candidate, job *models.JobProfile) float64 {
	if len(candidate.Education) == 0 {
		if job.MinEducation != "" {
			return 0.0
		}
		return 50.0
	}

	var (
		highestRank int
		maxPrestige = 1.0
	)
	for _, edu := range candidate.Education {
		if rank := edu.Degree.Rank(); rank > highestRank {
			highestRank = rank
		}
		if prestige := UniversityMultiplier(edu.Institution); prestige > maxPrestige {
			maxPrestige = prestige
		}
	}

	var score float64
	if job.MinEducation == "" {
		if highestRank > 0 {
			base := math.Min(80, 50+float64(highestRank)*8)
			score = math.Min(92, base+(maxPrestige-1.0)*20)
		} else {
			score = 50.0
		}
		return round2(score)
	}

	minRank := job.MinEducation.Rank()
	if highestRank >= minRank {
		score = 88.0
		if job.PreferredEducation != "" && highestRank >= job.PreferredEducation.Rank() {
			score = 93.0
		}
		score = math.Min(98, score+(maxPrestige-1.0)*15)
	} else {
		var base float64
		if minRank > 0 {
			base = float64(highestRank) / float64(minRank) * 70
		}
		score = math.Min(80, base+(maxPrestige-1.0)*15)
	}
	return round2(score)
}

func (e *Engine) scoreCertifications(candidate *models.Candidate, job *models.JobProfile) float64 {
	if len(job.RequiredCertifications) == 0 {
		score := 50.0
		if len(candidate.Certifications) > 0 {
			score = math.Min(80, 50+float64(len(candidate.Certifications))*10)
		}
		return round2(score)
	}

	if len(candidate.Certifications) == 0 {
		return 0.0
	}

	matches := 0
	for _, required := range job.RequiredCertifications {
		for _, cert := range candidate.Certifications {
			if fuzzy.Ratio(strings.ToLower(required), strings.ToLower(cert.Name)) > 80 {
				matches++
				break
			}
		}
	}

	// Certifications never reach full marks; they are a secondary signal.
	score := math.Min(90, float64(matches)/float64(len(job.RequiredCertifications))*90)
	return round2(score)
}

func (e *Engine) scoreStability(candidate *models.Candidate, level JobLevel) float64 {
	if len(candidate.WorkExperience) < 2 {
		// Insufficient history is not volatility.
		if level == LevelIntern || level == LevelEntry {
			return 85.0
		}
		return 75.0
	}

	// Short stints are expected early in a career; score participation,
	// not tenure length.
	if level == LevelIntern || level == LevelEntry || allShortStints(candidate.WorkExperience) {
		if len(candidate.WorkExperience) >= 2 {
			return 85.0
		}
		return 80.0
	}

	var tenures []float64
	for _, work := range candidate.WorkExperience {
		if work.DurationMonths != nil {
			tenures = append(tenures, float64(*work.DurationMonths))
		}
	}
	if len(tenures) == 0 {
		return 75.0
	}

	var sum float64
	for _, t := range tenures {
		sum += t
	}
	avgYears := sum / float64(len(tenures)) / 12

	var score float64
	switch {
	case avgYears >= 4:
		score = 90
	case avgYears >= 3:
		score = 85
	case avgYears >= 2:
		score = 75
	case avgYears >= 1:
		score = 60 + (avgYears-1)*15
	default:
		score = avgYears * 60
	}

	shortStints := 0
	for _, t := range tenures {
		if t < 12 {
			shortStints++
		}
	}
	if shortStints >= 3 {
		score *= 0.7
	}

	return round2(score)
}

func (e *Engine) generateFlags(candidate *models.Candidate, skillsScore, experienceScore, stabilityScore float64) []models.RiskFlag {
	var flags []models.RiskFlag

	if skillsScore < 60 {
		flags = append(flags, models.RiskFlag{
			Type:        "missing_required_skills",
			Severity:    models.SeverityHigh,
			Description: fmt.Sprintf("Skills match is low (%.0f/100). May lack required competencies.", skillsScore),
		})
	}
	if experienceScore < 50 {
		flags = append(flags, models.RiskFlag{
			Type:        "insufficient_experience",
			Severity:    models.SeverityMedium,
			Description: fmt.Sprintf("Experience score is low (%.0f/100). May not meet minimum requirements.", experienceScore),
		})
	}
	if stabilityScore < 60 {
		flags = append(flags, models.RiskFlag{
			Type:        "tenure_volatility",
			Severity:    models.SeverityMedium,
			Description: fmt.Sprintf("Stability score is low (%.0f/100). History of short tenures.", stabilityScore),
		})
	}

	if gap := findEmploymentGap(candidate.WorkExperience); gap != nil {
		flags = append(flags, *gap)
	}

	return flags
}

// findEmploymentGap reports the first gap longer than 6 months between
// chronologically adjacent roles. Only the first gap is flagged.
func findEmploymentGap(work []models.WorkExperience) *models.RiskFlag {
	if len(work) < 2 {
		return nil
	}

	sorted := make([]models.WorkExperience, len(work))
	copy(sorted, work)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].StartDate, sorted[j].StartDate
		if a == nil {
			return b != nil
		}
		if b == nil {
			return false
		}
		return a.Before(*b)
	})

	for i := 0; i < len(sorted)-1; i++ {
		current, next := sorted[i], sorted[i+1]
		if current.EndDate == nil || next.StartDate == nil {
			continue
		}
		gapMonths := (next.StartDate.Year()-current.EndDate.Year())*12 +
			int(next.StartDate.Month()) - int(current.EndDate.Month())
		if gapMonths > 6 {
			return &models.RiskFlag{
				Type:     "employment_gap",
				Severity: models.SeverityLow,
				Description: fmt.Sprintf("Gap of %d months between %s and %s",
					gapMonths, current.Employer, next.Employer),
			}
		}
	}
	return nil
}

// allShortStints reports whether every entry has a known duration of at most
// 6 months, the signature of an internship-only history.
func allShortStints(work []models.WorkExperience) bool {
	if len(work) == 0 {
		return false
	}
	for _, w := range work {
		if w.DurationMonths == nil || *w.DurationMonths > 6 {
			return false
		}
	}
	return true
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
