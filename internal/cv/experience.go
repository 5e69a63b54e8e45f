package cv

import (
	"regexp"
	"strings"
	"time"

	"cv-score/internal/models"
)

const (
	maxWorkEntries  = 10
	maxBullets      = 10
	minBlockLength  = 30
	minBulletLength = 15
	maxHeaderLines  = 4
	maxFieldLength  = 200

	unknownEmployer = "Unknown Company"
	unknownTitle    = "Unknown Position"
)

var (
	bulletPrefixPattern = regexp.MustCompile(`^[\x{2022}\-*\x{2013}]\s*`)
	monthPrefixPattern  = regexp.MustCompile(`(?i)^(?:` + monthNames + `)`)
	employerGapPattern  = regexp.MustCompile(`\s{2,}`)
)

// blockLayout enumerates the supported orderings of a job block's header
// lines, resolved by which line carries the date range.
type blockLayout int

const (
	layoutTitleCompanyDate blockLayout = iota // title / company / date line, or no date found
	layoutCompanyDateTitle                    // company and date share line 1, title on line 2
	layoutCompanyTitleDate                    // company on line 1, title and date share line 2
)

// blockHeader is the result of classifying a block's first lines.
type blockHeader struct {
	layout      blockLayout
	title       string
	employer    string
	dateLine    string
	bulletStart int
}

// seniorityBuckets is checked in order; the first bucket with a keyword hit
// wins. The broad mid bucket goes last so "Senior Engineer" resolves to
// senior, not to mid via "engineer".
var seniorityBuckets = []struct {
	level    models.Seniority
	keywords []string
}{
	{models.SeniorityJunior, []string{"junior", "jr", "associate", "entry", "trainee"}},
	{models.SeniorityLead, []string{"head", "director", "vp", "chief", "cto", "cio", "manager", "team lead"}},
	{models.SenioritySenior, []string{"senior", "sr", "lead", "principal", "staff"}},
	{models.SeniorityMid, []string{"developer", "engineer", "analyst", "specialist", "consultant"}},
}

// ParseExperience splits the experience section into per-job blocks and
// parses each one. At most 10 entries are returned.
func ParseExperience(sectionText string, now time.Time) []models.WorkExperience {
	if strings.TrimSpace(sectionText) == "" {
		return nil
	}

	var entries []models.WorkExperience
	for _, block := range splitExperienceBlocks(sectionText) {
		if len(strings.TrimSpace(block)) <= minBlockLength {
			continue
		}
		if entry := parseWorkBlock(block, now); entry != nil {
			entries = append(entries, *entry)
		}
		if len(entries) == maxWorkEntries {
			break
		}
	}
	return entries
}

// splitExperienceBlocks separates jobs on blank lines. A second date-range
// line inside one block also starts a new job, which handles CVs that run
// jobs together with no blank-line separation; the line just before it is
// carried into the new block when it reads like a title rather than a bullet.
func splitExperienceBlocks(text string) []string {
	var (
		blocks       []string
		current      []string
		blockHasDate bool
	)
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
		blockHasDate = false
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}

		isDateLine := dateRangePattern.MatchString(line) && !isBulletLine(line)
		if isDateLine && blockHasDate {
			var carry string
			if last := len(current) - 1; last >= 0 &&
				!isBulletLine(current[last]) && !dateRangePattern.MatchString(current[last]) {
				carry = current[last]
				current = current[:last]
			}
			flush()
			if carry != "" {
				current = append(current, carry)
			}
		}
		if isDateLine {
			blockHasDate = true
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") || strings.HasPrefix(line, "–")
}

// classifyBlock inspects the first few non-bullet lines for the one carrying
// a date range and infers the block layout from its position. Without a
// date-bearing line the default reading is first line = title, second =
// employer.
func classifyBlock(lines []string) blockHeader {
	header := blockHeader{layout: layoutTitleCompanyDate, bulletStart: 2}

	limit := maxHeaderLines
	if len(lines) < limit {
		limit = len(lines)
	}

	for i := 0; i < limit; i++ {
		line := lines[i]
		if isBulletLine(line) {
			header.bulletStart = i
			break
		}

		loc := dateRangePattern.FindStringIndex(line)
		if loc == nil {
			continue
		}

		header.dateLine = line
		beforeDate := strings.TrimSpace(line[:loc[0]])

		switch i {
		case 0:
			header.layout = layoutCompanyDateTitle
			header.employer = beforeDate
			if header.employer == "" {
				header.employer = strings.Fields(line)[0]
			}
			if len(lines) > 1 {
				header.title = lines[1]
			}
			header.bulletStart = 2
		case 1:
			header.layout = layoutCompanyTitleDate
			header.employer = lines[0]
			header.title = beforeDate
			if header.title == "" {
				header.title = unknownTitle
			}
			header.bulletStart = 2
		default:
			header.layout = layoutTitleCompanyDate
			header.title = lines[0]
			header.employer = lines[1]
			header.bulletStart = i + 1
		}
		break
	}

	if header.title == "" {
		header.title = lines[0]
	}
	if header.employer == "" {
		if len(lines) > 1 {
			header.employer = lines[1]
		} else {
			header.employer = unknownEmployer
		}
	}
	return header
}

func parseWorkBlock(block string, now time.Time) *models.WorkExperience {
	var lines []string
	for _, l := range strings.Split(block, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return nil
	}

	header := classifyBlock(lines)
	employer := cleanEmployer(header.employer)

	dateSource := header.dateLine
	if dateSource == "" {
		dateSource = block
	}
	dates := ExtractDates(dateSource)

	var startDate, endDate *time.Time
	if len(dates) > 0 {
		startDate = &dates[0]
	}
	if len(dates) > 1 {
		endDate = &dates[1]
	}

	var durationMonths *int
	if startDate != nil {
		end := now
		if endDate != nil {
			end = *endDate
		}
		months := monthsBetween(*startDate, end)
		if months < 1 {
			months = 1
		}
		durationMonths = &months
	}

	var bullets []string
	if header.bulletStart < len(lines) {
		for _, l := range lines[header.bulletStart:] {
			clean := strings.TrimSpace(bulletPrefixPattern.ReplaceAllString(l, ""))
			if len(clean) > minBulletLength && !monthPrefixPattern.MatchString(clean) {
				bullets = append(bullets, clean)
			}
			if len(bullets) == maxBullets {
				break
			}
		}
	}

	confidence := 0.5
	if len(dates) >= 2 {
		confidence += 0.2
	}
	if len(bullets) > 0 {
		confidence += 0.15
	}
	if employer != unknownEmployer {
		confidence += 0.15
	}
	if confidence > 0.95 {
		confidence = 0.95
	}

	return &models.WorkExperience{
		Employer:          truncate(employer, maxFieldLength),
		Title:             truncate(header.title, maxFieldLength),
		StartDate:         startDate,
		EndDate:           endDate,
		DurationMonths:    durationMonths,
		Bullets:           bullets,
		InferredSeniority: inferSeniority(header.title),
		Confidence:        confidence,
	}
}

// cleanEmployer strips trailing location info: text after a comma, or after a
// run of 2+ spaces ("Acme Corp  London").
func cleanEmployer(employer string) string {
	if idx := strings.Index(employer, ","); idx >= 0 {
		return strings.TrimSpace(employer[:idx])
	}
	if parts := employerGapPattern.Split(employer, 2); len(parts) > 1 {
		return strings.TrimSpace(parts[0])
	}
	return strings.TrimSpace(employer)
}

func inferSeniority(title string) models.Seniority {
	titleLower := strings.ToLower(title)
	for _, bucket := range seniorityBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(titleLower, kw) {
				return bucket.level
			}
		}
	}
	return models.SeniorityMid
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
