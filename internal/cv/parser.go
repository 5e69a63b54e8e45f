package cv

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cv-score/internal/models"
)

// ParserName identifies the rule-based parsing path in parsing metadata.
const ParserName = "rules"

// Parser orchestrates text extraction and the per-section sub-parsers into a
// Candidate. It holds no cross-call state and is safe for concurrent use on
// disjoint inputs.
type Parser struct {
	extractor *TextExtractor
	logger    *zap.Logger
	now       func() time.Time
}

func NewParser(extractor *TextExtractor, logger *zap.Logger) *Parser {
	if extractor == nil {
		extractor = NewTextExtractor(0, 0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		extractor: extractor,
		logger:    logger,
		now:       time.Now,
	}
}

// ParseCV extracts text from the document and runs every section parser.
// Section parsers are fault-isolated: a failure in one degrades that entity
// list to empty without aborting the parse. Only document-level failures
// (unsupported type, unreadable or empty document) are returned as errors.
func (p *Parser) ParseCV(data []byte, filename string) (*models.Candidate, error) {
	text, err := p.extractor.Extract(data, filename)
	if err != nil {
		return nil, err
	}

	hash := sha256.Sum256(data)
	now := p.now().UTC()

	candidate := &models.Candidate{
		RawText:  text,
		FileHash: hex.EncodeToString(hash[:]),
		ParsingMetadata: models.ParsingMetadata{
			Filename:   filename,
			TextLength: len(text),
			Parser:     ParserName,
			ParseID:    uuid.NewString(),
			ParsedAt:   now,
		},
	}

	runSection(p.logger, "contact", func() {
		candidate.Contact = ExtractContact(text)
	})
	runSection(p.logger, "experience", func() {
		candidate.WorkExperience = ParseExperience(SectionText(text, SectionExperience), now)
	})
	runSection(p.logger, "education", func() {
		candidate.Education = ParseEducation(SectionText(text, SectionEducation))
	})
	runSection(p.logger, "skills", func() {
		skillsText := SectionText(text, SectionSkills)
		if skillsText == "" {
			skillsText = text
		}
		candidate.Skills = ExtractSkills(skillsText)
	})
	runSection(p.logger, "certifications", func() {
		candidate.Certifications = ParseCertifications(SectionText(text, SectionCertifications))
	})
	runSection(p.logger, "languages", func() {
		candidate.Languages = ParseLanguages(SectionText(text, SectionLanguages))
	})

	p.logger.Debug("parsed cv",
		zap.String("filename", filename),
		zap.Int("text_length", len(text)),
		zap.Int("work_entries", len(candidate.WorkExperience)),
		zap.Int("skills", len(candidate.Skills)),
	)

	return candidate, nil
}

// runSection executes one section parser, converting a panic into a logged
// warning so a malformed section never takes down the whole parse.
func runSection(logger *zap.Logger, section string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("section parser failed",
				zap.String("section", section),
				zap.Any("reason", r),
			)
		}
	}()
	fn()
}
