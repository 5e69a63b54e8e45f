package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cv-score/internal/config"
	"cv-score/internal/cv"
	"cv-score/internal/llm"
	"cv-score/internal/models"
	"cv-score/internal/scoring"
)

func main() {
	cvPath := flag.String("cv", "", "path to the CV document (pdf, docx, doc or txt)")
	jobPath := flag.String("job", "", "path to a job profile JSON file (optional, parse only when omitted)")
	weightsFlag := flag.String("weights", "", "comma-separated component weights: skills,experience,education,certifications,stability")
	useLLM := flag.Bool("llm", false, "refine the baseline score with the LLM rescorer")
	flag.Parse()

	if *cvPath == "" {
		fmt.Fprintln(os.Stderr, "usage: cvscore -cv <file> [-job <file>] [-llm]")
		os.Exit(2)
	}

	cfg := config.LoadConfig()
	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	data, err := os.ReadFile(*cvPath)
	if err != nil {
		logger.Fatal("read cv file", zap.Error(err))
	}

	extractor := cv.NewTextExtractor(cfg.MaxPDFPages, cfg.MinTextLength)
	parser := cv.NewParser(extractor, logger)

	candidate, err := parser.ParseCV(data, filepath.Base(*cvPath))
	if err != nil {
		logger.Fatal("parse cv", zap.Error(err))
	}

	output := struct {
		Candidate *models.Candidate     `json:"candidate"`
		Result    *models.ScoringResult `json:"result,omitempty"`
	}{Candidate: candidate}

	if *jobPath != "" {
		job, err := loadJob(*jobPath)
		if err != nil {
			logger.Fatal("load job profile", zap.Error(err))
		}
		weights, err := parseWeights(*weightsFlag)
		if err != nil {
			logger.Fatal("parse weights", zap.Error(err))
		}

		engine := scoring.NewEngine(logger)
		result := engine.Score(candidate, job, weights)

		if *useLLM || cfg.LLMScoreEnabled {
			result = rescore(logger, cfg, candidate, job, result)
		}
		output.Result = &result
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		logger.Fatal("encode output", zap.Error(err))
	}
}

func rescore(logger *zap.Logger, cfg *config.Config, candidate *models.Candidate, job *models.JobProfile, baseline models.ScoringResult) models.ScoringResult {
	ctx := context.Background()

	generator, err := llm.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
	if err != nil {
		logger.Warn("llm unavailable, keeping baseline score", zap.Error(err))
		return baseline
	}

	result, err := llm.NewRescorer(generator, logger).Rescore(ctx, candidate, job, baseline)
	if err != nil {
		logger.Warn("llm rescore failed, keeping baseline score", zap.Error(err))
		return baseline
	}
	return result
}

func parseWeights(s string) (*scoring.Weights, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 5 {
		return nil, fmt.Errorf("expected 5 weights, got %d", len(parts))
	}
	vals := make([]float64, 5)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("weight %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return &scoring.Weights{
		Skills:         vals[0],
		Experience:     vals[1],
		Education:      vals[2],
		Certifications: vals[3],
		Stability:      vals[4],
	}, nil
}

func loadJob(path string) (*models.JobProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var job models.JobProfile
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse job profile %s: %w", path, err)
	}
	return &job, nil
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
