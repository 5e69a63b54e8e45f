package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Extraction limits
	MaxPDFPages   int
	MinTextLength int

	// LLM configuration
	LLMScoreEnabled bool
	GeminiAPIKey    string
	LLMModel        string

	LogLevel string
}

// LoadConfig reads configuration from a .env file when present, falling back
// to process environment variables, with defaults for everything except the
// API key.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		MaxPDFPages:   envInt("MAX_PDF_PAGES", 12),
		MinTextLength: envInt("MIN_TEXT_LENGTH", 50),

		LLMScoreEnabled: envBool("LLM_SCORE_ENABLED", false),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		LLMModel:        envString("LLM_MODEL", "gemini-2.0-flash"),

		LogLevel: envString("LOG_LEVEL", "info"),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid integer for %s: %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: invalid boolean for %s: %q, using %t", key, v, fallback)
		return fallback
	}
	return b
}
