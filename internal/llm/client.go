package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Generator wraps the Gemini client behind a single text-in, text-out call.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator builds a Gemini-backed generator. The model name falls back
// to a sensible default when empty.
func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("llm: api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: create client: %w", err)
	}

	return &Generator{client: client, model: model}, nil
}

// GenerateContent sends the prompt and returns the concatenated text parts
// of the first response. JSON output is requested so the caller can parse
// the reply directly.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("llm: generate content: %w", err)
	}

	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			sb.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("llm: empty response from model %s", g.model)
	}
	return text, nil
}
