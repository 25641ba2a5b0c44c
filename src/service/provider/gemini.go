package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "google.golang.org/genai"

	"prism/src/config"
	"prism/src/service/augment"
)

// Gemini calls the Gemini API through the genai client
type Gemini struct {
	cli   *genai.Client
	model string
}

// NewGemini creates a Gemini provider
func NewGemini(ctx context.Context, cfg config.LLMConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, err
	}
	return &Gemini{cli: cli, model: cfg.Model}, nil
}

// Name returns the provider name
func (g *Gemini) Name() string { return "gemini" }

// Complete asks for an application/json reply
func (g *Gemini) Complete(ctx context.Context, prompt string, cfg augment.CompletionConfig) (string, error) {
	temperature := float32(cfg.Temperature)
	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		Temperature:       &temperature,
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}
	if cfg.MaxTokens > 0 {
		genCfg.MaxOutputTokens = int32(cfg.MaxTokens)
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		genCfg,
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini generate: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
