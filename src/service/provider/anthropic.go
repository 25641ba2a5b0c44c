package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"prism/src/config"
	"prism/src/service/augment"
	"prism/src/util"
)

const defaultAnthropicMaxTokens = 2000

// Anthropic calls the Claude Messages API
type Anthropic struct {
	client anthropic.Client
	model  string
}

// NewAnthropic creates a Claude provider
func NewAnthropic(cfg config.LLMConfig) (*Anthropic, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.Retry.MaxAttempts),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Anthropic{
		client: anthropic.NewClient(opts...),
		model:  cfg.Model,
	}, nil
}

// Name returns the provider name
func (c *Anthropic) Name() string { return "claude" }

// Complete sends the prompt as a single user message
func (c *Anthropic) Complete(ctx context.Context, prompt string, cfg augment.CompletionConfig) (string, error) {
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(maxTokens),
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Temperature: anthropic.Float(cfg.Temperature),
	}

	start := time.Now()
	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	util.Debug("claude completion took %v (input %d tokens, output %d tokens, stop %s)",
		time.Since(start), resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.StopReason)

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("anthropic messages: no text in response")
	}
	return sb.String(), nil
}
