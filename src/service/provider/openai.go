package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"

	"prism/src/config"
	"prism/src/service/augment"
	"prism/src/util"
)

const azureAPIVersion = "2024-06-01"

// OpenAI serves both the OpenAI API and Azure OpenAI deployments
type OpenAI struct {
	client openai.Client
	model  string
	name   string
}

// NewOpenAI creates a provider for api.openai.com or a compatible base URL
func NewOpenAI(cfg config.LLMConfig) (*OpenAI, error) {
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

	return &OpenAI{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		name:   "openai",
	}, nil
}

// NewAzure creates a provider for an Azure OpenAI endpoint; the model is the
// deployment name
func NewAzure(cfg config.LLMConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("azure endpoint (base_url) is required")
	}

	return &OpenAI{
		client: openai.NewClient(
			azure.WithEndpoint(cfg.BaseURL, azureAPIVersion),
			azure.WithAPIKey(cfg.APIKey),
			option.WithMaxRetries(cfg.Retry.MaxAttempts),
		),
		model: cfg.Model,
		name:  "azure",
	}, nil
}

// Name returns the provider name
func (c *OpenAI) Name() string { return c.name }

// Complete sends one system and one user message
func (c *OpenAI) Complete(ctx context.Context, prompt string, cfg augment.CompletionConfig) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(cfg.Temperature),
	}
	if cfg.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(cfg.MaxTokens))
	}

	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%s chat: %w", c.name, err)
	}

	util.Debug("%s completion took %v (prompt %d tokens, completion %d tokens)",
		c.name, time.Since(start), resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s chat: no choices in response", c.name)
	}
	return resp.Choices[0].Message.Content, nil
}
