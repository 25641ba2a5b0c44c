// Package provider adapts AI vendor SDKs to the augment.Capability interface.
package provider

import (
	"context"
	"fmt"

	"prism/src/config"
	"prism/src/model"
	"prism/src/service/augment"
	"prism/src/util"
)

const systemPrompt = "You are a requirements engineering assistant. " +
	"Answer with a single JSON object exactly matching the requested shape."

// New builds the capability selected by cfg.LLM, wrapped with the rate
// limiter and completion cache when they are enabled. It returns nil when no
// provider is configured.
func New(ctx context.Context, cfg *config.Config) (augment.Capability, error) {
	if !cfg.LLM.AIEnabled() {
		return nil, nil
	}

	var (
		capability augment.Capability
		err        error
	)
	switch cfg.LLM.Provider {
	case "openai":
		capability, err = NewOpenAI(cfg.LLM)
	case "azure":
		capability, err = NewAzure(cfg.LLM)
	case "claude":
		capability, err = NewAnthropic(cfg.LLM)
	case "gemini":
		capability, err = NewGemini(ctx, cfg.LLM)
	case "ollama":
		capability = NewOllama(cfg.LLM)
	default:
		return nil, &model.ConfigurationError{
			Field:   "llm.provider",
			Message: fmt.Sprintf("unknown provider %q", cfg.LLM.Provider),
		}
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s provider: %w", cfg.LLM.Provider, err)
	}

	if cfg.Concurrency.RateLimitEnabled {
		capability = NewLimited(capability, cfg.Concurrency.RateLimitRequestsPerSec)
	}
	if cfg.Cache.Enabled {
		capability = NewCached(capability, cfg.Cache)
	}

	util.Debug("AI provider %s ready (model %s)", capability.Name(), cfg.LLM.Model)
	return capability, nil
}

// CompletionConfig derives per-call settings from the LLM config
func CompletionConfig(cfg config.LLMConfig) augment.CompletionConfig {
	return augment.CompletionConfig{
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
}
