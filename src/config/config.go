package config

import (
	"fmt"
	"time"

	"prism/src/model"
)

// Config is the root configuration structure
type Config struct {
	Agent       AgentConfig       `yaml:"agent"`
	LLM         LLMConfig         `yaml:"llm"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Cache       CacheConfig       `yaml:"cache"`
	Generation  GenerationConfig  `yaml:"generation"`
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// AgentConfig contains tool metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// LLMConfig contains AI provider settings
type LLMConfig struct {
	Provider    string        `yaml:"provider"` // none, openai, azure, claude, gemini, ollama
	Model       string        `yaml:"model"`
	APIKey      string        `yaml:"api_key"`
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float64       `yaml:"temperature"`
	Retry       RetryConfig   `yaml:"retry"`
}

// RetryConfig contains retry settings for HTTP provider calls
type RetryConfig struct {
	MaxAttempts   int           `yaml:"max_attempts"`
	BackoffFactor float64       `yaml:"backoff_factor"`
	InitialDelay  time.Duration `yaml:"initial_delay"`
	MaxDelay      time.Duration `yaml:"max_delay"`
	RetryOnStatus []int         `yaml:"retry_on_status"`
}

// AnalysisConfig contains rule-based analysis settings
type AnalysisConfig struct {
	// AmbiguityThreshold suppresses findings whose pass confidence is lower (0-1)
	AmbiguityThreshold float64  `yaml:"ambiguity_threshold"`
	CustomVagueTerms   []string `yaml:"custom_vague_terms"`
}

// ConcurrencyConfig contains batch and rate-limit settings
type ConcurrencyConfig struct {
	MaxParallelItems        int     `yaml:"max_parallel_items"`
	RateLimitEnabled        bool    `yaml:"rate_limit_enabled"`
	RateLimitRequestsPerSec float64 `yaml:"rate_limit_requests_per_sec"`
}

// CacheConfig contains AI completion cache settings
type CacheConfig struct {
	Enabled    bool          `yaml:"enabled"`
	TTL        time.Duration `yaml:"ttl"`
	MaxEntries int           `yaml:"max_entries"`
}

// GenerationConfig contains artifact defaults
type GenerationConfig struct {
	Preset          string   `yaml:"preset"`
	Artifacts       []string `yaml:"artifacts"`
	PseudocodeStyle string   `yaml:"pseudocode_style"`
}

// InputConfig selects requirement files in directory mode
type InputConfig struct {
	FilePatterns    []string `yaml:"file_patterns"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
}

// OutputConfig contains report settings
type OutputConfig struct {
	Formats            []string `yaml:"formats"`
	OutputDir          string   `yaml:"output_dir"`
	IncludeSuggestions bool     `yaml:"include_suggestions"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"` // text, json
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
}

// AIEnabled reports whether a provider is configured
func (c LLMConfig) AIEnabled() bool {
	return c.Provider != "" && c.Provider != "none"
}

// ApplyProviderDefaults fills in base URL and model for the selected provider
func (c *LLMConfig) ApplyProviderDefaults() {
	switch c.Provider {
	case "openai":
		if c.Model == "" {
			c.Model = "gpt-4o"
		}
	case "azure":
		if c.Model == "" {
			c.Model = "gpt-4"
		}
	case "claude":
		if c.Model == "" {
			c.Model = "claude-3-5-sonnet-latest"
		}
	case "gemini":
		if c.Model == "" {
			c.Model = "gemini-1.5-pro"
		}
	case "ollama":
		if c.BaseURL == "" {
			c.BaseURL = "http://localhost:11434"
		}
		if c.Model == "" {
			c.Model = "llama3"
		}
	}
}

// Validate checks values the pipeline depends on
func (c *Config) Validate() error {
	if c.Analysis.AmbiguityThreshold < 0 || c.Analysis.AmbiguityThreshold > 1 {
		return &model.ConfigurationError{
			Field:   "analysis.ambiguity_threshold",
			Message: fmt.Sprintf("must be within 0-1, got %v", c.Analysis.AmbiguityThreshold),
		}
	}

	switch c.LLM.Provider {
	case "", "none", "openai", "azure", "claude", "gemini", "ollama":
	default:
		return &model.ConfigurationError{
			Field:   "llm.provider",
			Message: fmt.Sprintf("unknown provider %q", c.LLM.Provider),
		}
	}

	if c.LLM.AIEnabled() && c.LLM.Provider != "ollama" && c.LLM.APIKey == "" {
		return &model.ConfigurationError{
			Field:   "llm.api_key",
			Message: fmt.Sprintf("provider %s requires an API key", c.LLM.Provider),
		}
	}

	if c.LLM.Provider == "azure" && c.LLM.BaseURL == "" {
		return &model.ConfigurationError{
			Field:   "llm.base_url",
			Message: "provider azure requires a base URL",
		}
	}

	if c.Concurrency.MaxParallelItems < 1 {
		return &model.ConfigurationError{
			Field:   "concurrency.max_parallel_items",
			Message: "must be at least 1",
		}
	}

	return nil
}
