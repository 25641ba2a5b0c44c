package config

import "time"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "prism",
			Version:     "1.0.0",
			Description: "Requirement analyzer and artifact generator",
		},
		LLM: LLMConfig{
			Provider:    "none",
			Timeout:     30 * time.Second,
			MaxTokens:   2000,
			Temperature: 0.1,
			Retry: RetryConfig{
				MaxAttempts:   2,
				BackoffFactor: 1.5,
				InitialDelay:  200 * time.Millisecond,
				MaxDelay:      5 * time.Second,
				RetryOnStatus: []int{429, 502, 503, 504},
			},
		},
		Analysis: AnalysisConfig{
			AmbiguityThreshold: 0.5,
		},
		Concurrency: ConcurrencyConfig{
			MaxParallelItems:        4,
			RateLimitEnabled:        false,
			RateLimitRequestsPerSec: 2,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        1 * time.Hour,
			MaxEntries: 256,
		},
		Generation: GenerationConfig{
			Preset:          "basic",
			PseudocodeStyle: "generic",
		},
		Input: InputConfig{
			FilePatterns:    []string{"*.txt", "*.md", "*.rst"},
			ExcludePatterns: []string{"**/node_modules/**", "**/.git/**", "README.md"},
		},
		Output: OutputConfig{
			Formats:            []string{"markdown"},
			OutputDir:          ".",
			IncludeSuggestions: true,
		},
		Logging: LoggingConfig{
			Level:            "info",
			Format:           "text",
			IncludeTimestamp: true,
		},
	}
}
