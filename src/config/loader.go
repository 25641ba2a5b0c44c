package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// envVarPattern matches ${VAR} or ${VAR:-default}
var envVarPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// Loader handles configuration loading from YAML files
type Loader struct {
	envFiles []string
}

// NewLoader creates a new configuration loader. Each env file is loaded
// before the YAML is read; missing files are ignored.
func NewLoader(envFiles ...string) *Loader {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	return &Loader{envFiles: envFiles}
}

// Load loads configuration from a YAML file with environment variable substitution.
// Environment variables can be referenced in the YAML using:
//   - ${VAR_NAME} - substitutes the value of VAR_NAME, empty string if not set
//   - ${VAR_NAME:-default} - substitutes VAR_NAME or "default" if not set
//
// PRISM_API_KEY, PRISM_PROVIDER and PRISM_MODEL override the file.
func (l *Loader) Load(configPath string) (*Config, error) {
	if err := l.loadEnvFiles(); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	filePath := l.resolveConfigPath(configPath)
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		expandedData := l.expandEnvVars(string(data))

		if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	l.applyEnvOverrides(cfg)
	cfg.LLM.ApplyProviderDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories
func (l *Loader) Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// DefaultPath returns the per-user configuration file location
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".prism", "config.yml")
}

func (l *Loader) loadEnvFiles() error {
	for _, f := range l.envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		// Load never overrides variables that are already set
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading env file %s: %w", f, err)
		}
	}
	return nil
}

func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("PRISM_API_KEY"); ok && v != "" {
		cfg.LLM.APIKey = v
	}
	if v, ok := os.LookupEnv("PRISM_PROVIDER"); ok && v != "" {
		cfg.LLM.Provider = v
	}
	if v, ok := os.LookupEnv("PRISM_MODEL"); ok && v != "" {
		cfg.LLM.Model = v
	}
}

func (l *Loader) resolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}

	defaults := []string{
		"prism.yaml",
		"config/prism.yaml",
		DefaultPath(),
	}

	for _, path := range defaults {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// expandEnvVars expands environment variable references in the input string.
// Supports two formats:
//   - ${VAR_NAME} - replaced with the value of VAR_NAME (empty if not set)
//   - ${VAR_NAME:-default} - replaced with VAR_NAME value, or "default" if not set
func (l *Loader) expandEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		defaultVal := ""
		if len(submatches) >= 3 {
			defaultVal = submatches[2]
		}

		if val, exists := os.LookupEnv(varName); exists {
			return val
		}

		return defaultVal
	})
}
