package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prism/src/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("PRISM_TEST_THRESHOLD", "0.7")
	dir := t.TempDir()
	path := writeFile(t, dir, "prism.yaml", `
analysis:
  ambiguity_threshold: ${PRISM_TEST_THRESHOLD}
  custom_vague_terms: ["snappy"]
llm:
  provider: ${PRISM_TEST_PROVIDER:-ollama}
  timeout: 5s
`)

	cfg, err := NewLoader(filepath.Join(dir, "missing.env")).Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.7, cfg.Analysis.AmbiguityThreshold)
	assert.Equal(t, []string{"snappy"}, cfg.Analysis.CustomVagueTerms)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	// provider defaults
	assert.Equal(t, "http://localhost:11434", cfg.LLM.BaseURL)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	// untouched sections keep defaults
	assert.Equal(t, 4, cfg.Concurrency.MaxParallelItems)
}

func TestLoad_EnvFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "PRISM_TEST_KEY=sk-from-dotenv\n")
	path := writeFile(t, dir, "prism.yaml", `
llm:
  provider: openai
  api_key: ${PRISM_TEST_KEY}
`)
	t.Setenv("PRISM_MODEL", "gpt-4o-mini")
	t.Cleanup(func() { os.Unsetenv("PRISM_TEST_KEY") })

	cfg, err := NewLoader(envFile).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-from-dotenv", cfg.LLM.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{name: "threshold", yaml: "analysis:\n  ambiguity_threshold: 1.5\n", field: "analysis.ambiguity_threshold"},
		{name: "provider", yaml: "llm:\n  provider: watson\n", field: "llm.provider"},
		{name: "api key", yaml: "llm:\n  provider: claude\n", field: "llm.api_key"},
		{name: "azure url", yaml: "llm:\n  provider: azure\n  api_key: k\n", field: "llm.base_url"},
		{name: "parallel", yaml: "concurrency:\n  max_parallel_items: 0\n", field: "concurrency.max_parallel_items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "prism.yaml", tt.yaml)

			_, err := NewLoader(filepath.Join(t.TempDir(), "none.env")).Load(path)

			var cfgErr *model.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	cfg := DefaultConfig()
	cfg.Analysis.CustomVagueTerms = []string{"blazing"}

	require.NoError(t, NewLoader().Save(cfg, path))
	loaded, err := NewLoader(filepath.Join(t.TempDir(), "none.env")).Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Analysis, loaded.Analysis)
	assert.Equal(t, cfg.LLM.Retry, loaded.LLM.Retry)
	assert.Equal(t, cfg.Cache, loaded.Cache)
	assert.Equal(t, cfg.Input, loaded.Input)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("PRISM_SET", "value")
	l := NewLoader()

	assert.Equal(t, "a: value", l.expandEnvVars("a: ${PRISM_SET}"))
	assert.Equal(t, "a: fallback", l.expandEnvVars("a: ${PRISM_UNSET_VAR:-fallback}"))
	assert.Equal(t, "a: ", l.expandEnvVars("a: ${PRISM_UNSET_VAR}"))
	assert.Equal(t, "a: $PRISM_SET", l.expandEnvVars("a: $PRISM_SET"))
}
