package util

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prism/src/config"
)

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.md", "login.md", true},
		{"*.md", "stories/login.md", false},
		{"**/node_modules/**", "node_modules/pkg/a.md", true},
		{"**/node_modules/**", "web/node_modules/pkg/a.md", true},
		{"**/node_modules/**", "stories/modules/a.md", false},
		{"stories/**/*.txt", "stories/a.txt", true},
		{"stories/**/*.txt", "stories/q1/a.txt", true},
		{"stories/**/*.txt", "other/a.txt", false},
		{"**/*.rst", "docs/spec.rst", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchGlob(tt.pattern, tt.path))
		})
	}
}

func TestInputMatcher(t *testing.T) {
	m := NewInputMatcher(config.InputConfig{
		FilePatterns:    []string{"*.txt", "*.md"},
		ExcludePatterns: []string{"**/.git/**", "README.md"},
	})

	assert.True(t, m.Matches("stories/login.md"))
	assert.True(t, m.Matches("a.txt"))
	assert.False(t, m.Matches("docs/README.md"))
	assert.False(t, m.Matches(".git/COMMIT_EDITMSG.txt"))
	assert.False(t, m.Matches("data.json"))

	all := NewInputMatcher(config.InputConfig{})
	assert.True(t, all.Matches("anything.bin"))
}

func TestCaseHelpers(t *testing.T) {
	assert.Equal(t, "MonthlySalesReport", PascalCase("monthly sales report"))
	assert.Equal(t, "resetPassword", CamelCase("Reset password"))
	assert.Equal(t, "registered_user", SnakeCase("Registered User"))
	assert.Equal(t, "end_user", Identifier("end-user"))
	assert.Equal(t, "unnamed", Identifier("  !! "))
	assert.Equal(t, "", CamelCase(""))
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(config.LoggingConfig{Level: "warn"}, &buf)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown %d", 1)
	l.Error("shown %d", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[WARN] shown 1", lines[0])
	assert.Equal(t, "[ERROR] shown 2", lines[1])
	assert.Equal(t, "warn", l.GetLevel())
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(config.LoggingConfig{Level: "debug", Format: "json", IncludeTimestamp: true}, &buf)

	l.Debug("analyzed %s", "a.txt")

	var entry map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "analyzed a.txt", entry["msg"])
	assert.NotEmpty(t, entry["time"])
}

func TestSetLogger(t *testing.T) {
	prev := DefaultLogger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	SetLogger(NewLoggerTo(config.LoggingConfig{Level: "info"}, &buf))
	Info("hello")
	Debug("quiet")

	assert.Equal(t, "[INFO] hello\n", buf.String())
}
