package util

import (
	"path/filepath"
	"regexp"
	"strings"

	"prism/src/config"
)

// InputMatcher decides which files in a directory hold requirements
type InputMatcher struct {
	filePatterns    []string
	excludePatterns []string
}

// NewInputMatcher creates a matcher from the input config
func NewInputMatcher(cfg config.InputConfig) *InputMatcher {
	return &InputMatcher{
		filePatterns:    cfg.FilePatterns,
		excludePatterns: cfg.ExcludePatterns,
	}
}

// Matches reports whether relPath (slash separated, relative to the scanned
// directory) should be analyzed
func (m *InputMatcher) Matches(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	base := filepath.Base(relPath)

	for _, pattern := range m.excludePatterns {
		if MatchGlob(pattern, relPath) || MatchGlob(pattern, base) {
			return false
		}
	}

	if len(m.filePatterns) == 0 {
		return true
	}
	for _, pattern := range m.filePatterns {
		if MatchGlob(pattern, relPath) || MatchGlob(pattern, base) {
			return true
		}
	}
	return false
}

// matchDoubleGlob handles ** patterns by translating the glob to a regexp
func matchDoubleGlob(pattern, path string) bool {
	var sb strings.Builder
	sb.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case strings.HasPrefix(pattern[i:], "**/"):
			sb.WriteString("(?:.*/)?")
			i += 2
		case strings.HasPrefix(pattern[i:], "**"):
			sb.WriteString(".*")
			i++
		case c == '*':
			sb.WriteString("[^/]*")
		case c == '?':
			sb.WriteString("[^/]")
		default:
			sb.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return false
	}
	return re.MatchString(path)
}

// MatchGlob matches a path against a glob pattern
func MatchGlob(pattern, path string) bool {
	if strings.Contains(pattern, "**") {
		return matchDoubleGlob(pattern, path)
	}
	matched, _ := filepath.Match(pattern, path)
	return matched
}
