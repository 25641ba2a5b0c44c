package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Words splits lowercase text into word tokens; hyphens and apostrophes stay inside words
func Words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !isWordRune(r)
	})
}

// FindAll returns the byte offsets of every word-bounded occurrence of term in lower.
// Both arguments are expected to be lowercase.
func FindAll(lower, term string) []int {
	if term == "" {
		return nil
	}
	var positions []int
	offset := 0
	for {
		idx := strings.Index(lower[offset:], term)
		if idx < 0 {
			return positions
		}
		start := offset + idx
		end := start + len(term)
		if boundaryBefore(lower, start) && boundaryAfter(lower, end) {
			positions = append(positions, start)
		}
		offset = start + 1
	}
}

// Find returns the first word-bounded occurrence of term, or -1
func Find(lower, term string) int {
	if p := FindAll(lower, term); len(p) > 0 {
		return p[0]
	}
	return -1
}

// ContainsAny reports whether lower holds any of terms as a whole word or phrase
func ContainsAny(lower string, terms []string) bool {
	for _, t := range terms {
		if Find(lower, t) >= 0 {
			return true
		}
	}
	return false
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '\'' || r == '_'
}
