// Package normalizer turns raw requirement text into a Document: a lowercase
// copy for matching plus sentence, clause and token spans that point back into
// the original text.
package normalizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is a half-open byte range [Start, End) into the original text
type Span struct {
	Start int
	End   int
}

// Token is one word of the document
type Token struct {
	Text        string // lowercase
	Start       int
	End         int
	Sentence    int
	Clause      int
	ClauseStart bool // first token of its clause
	PunctAfter  bool // followed by punctuation before the next word
}

// Document is the normalized form of one requirement text
type Document struct {
	Original  string
	Lower     string
	Sentences []Span
	Clauses   []Span
	Tokens    []Token
}

// Normalize builds a Document. Lower has the same byte length as Original, so
// every offset is valid in both.
func Normalize(text string) *Document {
	doc := &Document{
		Original: text,
		Lower:    lowerSameWidth(text),
	}
	doc.Sentences = split(text, isSentenceBreak)
	doc.Clauses = split(text, isClauseBreak)
	doc.Tokens = tokenize(doc)
	return doc
}

// IsEmpty reports whether the document holds no words
func (d *Document) IsEmpty() bool {
	return len(d.Tokens) == 0
}

// Text returns the original text of a span with surrounding space trimmed
func (d *Document) Text(s Span) string {
	return strings.TrimSpace(d.Original[s.Start:s.End])
}

// LowerText returns the lowercase text of a span
func (d *Document) LowerText(s Span) string {
	return d.Lower[s.Start:s.End]
}

// ClauseAt returns the clause containing byte offset pos
func (d *Document) ClauseAt(pos int) Span {
	for _, c := range d.Clauses {
		if pos >= c.Start && pos < c.End {
			return c
		}
	}
	return Span{Start: 0, End: len(d.Original)}
}

// lowerSameWidth lowercases rune by rune, keeping any rune whose lowercase
// form would change the byte length. Invalid bytes are copied through as is.
func lowerSameWidth(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteByte(s[i])
			i += size
			continue
		}
		lr := unicode.ToLower(r)
		if utf8.RuneLen(lr) != size {
			lr = r
		}
		sb.WriteRune(lr)
		i += size
	}
	return sb.String()
}

func isSentenceBreak(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == ';' || r == '\n'
}

func isClauseBreak(r rune) bool {
	return isSentenceBreak(r) || r == ',' || r == ':' || r == '(' || r == ')'
}

// split cuts text at break runes, dropping spans with no letters or digits
func split(text string, isBreak func(rune) bool) []Span {
	var spans []Span
	start := 0
	for i, r := range text {
		if !isBreak(r) {
			continue
		}
		// "3.5" and "e.g." stay in one piece
		if r == '.' && i+1 < len(text) && !unicode.IsSpace(rune(text[i+1])) {
			continue
		}
		spans = appendSpan(spans, text, start, i+utf8.RuneLen(r))
		start = i + utf8.RuneLen(r)
	}
	return appendSpan(spans, text, start, len(text))
}

func appendSpan(spans []Span, text string, start, end int) []Span {
	if strings.IndexFunc(text[start:end], isWordRune) < 0 {
		return spans
	}
	return append(spans, Span{Start: start, End: end})
}

func tokenize(doc *Document) []Token {
	var tokens []Token
	lower := doc.Lower
	sentence, clause := 0, 0
	lastClause := -1

	i := 0
	for i < len(lower) {
		r, size := utf8.DecodeRuneInString(lower[i:])
		if !isWordRune(r) || r == '-' || r == '\'' {
			i += size
			continue
		}
		start := i
		for i < len(lower) {
			r, size = utf8.DecodeRuneInString(lower[i:])
			if !isWordRune(r) {
				break
			}
			i += size
		}
		word := strings.TrimRight(lower[start:i], "-'")
		tokenEnd := start + len(word)

		for sentence < len(doc.Sentences)-1 && start >= doc.Sentences[sentence].End {
			sentence++
		}
		for clause < len(doc.Clauses)-1 && start >= doc.Clauses[clause].End {
			clause++
		}

		tokens = append(tokens, Token{
			Text:        word,
			Start:       start,
			End:         tokenEnd,
			Sentence:    sentence,
			Clause:      clause,
			ClauseStart: clause != lastClause,
			PunctAfter:  punctuationFollows(lower, tokenEnd),
		})
		lastClause = clause
	}
	return tokens
}

func punctuationFollows(s string, i int) bool {
	for _, r := range s[i:] {
		if unicode.IsSpace(r) {
			continue
		}
		return !isWordRune(r)
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '\'' || r == '_'
}
