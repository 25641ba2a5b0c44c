// Package detector runs the ambiguity passes over a normalized requirement.
package detector

import (
	"prism/src/model"
	"prism/src/service/lexicon"
	"prism/src/service/normalizer"
)

// Pass is one independent ambiguity check
type Pass interface {
	// Name returns the pass name, also used as the finding category
	Name() string

	// Severity returns the static severity of every finding of the pass
	Severity() model.Severity

	// Confidence returns the static confidence of the pass (0-1)
	Confidence() float64

	// Detect returns findings in text order
	Detect(doc *normalizer.Document, entities model.Entities) []model.Ambiguity
}

// BasePass provides the static attributes shared by every pass
type BasePass struct {
	Lex        *lexicon.Lexicon
	name       string
	severity   model.Severity
	confidence float64
	reason     string
}

// NewBasePass creates a base pass
func NewBasePass(lex *lexicon.Lexicon, name string, severity model.Severity, confidence float64, reason string) BasePass {
	return BasePass{
		Lex:        lex,
		name:       name,
		severity:   severity,
		confidence: confidence,
		reason:     reason,
	}
}

// Name returns the pass name
func (b *BasePass) Name() string { return b.name }

// Severity returns the pass severity
func (b *BasePass) Severity() model.Severity { return b.severity }

// Confidence returns the pass confidence
func (b *BasePass) Confidence() float64 { return b.confidence }

// Reason returns the fixed explanation attached to every finding
func (b *BasePass) Reason() string { return b.reason }

// finding builds an Ambiguity carrying the pass attributes
func (b *BasePass) finding(doc *normalizer.Document, start, end int, suggestions []string) model.Ambiguity {
	return model.Ambiguity{
		MatchedText: doc.Original[start:end],
		Reason:      b.reason,
		Suggestions: suggestions,
		Severity:    b.severity,
		Category:    b.name,
		Position:    start,
		Confidence:  b.confidence,
	}
}

// termFindings reports every occurrence of each term
func (b *BasePass) termFindings(doc *normalizer.Document, terms []string, suggest func(term string) []string) []model.Ambiguity {
	var found []model.Ambiguity
	for _, term := range terms {
		for _, pos := range lexicon.FindAll(doc.Lower, term) {
			found = append(found, b.finding(doc, pos, pos+len(term), suggest(term)))
		}
	}
	return found
}
