package detector

import (
	"sort"
	"strings"

	"prism/src/model"
	"prism/src/service/lexicon"
	"prism/src/service/normalizer"
	"prism/src/util"
)

// Runner manages and runs all ambiguity passes.
// It handles pass registration, threshold filtering, deduplication and ordering.
type Runner struct {
	passes    []Pass
	threshold float64
}

// NewRunner creates a runner with every pass registered. Passes whose
// confidence is below threshold are skipped.
func NewRunner(lex *lexicon.Lexicon, threshold float64) *Runner {
	passes := []Pass{
		NewMissingActorPass(lex),
		NewPassiveVoicePass(lex),
		NewUndefinedSuccessPass(lex),
		NewVagueTermPass(lex),
		NewConditionalPass(lex),
		NewQuantityPass(lex),
	}

	r := &Runner{passes: passes, threshold: threshold}

	util.Debug("Ambiguity runner initialized with %d passes (threshold %.2f)", len(passes), threshold)
	for _, p := range passes {
		status := "disabled"
		if r.IsEnabled(p) {
			status = "enabled"
		}
		util.Debug("  - %s: %s", p.Name(), status)
	}

	return r
}

// IsEnabled reports whether a pass clears the confidence threshold
func (r *Runner) IsEnabled(p Pass) bool {
	return p.Confidence() >= r.threshold
}

// RunAll executes every enabled pass and returns deduplicated findings
// ordered by severity, then position
func (r *Runner) RunAll(doc *normalizer.Document, entities model.Entities) []model.Ambiguity {
	if doc.IsEmpty() {
		return []model.Ambiguity{}
	}

	var all []model.Ambiguity
	for _, p := range r.passes {
		if !r.IsEnabled(p) {
			util.Debug("Skipping pass below threshold: %s", p.Name())
			continue
		}
		findings := p.Detect(doc, entities)
		util.Debug("Pass %s found %d ambiguities", p.Name(), len(findings))
		all = append(all, findings...)
	}

	return Order(all)
}

// Order removes repeats of (lowercase matched text, reason), keeping the first
// occurrence, and sorts by severity then position. The sort is stable.
func Order(findings []model.Ambiguity) []model.Ambiguity {
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Position < findings[j].Position
	})

	seen := make(map[string]bool, len(findings))
	out := make([]model.Ambiguity, 0, len(findings))
	for _, f := range findings {
		key := DedupeKey(f.MatchedText, f.Reason)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Severity.Rank() != out[j].Severity.Rank() {
			return out[i].Severity.Rank() < out[j].Severity.Rank()
		}
		return out[i].Position < out[j].Position
	})
	return out
}

// DedupeKey identifies a finding for deduplication
func DedupeKey(text, reason string) string {
	return strings.ToLower(strings.TrimSpace(text)) + "\x00" + reason
}

// GetPass returns a pass by name
func (r *Runner) GetPass(name string) Pass {
	for _, p := range r.passes {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// ListPasses returns every registered pass in run order
func (r *Runner) ListPasses() []Pass {
	return append([]Pass(nil), r.passes...)
}
