package generator

import (
	"fmt"

	"prism/src/model"
)

// Improved renders the requirement text followed by numbered improvement
// notes. An AI rewrite, when present, replaces the original text block.
func Improved(r *model.AnalysisResult) string {
	var w writer
	w.line("# Improved Requirement")
	w.blank()

	if r.Augmentation.ImprovedText != "" {
		w.line("_Rewritten with %s._", r.Augmentation.Provider)
		w.blank()
		w.line("%s", r.Augmentation.ImprovedText)
	} else {
		w.line("%s", r.Requirement.Text)
	}
	w.blank()

	w.line("## Improvement Notes")
	w.blank()
	n := 0
	for _, a := range r.Ambiguities {
		n++
		note := fmt.Sprintf("%d. [%s] \"%s\": %s", n, a.Severity, a.MatchedText, a.Reason)
		if len(a.Suggestions) > 0 {
			note += ". Suggestion: " + a.Suggestions[0]
		}
		w.line("%s", note)
	}
	for _, g := range r.Completeness.Gaps {
		n++
		note := fmt.Sprintf("%d. [%s] Missing %s: %s", n, g.Priority, g.Category, g.Description)
		if len(g.Suggestions) > 0 {
			note += ". Suggestion: " + g.Suggestions[0]
		}
		w.line("%s", note)
	}
	if n == 0 {
		w.line("No issues found.")
	}
	return w.String()
}
