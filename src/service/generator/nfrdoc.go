package generator

import (
	"strings"

	"prism/src/model"
)

// NFRDocument renders suggestions grouped by category in the fixed order
func NFRDocument(suggestions []model.NfrSuggestion) string {
	var w writer
	w.line("# Non-Functional Requirements")

	for _, category := range model.NfrCategories {
		var inCategory []model.NfrSuggestion
		for _, s := range suggestions {
			if s.Category == category {
				inCategory = append(inCategory, s)
			}
		}
		if len(inCategory) == 0 {
			continue
		}

		w.blank()
		w.line("## %s", category)
		for i, s := range inCategory {
			w.blank()
			w.line("### NFR-%s-%02d: %s", strings.ToUpper(string(category)[:3]), i+1, s.Requirement)
			w.line("- Priority: %s", s.Priority)
			if s.Rationale != "" {
				w.line("- Rationale: %s", s.Rationale)
			}
			if len(s.AcceptanceCriteria) > 0 {
				w.line("- Acceptance criteria:")
				for _, c := range s.AcceptanceCriteria {
					w.line("  - %s", c)
				}
			}
		}
	}
	return w.String()
}
