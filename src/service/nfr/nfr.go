// Package nfr suggests non-functional requirements from keyword rules.
package nfr

import (
	"sort"

	"prism/src/model"
	"prism/src/service/lexicon"
	"prism/src/service/normalizer"
)

// Suggester maps requirement keywords to quality-attribute suggestions
type Suggester struct{}

// New creates a suggester
func New() *Suggester {
	return &Suggester{}
}

// Suggest returns the baseline Security and Performance entries plus every
// triggered rule, ordered by category then rule order
func (s *Suggester) Suggest(doc *normalizer.Document, entities model.Entities) []model.NfrSuggestion {
	out := make([]model.NfrSuggestion, 0, 4)
	seen := make(map[string]bool)

	for _, r := range rules {
		if r.triggers != nil && !triggered(r, doc, entities) {
			continue
		}
		if seen[r.requirement] {
			continue
		}
		seen[r.requirement] = true
		out = append(out, model.NfrSuggestion{
			Category:           r.category,
			Requirement:        r.requirement,
			Rationale:          r.rationale,
			AcceptanceCriteria: append([]string(nil), r.criteria...),
			Priority:           r.priority,
		})
	}

	SortByCategory(out)
	return out
}

func triggered(r rule, doc *normalizer.Document, entities model.Entities) bool {
	if lexicon.ContainsAny(doc.Lower, r.triggers) {
		return true
	}
	for _, action := range entities.Actions {
		for _, t := range r.triggers {
			if action == t {
				return true
			}
		}
	}
	return false
}

// SortByCategory orders suggestions by the fixed category order, keeping the
// relative order within a category
func SortByCategory(s []model.NfrSuggestion) {
	rank := make(map[model.NfrCategory]int, len(model.NfrCategories))
	for i, c := range model.NfrCategories {
		rank[c] = i
	}
	sort.SliceStable(s, func(i, j int) bool {
		return rank[s[i].Category] < rank[s[j].Category]
	})
}
