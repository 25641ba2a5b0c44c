// Package lexicon holds the word tables shared by every analyzer. A Lexicon is
// built once and never mutated, so it can be shared across goroutines.
package lexicon

import (
	"strings"
)

// Lexicon is an immutable set of word tables
type Lexicon struct {
	vagueTerms    []string
	quantityTerms []string
	successTerms  []string
	indefinites   []string
	benefitTerms  []string

	roles       map[string]bool
	objects     map[string]bool
	stopwords   map[string]bool
	determiners map[string]bool
	verbs       map[string]string
	events      map[string]bool
}

// New builds a lexicon. Extra vague terms from configuration are lowercased,
// trimmed and appended after the built-in list.
func New(extraVagueTerms []string) *Lexicon {
	vague := append([]string(nil), baseVagueTerms...)
	seen := make(map[string]bool, len(vague))
	for _, t := range vague {
		seen[t] = true
	}
	for _, t := range extraVagueTerms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		vague = append(vague, t)
	}

	verbs := make(map[string]string, len(baseVerbs)*4)
	for _, v := range baseVerbs {
		for _, form := range inflect(v) {
			if _, exists := verbs[form]; !exists {
				verbs[form] = v
			}
		}
	}
	for form, base := range irregularVerbs {
		verbs[form] = base
	}

	events := make(map[string]bool, len(eventVerbs)*4)
	for _, v := range eventVerbs {
		for _, form := range inflect(v) {
			events[form] = true
		}
	}

	return &Lexicon{
		vagueTerms:    vague,
		quantityTerms: append([]string(nil), quantityTerms...),
		successTerms:  append([]string(nil), successTerms...),
		indefinites:   append([]string(nil), indefiniteSubjects...),
		benefitTerms:  append([]string(nil), benefitTerms...),
		roles:         toSet(roleNouns),
		objects:       toSet(objectNouns),
		stopwords:     toSet(stopwords),
		determiners:   toSet(determiners),
		verbs:         verbs,
		events:        events,
	}
}

// VagueTerms returns the vague vocabulary, built-in terms first
func (l *Lexicon) VagueTerms() []string { return l.vagueTerms }

// QuantityTerms returns unbounded quantity words
func (l *Lexicon) QuantityTerms() []string { return l.quantityTerms }

// SuccessTerms returns words that claim success without defining it
func (l *Lexicon) SuccessTerms() []string { return l.successTerms }

// IndefiniteSubjects returns pronouns such as "someone"
func (l *Lexicon) IndefiniteSubjects() []string { return l.indefinites }

// BenefitTerms returns business-value words used when scoring "so that" clauses
func (l *Lexicon) BenefitTerms() []string { return l.benefitTerms }

// IsRole reports whether a lowercase word (singular or plural) names a role
func (l *Lexicon) IsRole(word string) bool {
	word = strings.TrimSuffix(word, "'s")
	return l.roles[word] || l.roles[Singular(word)]
}

// IsObject reports whether a lowercase word (singular or plural) is a known domain object
func (l *Lexicon) IsObject(word string) bool {
	word = strings.TrimSuffix(word, "'s")
	return l.objects[word] || l.objects[Singular(word)]
}

// IsStopword reports whether a lowercase word carries no content
func (l *Lexicon) IsStopword(word string) bool { return l.stopwords[word] }

// IsDeterminer reports whether a lowercase word is an article or possessive
func (l *Lexicon) IsDeterminer(word string) bool { return l.determiners[word] }

// VerbBase maps an inflected action verb to its base form
func (l *Lexicon) VerbBase(word string) (string, bool) {
	base, ok := l.verbs[word]
	return base, ok
}

// IsEventVerb reports whether a lowercase word is a form of a verb that
// describes something happening rather than a user action
func (l *Lexicon) IsEventVerb(word string) bool { return l.events[word] }

// ContainsVague reports whether lowercase text holds any vague term
func (l *Lexicon) ContainsVague(lower string) bool {
	return ContainsAny(lower, l.vagueTerms)
}

// ContainsRole reports whether any word of lowercase text is a role
func (l *Lexicon) ContainsRole(lower string) bool {
	for _, w := range Words(lower) {
		if l.IsRole(w) {
			return true
		}
	}
	return false
}

// ContainsVerb reports whether any word of lowercase text is an action verb
func (l *Lexicon) ContainsVerb(lower string) bool {
	for _, w := range Words(lower) {
		if _, ok := l.verbs[w]; ok {
			return true
		}
	}
	return false
}

// Singular folds a simple English plural: reports -> report, categories -> category.
// Words ending in ss, us or is are left alone.
func Singular(word string) string {
	switch {
	case len(word) <= 3:
		return word
	case strings.HasSuffix(word, "ies"):
		return strings.TrimSuffix(word, "ies") + "y"
	case strings.HasSuffix(word, "sses"), strings.HasSuffix(word, "shes"),
		strings.HasSuffix(word, "ches"), strings.HasSuffix(word, "xes"):
		return strings.TrimSuffix(word, "es")
	case strings.HasSuffix(word, "ss"), strings.HasSuffix(word, "us"), strings.HasSuffix(word, "is"):
		return word
	case strings.HasSuffix(word, "s"):
		return strings.TrimSuffix(word, "s")
	}
	return word
}

// IsAdverb reports whether a lowercase word looks like an -ly adverb.
// "apply", "reply" and "supply" are verbs.
func IsAdverb(word string) bool {
	return len(word) > 4 && strings.HasSuffix(word, "ly") && !strings.HasSuffix(word, "ply")
}

func inflect(base string) []string {
	forms := []string{base}
	switch {
	case strings.HasSuffix(base, "e"):
		stem := strings.TrimSuffix(base, "e")
		forms = append(forms, base+"s", base+"d", stem+"ing")
	case strings.HasSuffix(base, "y") && !isVowel(base[len(base)-2]):
		stem := strings.TrimSuffix(base, "y")
		forms = append(forms, stem+"ies", stem+"ied", base+"ing")
	case strings.HasSuffix(base, "s"), strings.HasSuffix(base, "sh"),
		strings.HasSuffix(base, "ch"), strings.HasSuffix(base, "x"):
		forms = append(forms, base+"es", base+"ed", base+"ing")
	default:
		forms = append(forms, base+"s", base+"ed", base+"ing")
	}
	return forms
}

func isVowel(c byte) bool {
	return strings.IndexByte("aeiou", c) >= 0
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
