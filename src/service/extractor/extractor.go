// Package extractor finds actors, actions and objects in a normalized
// requirement using lexical role heuristics.
package extractor

import (
	"sort"
	"strings"

	"prism/src/model"
	"prism/src/service/lexicon"
	"prism/src/service/normalizer"
)

const (
	maxActorWords  = 3
	maxObjectWords = 3
)

// Extractor pulls entities out of a document
type Extractor struct {
	lex *lexicon.Lexicon
}

// New creates an extractor over a shared lexicon
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

type candidate struct {
	value string
	pos   int
}

// Extract returns the entities of doc. Every list is ordered by first
// occurrence in the text with case-insensitive duplicates removed.
func (e *Extractor) Extract(doc *normalizer.Document) model.Entities {
	if doc.IsEmpty() {
		return model.Entities{}
	}

	actors := e.actors(doc.Tokens)
	actions, objects := e.actionsAndObjects(doc.Tokens)

	return model.Entities{
		Actors:  collapse(actors),
		Actions: collapse(actions),
		Objects: collapse(objects),
	}
}

func (e *Extractor) actors(tokens []normalizer.Token) []candidate {
	var found []candidate
	captured := make([]bool, len(tokens))

	for i := 0; i+2 < len(tokens); i++ {
		if !tokens[i].ClauseStart || tokens[i].Text != "as" {
			continue
		}
		if tokens[i+1].Text != "a" && tokens[i+1].Text != "an" {
			continue
		}
		if tokens[i+1].PunctAfter {
			continue
		}

		var words []string
		j := i + 2
		for ; j < len(tokens) && len(words) < maxActorWords; j++ {
			if e.lex.IsStopword(tokens[j].Text) {
				break
			}
			words = append(words, tokens[j].Text)
			captured[j] = true
			if tokens[j].PunctAfter {
				j++
				break
			}
		}
		if len(words) > 0 {
			found = append(found, candidate{value: strings.Join(words, " "), pos: tokens[i+2].Start})
		}
		i = j - 1
	}

	for i, tok := range tokens {
		if captured[i] || !e.lex.IsRole(tok.Text) {
			continue
		}
		found = append(found, candidate{value: lexicon.Singular(tok.Text), pos: tok.Start})
	}
	return found
}

func (e *Extractor) actionsAndObjects(tokens []normalizer.Token) (actions, objects []candidate) {
	consumed := make([]bool, len(tokens))

	for i := 0; i < len(tokens); i++ {
		if consumed[i] {
			continue
		}
		verb, next := e.actionAt(tokens, i)
		if verb == "" {
			continue
		}
		actions = append(actions, candidate{value: verb, pos: tokens[i].Start})
		for k := i; k < next; k++ {
			consumed[k] = true
		}
		if tokens[next-1].PunctAfter {
			i = next - 1
			continue
		}

		phrase, end := e.objectPhrase(tokens, next)
		if phrase != "" {
			objects = append(objects, candidate{value: phrase, pos: tokens[firstContent(e.lex, tokens, next)].Start})
			for k := next; k < end; k++ {
				consumed[k] = true
			}
		}
		i = end - 1
	}

	for i, tok := range tokens {
		if consumed[i] || !e.lex.IsObject(tok.Text) {
			continue
		}
		if _, isVerb := e.lex.VerbBase(tok.Text); isVerb {
			continue
		}
		objects = append(objects, candidate{value: lexicon.Singular(tok.Text), pos: tok.Start})
	}
	return actions, objects
}

// actionAt recognizes an action starting at token i and returns its base form
// and the index of the first token after it
func (e *Extractor) actionAt(tokens []normalizer.Token, i int) (string, int) {
	word := tokens[i].Text
	base, isVerb := e.lex.VerbBase(word)

	if i+1 < len(tokens) && !tokens[i].PunctAfter {
		particle := tokens[i+1].Text
		switch {
		case base == "log" && (particle == "in" || particle == "on"),
			base == "sign" && (particle == "in" || particle == "on"):
			return "login", i + 2
		case base == "log" && particle == "out", base == "sign" && particle == "out":
			return "logout", i + 2
		case base == "sign" && particle == "up":
			return "register", i + 2
		}
	}
	if isVerb {
		return base, i + 1
	}

	// the verb after "want to", "need to" or "able to" counts even when
	// unlisted; "want to quickly export" takes the word after the adverb
	if i >= 2 && tokens[i-1].Text == "to" && !tokens[i-2].PunctAfter {
		switch tokens[i-2].Text {
		case "want", "wants", "need", "needs", "able":
			j := i
			if lexicon.IsAdverb(word) {
				if tokens[i].PunctAfter || i+1 >= len(tokens) {
					return "", i + 1
				}
				j = i + 1
			}
			verb := tokens[j].Text
			if base, ok := e.lex.VerbBase(verb); ok {
				return base, j + 1
			}
			if e.isVerbLike(verb) {
				return verb, j + 1
			}
		}
	}
	return "", i + 1
}

func (e *Extractor) isVerbLike(w string) bool {
	return !e.lex.IsStopword(w) && !e.lex.IsDeterminer(w) && !e.lex.IsEventVerb(w) && !lexicon.IsAdverb(w)
}

// objectPhrase collects up to three content words starting at i after skipping
// determiners. It returns the phrase and the index after the last word used.
func (e *Extractor) objectPhrase(tokens []normalizer.Token, i int) (string, int) {
	j := i
	for j < len(tokens) && e.lex.IsDeterminer(tokens[j].Text) && !tokens[j].PunctAfter {
		j++
	}

	var words []string
	for ; j < len(tokens) && len(words) < maxObjectWords; j++ {
		w := tokens[j].Text
		if !e.isContentWord(w) {
			break
		}
		words = append(words, w)
		if tokens[j].PunctAfter {
			j++
			break
		}
	}
	if len(words) == 0 {
		return "", i
	}
	words[len(words)-1] = lexicon.Singular(words[len(words)-1])
	return strings.Join(words, " "), j
}

func (e *Extractor) isContentWord(w string) bool {
	if e.lex.IsStopword(w) || e.lex.IsDeterminer(w) || e.lex.IsEventVerb(w) || strings.HasSuffix(w, "ly") {
		return false
	}
	if _, isVerb := e.lex.VerbBase(w); isVerb {
		return false
	}
	return len(w) > 1
}

func firstContent(lex *lexicon.Lexicon, tokens []normalizer.Token, i int) int {
	for i < len(tokens)-1 && lex.IsDeterminer(tokens[i].Text) {
		i++
	}
	return i
}

// collapse orders candidates by position and drops case-insensitive repeats
func collapse(cands []candidate) []string {
	sort.SliceStable(cands, func(a, b int) bool {
		return cands[a].pos < cands[b].pos
	})
	seen := make(map[string]bool, len(cands))
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		v := strings.ToLower(c.value)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
