package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_CustomVagueTerms(t *testing.T) {
	lex := New([]string{"  Snappy ", "fast", "", "SNAPPY"})

	terms := lex.VagueTerms()
	assert.Equal(t, "snappy", terms[len(terms)-1])
	assert.Len(t, terms, len(baseVagueTerms)+1)
	assert.True(t, lex.ContainsVague("the page should feel snappy"))
	assert.False(t, New(nil).ContainsVague("the page should feel snappy"))
}

func TestNew_DoesNotShareTables(t *testing.T) {
	a := New(nil)
	a.VagueTerms()[0] = "changed"

	assert.Equal(t, "fast", New(nil).VagueTerms()[0])
}

func TestVerbBase(t *testing.T) {
	lex := New(nil)

	tests := map[string]string{
		"creates":   "create",
		"created":   "create",
		"creating":  "create",
		"searches":  "search",
		"exported":  "export",
		"submitted": "submit",
		"paid":      "pay",
		"logged":    "log",
	}
	for form, want := range tests {
		got, ok := lex.VerbBase(form)
		assert.True(t, ok, form)
		assert.Equal(t, want, got, form)
	}

	_, ok := lex.VerbBase("report")
	assert.False(t, ok)
}

func TestEventVerbsAndAdverbs(t *testing.T) {
	lex := New(nil)

	for _, w := range []string{"fail", "fails", "failed", "expires", "occurring"} {
		assert.True(t, lex.IsEventVerb(w), w)
	}
	assert.False(t, lex.IsEventVerb("report"))

	for _, w := range []string{"quickly", "easily", "really"} {
		assert.True(t, IsAdverb(w), w)
	}
	for _, w := range []string{"apply", "reply", "supply", "fly", "only"} {
		assert.False(t, IsAdverb(w), w)
	}
}

func TestRolesAndObjects(t *testing.T) {
	lex := New(nil)

	assert.True(t, lex.IsRole("customers"))
	assert.True(t, lex.IsRole("admin's"))
	assert.False(t, lex.IsRole("invoice"))
	assert.True(t, lex.IsObject("invoices"))
	assert.True(t, lex.ContainsRole("the store manager approves"))
	assert.True(t, lex.ContainsVerb("reports are exported nightly"))
}

func TestSingular(t *testing.T) {
	tests := map[string]string{
		"reports":    "report",
		"categories": "category",
		"addresses":  "address",
		"batches":    "batch",
		"boxes":      "box",
		"status":     "status",
		"analysis":   "analysis",
		"access":     "access",
		"bus":        "bus",
	}
	for in, want := range tests {
		assert.Equal(t, want, Singular(in), in)
	}
}

func TestFindAll_WordBoundaries(t *testing.T) {
	lower := "fast, faster and fast-track fast"

	assert.Equal(t, []int{0, 28}, FindAll(lower, "fast"))
	assert.Equal(t, 6, Find(lower, "faster"))
	assert.Equal(t, -1, Find(lower, "track"))
	assert.Nil(t, FindAll(lower, ""))
}

func TestFindAll_Phrases(t *testing.T) {
	lower := "we need a lot of reports, a lot."

	assert.Equal(t, []int{8}, FindAll(lower, "a lot of"))
	assert.True(t, ContainsAny(lower, []string{"plenty of", "a lot of"}))
	assert.False(t, ContainsAny(lower, []string{"lots of"}))
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"user's", "sign-in", "works", "ok"}, Words("user's sign-in works, ok!"))
}
