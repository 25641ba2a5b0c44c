package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_SplitsSentencesAndClauses(t *testing.T) {
	doc := Normalize("As a User, I want to login. The system must respond in 2.5 seconds!")

	require.Len(t, doc.Sentences, 2)
	assert.Equal(t, "As a User, I want to login.", doc.Text(doc.Sentences[0]))
	assert.Equal(t, "The system must respond in 2.5 seconds!", doc.Text(doc.Sentences[1]))
	assert.Len(t, doc.Clauses, 3)
	assert.Equal(t, "as a user, i want to login. the system must respond in 2.5 seconds!", doc.Lower)
}

func TestNormalize_TokensKeepOriginalOffsets(t *testing.T) {
	text := "Admin exports Reports, then logs out"
	doc := Normalize(text)

	require.Len(t, doc.Tokens, 6)
	reports := doc.Tokens[2]
	assert.Equal(t, "reports", reports.Text)
	assert.Equal(t, "Reports", text[reports.Start:reports.End])
	assert.True(t, reports.PunctAfter)
	assert.True(t, doc.Tokens[0].ClauseStart)
	assert.True(t, doc.Tokens[3].ClauseStart)
	assert.False(t, doc.Tokens[4].ClauseStart)
	assert.Equal(t, 1, doc.Tokens[3].Clause)
}

func TestNormalize_LowerKeepsByteLength(t *testing.T) {
	text := "İstanbul ÜBER Straße"
	doc := Normalize(text)
	assert.Equal(t, len(text), len(doc.Lower))
}

func TestNormalize_Empty(t *testing.T) {
	for _, text := range []string{"", "   ", "...\n!"} {
		doc := Normalize(text)
		assert.True(t, doc.IsEmpty(), "text %q", text)
		assert.Empty(t, doc.Sentences)
	}
}

func TestNormalize_InvalidUTF8KeepsByteLength(t *testing.T) {
	text := "As a caf\xe9 owner, I want \xe9\xe9\xe9 reports"
	doc := Normalize(text)

	require.Equal(t, len(text), len(doc.Lower))
	assert.Equal(t, "as a caf\xe9 owner, i want \xe9\xe9\xe9 reports", doc.Lower)
	for _, tok := range doc.Tokens {
		assert.Equal(t, tok.Text, doc.Lower[tok.Start:tok.End])
		assert.LessOrEqual(t, tok.End, len(doc.Original))
	}
	assert.Equal(t, "reports", doc.Tokens[len(doc.Tokens)-1].Text)
}

func TestDocument_ClauseAt(t *testing.T) {
	doc := Normalize("First one, second one.")
	c := doc.ClauseAt(12)
	assert.Equal(t, "second one.", doc.Text(c))
}
