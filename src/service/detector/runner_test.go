package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prism/src/model"
	"prism/src/service/extractor"
	"prism/src/service/lexicon"
	"prism/src/service/normalizer"
)

func detect(t *testing.T, text string, threshold float64, custom ...string) []model.Ambiguity {
	t.Helper()
	lex := lexicon.New(custom)
	doc := normalizer.Normalize(text)
	ents := extractor.New(lex).Extract(doc)
	return NewRunner(lex, threshold).RunAll(doc, ents)
}

func categories(found []model.Ambiguity) []string {
	out := make([]string, len(found))
	for i, f := range found {
		out[i] = f.Category
	}
	return out
}

func TestRunAll_VagueTermInStory(t *testing.T) {
	found := detect(t, "As a user, I want to login quickly", 0.5)

	require.Len(t, found, 1)
	assert.Equal(t, "quickly", found[0].MatchedText)
	assert.Equal(t, model.SeverityMedium, found[0].Severity)
	assert.Equal(t, PassVagueTerm, found[0].Category)
	assert.Equal(t, 27, found[0].Position)
	assert.NotEmpty(t, found[0].Suggestions)
}

func TestRunAll_MissingActorQuotesIndefiniteSubject(t *testing.T) {
	found := detect(t, "Someone should be able to create reports", 0.5)

	require.NotEmpty(t, found)
	assert.Equal(t, PassMissingActor, found[0].Category)
	assert.Equal(t, model.SeverityCritical, found[0].Severity)
	assert.Equal(t, "Someone", found[0].MatchedText)
	assert.NotContains(t, categories(found), PassPassiveVoice)
}

func TestRunAll_MissingActorPlaceholder(t *testing.T) {
	found := detect(t, "Reports must be generated every night", 0.5)

	require.Len(t, found, 2)
	assert.Equal(t, NoActorText, found[0].MatchedText)
	assert.Equal(t, PassPassiveVoice, found[1].Category)
	assert.Equal(t, "must be generated", found[1].MatchedText)
}

func TestRunAll_OrdersBySeverityThenPosition(t *testing.T) {
	text := "The admin can export many reports quickly. If the export fails the data should be deleted properly."
	found := detect(t, text, 0.5)

	assert.Equal(t, []string{
		PassPassiveVoice,
		PassUndefinedSuccess,
		PassVagueTerm,
		PassConditional,
		PassQuantity,
	}, categories(found))

	for i := 1; i < len(found); i++ {
		assert.LessOrEqual(t, found[i-1].Severity.Rank(), found[i].Severity.Rank())
	}
	assert.Equal(t, "If the export fails the data should be deleted properly", found[3].MatchedText)
}

func TestRunAll_ConditionalWithElseIsComplete(t *testing.T) {
	found := detect(t, "If the admin approves the order, send an email, otherwise notify the customer.", 0.5)
	assert.NotContains(t, categories(found), PassConditional)
}

func TestRunAll_DeduplicatesCaseInsensitively(t *testing.T) {
	found := detect(t, "The user wants a Fast search and fast export", 0.5)

	require.Len(t, found, 1)
	assert.Equal(t, "Fast", found[0].MatchedText)
}

func TestRunAll_ThresholdSuppressesLowConfidencePasses(t *testing.T) {
	text := "If the user enters many items the page should be loaded properly and quickly"

	all := detect(t, text, 0.5)
	assert.Contains(t, categories(all), PassConditional)
	assert.Contains(t, categories(all), PassUndefinedSuccess)

	strict := detect(t, text, 0.72)
	assert.NotContains(t, categories(strict), PassConditional)
	assert.NotContains(t, categories(strict), PassUndefinedSuccess)
	assert.NotContains(t, categories(strict), PassQuantity)
	assert.Contains(t, categories(strict), PassVagueTerm)
	assert.Contains(t, categories(strict), PassPassiveVoice)
	for _, f := range strict {
		assert.GreaterOrEqual(t, f.Confidence, 0.72)
	}
}

func TestRunAll_CustomVagueTerms(t *testing.T) {
	found := detect(t, "The admin wants a snappy dashboard", 0.5, " Snappy ")

	require.Len(t, found, 1)
	assert.Equal(t, "snappy", found[0].MatchedText)
	assert.Equal(t, []string{"Replace 'snappy' with a measurable criterion"}, found[0].Suggestions)
}

func TestRunAll_EmptyText(t *testing.T) {
	assert.Empty(t, detect(t, "  ", 0))
}

func TestRunner_ListPasses(t *testing.T) {
	r := NewRunner(lexicon.New(nil), 0.7)

	passes := r.ListPasses()
	require.Len(t, passes, 6)
	assert.Equal(t, PassMissingActor, passes[0].Name())
	assert.True(t, r.IsEnabled(r.GetPass(PassQuantity)))
	assert.False(t, r.IsEnabled(r.GetPass(PassConditional)))
	assert.Nil(t, r.GetPass("nope"))
}
