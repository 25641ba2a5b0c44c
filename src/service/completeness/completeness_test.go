package completeness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prism/src/model"
	"prism/src/service/extractor"
	"prism/src/service/lexicon"
	"prism/src/service/normalizer"
)

func analyze(text string) model.CompletenessResult {
	lex := lexicon.New(nil)
	doc := normalizer.Normalize(text)
	return New(lex).Analyze(doc, extractor.New(lex).Extract(doc))
}

func TestWeightsSumTo100(t *testing.T) {
	total := 0
	for _, c := range components {
		total += c.weight
	}
	assert.Equal(t, 100, total)
}

func TestAnalyze_ActorOnly(t *testing.T) {
	res := analyze("As a user, I want to login quickly")

	assert.Equal(t, 30.0, res.Score)
	require.Len(t, res.Gaps, 4)
	assert.Equal(t, []string{
		ComponentAcceptanceCriteria, ComponentNFR, ComponentErrorHandling, ComponentBusinessRules,
	}, []string{res.Gaps[0].Category, res.Gaps[1].Category, res.Gaps[2].Category, res.Gaps[3].Category})
	assert.Equal(t, model.PriorityHigh, res.Gaps[0].Priority)
	assert.Equal(t, model.PriorityLow, res.Gaps[3].Priority)
}

func TestAnalyze_MissingActorIsCriticalGap(t *testing.T) {
	res := analyze("Someone should be able to create reports")

	assert.Equal(t, 0.0, res.Score)
	require.Len(t, res.Gaps, 5)
	assert.Equal(t, ComponentActor, res.Gaps[0].Category)
	assert.Equal(t, model.PriorityCritical, res.Gaps[0].Priority)
}

func TestAnalyze_Complete(t *testing.T) {
	res := analyze("As a customer I want to pay an invoice. Given a valid card, then the payment succeeds " +
		"within 2 seconds. If the card is invalid an error is shown. A maximum of 3 attempts is allowed.")

	assert.Equal(t, 100.0, res.Score)
	assert.Empty(t, res.Gaps)
	for _, c := range res.Components {
		assert.True(t, c.Present, c.Name)
	}
}

func TestAnalyze_Monotonic(t *testing.T) {
	base := "As a user I want to export data"
	additions := []string{
		" with encryption",
		". Verify that the file downloads",
		". On timeout retry once",
		". At most 10 exports per day",
	}

	prev := analyze(base).Score
	text := base
	for _, add := range additions {
		text += add
		score := analyze(text).Score
		assert.GreaterOrEqual(t, score, prev, text)
		prev = score
	}
	assert.Equal(t, 100.0, prev)
}

func TestAnalyze_EmptyText(t *testing.T) {
	res := analyze("")
	assert.Equal(t, 0.0, res.Score)
	assert.Len(t, res.Gaps, 5)
}
