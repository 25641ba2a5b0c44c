package story

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prism/src/model"
	"prism/src/service/lexicon"
	"prism/src/service/normalizer"
)

func validate(text string) model.StoryValidation {
	return New(lexicon.New(nil)).Validate(normalizer.Normalize(text))
}

func TestValidate_WellFormedStory(t *testing.T) {
	sv := validate("As a registered customer, I want to export my monthly invoices so that I can reduce accounting time.")

	assert.True(t, sv.IsValidFormat)
	assert.Equal(t, "registered customer", sv.Actor)
	assert.Equal(t, "export my monthly invoices", sv.Goal)
	assert.Equal(t, "I can reduce accounting time", sv.Reason)
	assert.Equal(t, 100.0, sv.ActorQuality.Score)
	assert.Equal(t, 100.0, sv.GoalQuality.Score)
	assert.Equal(t, 100.0, sv.ReasonQuality.Score)
	assert.InDelta(t, 100.0, sv.BusinessValueScore, 1e-9)
	assert.Empty(t, sv.Recommendations)
}

func TestValidate_WeakSegments(t *testing.T) {
	sv := validate("As a user, I want to login quickly so that it is good")

	assert.True(t, sv.IsValidFormat)
	assert.Equal(t, 100.0, sv.ActorQuality.Score)
	assert.True(t, sv.ActorQuality.IsValid)

	assert.Equal(t, 45.0, sv.GoalQuality.Score)
	assert.False(t, sv.GoalQuality.IsValid)
	assert.Len(t, sv.GoalQuality.Issues, 2)

	assert.Equal(t, 30.0, sv.ReasonQuality.Score)
	assert.False(t, sv.ReasonQuality.IsValid)

	assert.InDelta(t, 52.0, sv.BusinessValueScore, 1e-9)
	assert.NotEmpty(t, sv.Recommendations)
}

func TestValidate_MissingSoThat(t *testing.T) {
	sv := validate("As a user, I want to login quickly")

	assert.False(t, sv.IsValidFormat)
	assert.Zero(t, sv.ActorQuality.Score)
	assert.Zero(t, sv.GoalQuality.Score)
	assert.Zero(t, sv.ReasonQuality.Score)
	assert.False(t, sv.ActorQuality.IsValid)
	assert.Zero(t, sv.BusinessValueScore)
	assert.Contains(t, sv.Recommendations[1], "'so that'")
}

func TestValidate_MarkersOutOfOrder(t *testing.T) {
	sv := validate("So that costs drop, I want reports, as an admin")
	assert.False(t, sv.IsValidFormat)
}

func TestValidate_NotAStory(t *testing.T) {
	sv := validate("Someone should be able to create reports")

	assert.False(t, sv.IsValidFormat)
	assert.Contains(t, sv.Recommendations[1], "'As a'")
	assert.Contains(t, sv.Recommendations[1], "'I want'")
}

func TestValidate_AnArticle(t *testing.T) {
	sv := validate("As an administrator I want to approve refunds so that customers receive money quickly")

	assert.True(t, sv.IsValidFormat)
	assert.Equal(t, "administrator", sv.Actor)
	assert.Equal(t, "approve refunds", sv.Goal)
	assert.Equal(t, 20.0+35+25, sv.GoalQuality.Score)
}
