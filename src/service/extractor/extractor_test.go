package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prism/src/service/lexicon"
	"prism/src/service/normalizer"
)

func extract(text string) (actors, actions, objects []string) {
	e := New(lexicon.New(nil))
	ents := e.Extract(normalizer.Normalize(text))
	return ents.Actors, ents.Actions, ents.Objects
}

func TestExtract_UserStory(t *testing.T) {
	actors, actions, objects := extract("As a user, I want to login quickly")

	assert.Equal(t, []string{"user"}, actors)
	assert.Equal(t, []string{"login"}, actions)
	assert.Empty(t, objects)
}

func TestExtract_NoActor(t *testing.T) {
	actors, actions, objects := extract("Someone should be able to create reports")

	assert.Empty(t, actors)
	assert.Equal(t, []string{"create"}, actions)
	assert.Equal(t, []string{"report"}, objects)
}

func TestExtract_ActorPhraseIsNotRepeated(t *testing.T) {
	actors, _, _ := extract("As a registered user I want to reset my password so that the admin is not involved")

	assert.Equal(t, []string{"registered user", "admin"}, actors)
}

func TestExtract_MultiWordActions(t *testing.T) {
	_, actions, _ := extract("Visitors sign up, then log in and later sign out")

	assert.Equal(t, []string{"register", "login", "logout"}, actions)
}

func TestExtract_InflectionsCollapse(t *testing.T) {
	_, actions, objects := extract("The manager creates invoices. Created invoices are exported by the system.")

	assert.Equal(t, []string{"create", "export"}, actions)
	assert.Equal(t, []string{"invoice"}, objects)
}

func TestExtract_ObjectPhrase(t *testing.T) {
	_, actions, objects := extract("The customer can download the account statement and upload profile photos")

	assert.Equal(t, []string{"download", "upload"}, actions)
	assert.Equal(t, []string{"account statement", "profile photo"}, objects)
}

func TestExtract_Empty(t *testing.T) {
	actors, actions, objects := extract("   ")

	assert.Empty(t, actors)
	assert.Empty(t, actions)
	assert.Empty(t, objects)
}

func TestExtract_Deterministic(t *testing.T) {
	text := "As an admin, I want to approve orders and notify customers so that shipping starts on time"
	a1, b1, c1 := extract(text)
	for i := 0; i < 20; i++ {
		a2, b2, c2 := extract(text)
		assert.Equal(t, a1, a2)
		assert.Equal(t, b1, b2)
		assert.Equal(t, c1, c2)
	}
}

func TestExtract_SplitInfinitiveSkipsAdverb(t *testing.T) {
	tests := []struct {
		text    string
		actions []string
		objects []string
	}{
		{"I want to quickly export reports", []string{"export"}, []string{"report"}},
		{"As a customer, I want to easily view the dashboard", []string{"view"}, []string{"dashboard"}},
		{"I want to really see my orders", []string{"see"}, []string{"order"}},
		{"I need to quickly rename folders", []string{"rename"}, []string{"folder"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, actions, objects := extract(tt.text)
			assert.Equal(t, tt.actions, actions)
			assert.Equal(t, tt.objects, objects)
		})
	}
}

func TestExtract_EventVerbEndsObjectPhrase(t *testing.T) {
	_, actions, objects := extract("If the upload fails the user sees a message")

	assert.Equal(t, []string{"upload", "see"}, actions)
	assert.NotContains(t, objects, "fail")
	assert.Contains(t, objects, "message")
}
