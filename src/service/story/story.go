// Package story validates "As a / I want / so that" user stories and scores
// their business value.
package story

import (
	"fmt"
	"strings"

	"prism/src/model"
	"prism/src/service/lexicon"
	"prism/src/service/normalizer"
)

// Segment weights: length, specificity and keyword presence for each part
const (
	ActorLengthWeight      = 40.0
	ActorSpecificityWeight = 30.0
	ActorKeywordWeight     = 30.0

	GoalLengthWeight      = 40.0
	GoalSpecificityWeight = 35.0
	GoalKeywordWeight     = 25.0

	ReasonLengthWeight      = 30.0
	ReasonSpecificityWeight = 30.0
	ReasonKeywordWeight     = 40.0
)

// Business value blends the segment scores
const (
	ActorValueShare  = 0.25
	GoalValueShare   = 0.30
	ReasonValueShare = 0.45
)

// ValidThreshold is the minimum segment score counted as valid
const ValidThreshold = 60.0

type segmentRule struct {
	name              string
	minWords          int
	maxWords          int
	lengthWeight      float64
	specificityWeight float64
	keywordWeight     float64
	keywordIssue      string
	keywordSuggestion string
}

var (
	actorRule = segmentRule{
		name: "actor", minWords: 1, maxWords: 5,
		lengthWeight: ActorLengthWeight, specificityWeight: ActorSpecificityWeight, keywordWeight: ActorKeywordWeight,
		keywordIssue:      "Actor does not name a recognizable role",
		keywordSuggestion: "Use a concrete role such as customer, administrator or support agent",
	}
	goalRule = segmentRule{
		name: "goal", minWords: 3, maxWords: 20,
		lengthWeight: GoalLengthWeight, specificityWeight: GoalSpecificityWeight, keywordWeight: GoalKeywordWeight,
		keywordIssue:      "Goal has no clear action verb",
		keywordSuggestion: "Start the goal with an action verb such as create, view or export",
	}
	reasonRule = segmentRule{
		name: "reason", minWords: 3, maxWords: 25,
		lengthWeight: ReasonLengthWeight, specificityWeight: ReasonSpecificityWeight, keywordWeight: ReasonKeywordWeight,
		keywordIssue:      "Reason does not state a business benefit",
		keywordSuggestion: "Explain the benefit in terms of time, cost, revenue or risk",
	}
)

// Validator parses and scores user stories
type Validator struct {
	lex *lexicon.Lexicon
}

// New creates a validator
func New(lex *lexicon.Lexicon) *Validator {
	return &Validator{lex: lex}
}

// Validate checks the story format and scores each segment. Without all three
// markers, in order, every score is zero.
func (v *Validator) Validate(doc *normalizer.Document) model.StoryValidation {
	actor, goal, reason, missing := splitStory(doc)
	if len(missing) > 0 {
		return model.StoryValidation{
			IsValidFormat: false,
			Recommendations: []string{
				"Rewrite as 'As a <role>, I want <goal> so that <benefit>'",
				fmt.Sprintf("Missing story parts: %s", strings.Join(missing, ", ")),
			},
		}
	}

	sv := model.StoryValidation{
		IsValidFormat: true,
		Actor:         actor,
		Goal:          goal,
		Reason:        reason,
		ActorQuality:  v.score(actorRule, actor, v.lex.ContainsRole),
		GoalQuality:   v.score(goalRule, goal, v.lex.ContainsVerb),
		ReasonQuality: v.score(reasonRule, reason, func(lower string) bool {
			return lexicon.ContainsAny(lower, v.lex.BenefitTerms())
		}),
	}
	sv.BusinessValueScore = ActorValueShare*sv.ActorQuality.Score +
		GoalValueShare*sv.GoalQuality.Score +
		ReasonValueShare*sv.ReasonQuality.Score

	for _, q := range []model.QualityScore{sv.ActorQuality, sv.GoalQuality, sv.ReasonQuality} {
		if !q.IsValid {
			sv.Recommendations = append(sv.Recommendations, q.Suggestions...)
		}
	}
	return sv
}

func (v *Validator) score(rule segmentRule, segment string, hasKeyword func(string) bool) model.QualityScore {
	lower := strings.ToLower(segment)
	words := len(lexicon.Words(lower))
	q := model.QualityScore{}

	switch {
	case words == 0:
		q.Issues = append(q.Issues, fmt.Sprintf("The %s is empty", rule.name))
		q.Suggestions = append(q.Suggestions, fmt.Sprintf("Fill in the %s", rule.name))
	case words < rule.minWords || words > rule.maxWords:
		q.Score += 0.5 * rule.lengthWeight
		q.Issues = append(q.Issues, fmt.Sprintf("The %s has %d words; expected %d-%d", rule.name, words, rule.minWords, rule.maxWords))
		q.Suggestions = append(q.Suggestions, fmt.Sprintf("Keep the %s between %d and %d words", rule.name, rule.minWords, rule.maxWords))
	default:
		q.Score += rule.lengthWeight
	}

	if words > 0 {
		if v.lex.ContainsVague(lower) {
			q.Issues = append(q.Issues, fmt.Sprintf("The %s uses vague wording", rule.name))
			q.Suggestions = append(q.Suggestions, fmt.Sprintf("Replace vague words in the %s with measurable terms", rule.name))
		} else {
			q.Score += rule.specificityWeight
		}

		if hasKeyword(lower) {
			q.Score += rule.keywordWeight
		} else {
			q.Issues = append(q.Issues, rule.keywordIssue)
			q.Suggestions = append(q.Suggestions, rule.keywordSuggestion)
		}
	}

	q.IsValid = q.Score >= ValidThreshold
	return q
}

// splitStory locates the markers in order and returns the text between them
func splitStory(doc *normalizer.Document) (actor, goal, reason string, missing []string) {
	lower := doc.Lower

	asPos, asLen := -1, 0
	for _, marker := range []string{"as a", "as an"} {
		if p := lexicon.Find(lower, marker); p >= 0 && (asPos < 0 || p < asPos) {
			asPos, asLen = p, len(marker)
		}
	}
	if asPos < 0 {
		missing = append(missing, "'As a'")
	}

	from := max(asPos, 0)
	wantPos := findAfter(lower, "i want", from)
	if wantPos < 0 {
		missing = append(missing, "'I want'")
	}

	thatPos := findAfter(lower, "so that", max(wantPos, from))
	if thatPos < 0 {
		missing = append(missing, "'so that'")
	}
	if len(missing) > 0 {
		return "", "", "", missing
	}

	actor = trimSegment(doc.Original[asPos+asLen : wantPos])
	goal = trimSegment(doc.Original[wantPos+len("i want") : thatPos])
	if strings.HasPrefix(strings.ToLower(goal), "to ") {
		goal = strings.TrimSpace(goal[3:])
	}
	reason = trimSegment(doc.Original[thatPos+len("so that"):])
	return actor, goal, reason, nil
}

func findAfter(lower, term string, from int) int {
	if p := lexicon.Find(lower[from:], term); p >= 0 {
		return from + p
	}
	return -1
}

func trimSegment(s string) string {
	return strings.Trim(s, " \t\r\n,.;:!?")
}
