package detector

import (
	"fmt"
	"regexp"
	"strings"

	"prism/src/model"
	"prism/src/service/lexicon"
	"prism/src/service/normalizer"
)

// Pass names
const (
	PassMissingActor     = "missing_actor"
	PassPassiveVoice     = "passive_voice"
	PassUndefinedSuccess = "undefined_success"
	PassVagueTerm        = "vague_term"
	PassConditional      = "incomplete_conditional"
	PassQuantity         = "unbounded_quantity"
)

// NoActorText is reported when no indefinite subject can be quoted
const NoActorText = "(no actor)"

// MissingActorPass flags requirements that never say who acts
type MissingActorPass struct {
	BasePass
}

// NewMissingActorPass creates the missing actor pass
func NewMissingActorPass(lex *lexicon.Lexicon) *MissingActorPass {
	return &MissingActorPass{
		BasePass: NewBasePass(lex, PassMissingActor, model.SeverityCritical, 0.95,
			"No actor is identified; it is unclear who performs the action"),
	}
}

// Detect reports one finding when the extractor found no actor
func (p *MissingActorPass) Detect(doc *normalizer.Document, entities model.Entities) []model.Ambiguity {
	if len(entities.Actors) > 0 || doc.IsEmpty() {
		return nil
	}
	suggestions := []string{
		"Start the requirement with 'As a <role>'",
		"Name the user role or system responsible for the action",
	}

	first, firstTerm := -1, ""
	for _, term := range p.Lex.IndefiniteSubjects() {
		if pos := lexicon.Find(doc.Lower, term); pos >= 0 && (first < 0 || pos < first) {
			first, firstTerm = pos, term
		}
	}
	if first >= 0 {
		return []model.Ambiguity{p.finding(doc, first, first+len(firstTerm), suggestions)}
	}

	f := p.finding(doc, 0, 0, suggestions)
	f.MatchedText = NoActorText
	return []model.Ambiguity{f}
}

var passivePattern = regexp.MustCompile(`\b(?:should|will|must|shall|needs to|need to|ought to|can)\s+be\s+([a-z]+(?:ed|en))\b`)

// words ending in -en that are not participles
var notParticiples = map[string]bool{
	"open": true, "often": true, "even": true, "when": true, "then": true,
	"seven": true, "eleven": true, "token": true, "citizen": true, "screen": true,
}

// PassiveVoicePass flags modal passives that hide the agent
type PassiveVoicePass struct {
	BasePass
}

// NewPassiveVoicePass creates the passive voice pass
func NewPassiveVoicePass(lex *lexicon.Lexicon) *PassiveVoicePass {
	return &PassiveVoicePass{
		BasePass: NewBasePass(lex, PassPassiveVoice, model.SeverityHigh, 0.80,
			"Passive voice hides who is responsible for the action"),
	}
}

// Detect reports each passive construction
func (p *PassiveVoicePass) Detect(doc *normalizer.Document, _ model.Entities) []model.Ambiguity {
	var found []model.Ambiguity
	for _, m := range passivePattern.FindAllStringSubmatchIndex(doc.Lower, -1) {
		participle := doc.Lower[m[2]:m[3]]
		if notParticiples[participle] {
			continue
		}
		found = append(found, p.finding(doc, m[0], m[1], []string{
			"Rewrite in active voice naming the actor, e.g. 'The system " + participle + "...' or 'The admin ...'",
			"State who or what performs the action",
		}))
	}
	return found
}

// UndefinedSuccessPass flags claims of success with no measurable outcome
type UndefinedSuccessPass struct {
	BasePass
}

// NewUndefinedSuccessPass creates the undefined success pass
func NewUndefinedSuccessPass(lex *lexicon.Lexicon) *UndefinedSuccessPass {
	return &UndefinedSuccessPass{
		BasePass: NewBasePass(lex, PassUndefinedSuccess, model.SeverityHigh, 0.65,
			"Success criteria are not defined"),
	}
}

// Detect reports each success term
func (p *UndefinedSuccessPass) Detect(doc *normalizer.Document, _ model.Entities) []model.Ambiguity {
	return p.termFindings(doc, p.Lex.SuccessTerms(), func(term string) []string {
		return []string{
			fmt.Sprintf("Replace '%s' with an observable outcome, e.g. 'a confirmation message is shown'", term),
			"Add acceptance criteria in Given/When/Then form",
		}
	})
}

// vagueSuggestions gives concrete replacements for common vague terms
var vagueSuggestions = map[string][]string{
	"fast":                {"Specify a response time, e.g. 'within 2 seconds'"},
	"quick":               {"Specify a response time, e.g. 'within 2 seconds'"},
	"quickly":             {"Specify a response time, e.g. 'within 2 seconds'", "State the maximum number of steps"},
	"slow":                {"Specify the acceptable upper bound in seconds"},
	"easy":                {"Define a usability target, e.g. 'completed in 3 clicks or fewer'"},
	"easily":              {"Define a usability target, e.g. 'completed in 3 clicks or fewer'"},
	"user-friendly":       {"Define measurable usability criteria, e.g. task completion rate"},
	"user friendly":       {"Define measurable usability criteria, e.g. task completion rate"},
	"intuitive":           {"Define a learnability target, e.g. 'new users finish without help in 5 minutes'"},
	"robust":              {"Specify failure scenarios and the expected recovery"},
	"efficient":           {"Specify resource limits, e.g. memory or CPU budget"},
	"secure":              {"Name the security controls required"},
	"scalable":            {"Specify the load to support, e.g. '10,000 concurrent users'"},
	"asap":                {"Give a concrete deadline or time limit"},
	"as soon as possible": {"Give a concrete deadline or time limit"},
}

// VagueTermPass flags words with no measurable meaning
type VagueTermPass struct {
	BasePass
}

// NewVagueTermPass creates the vague term pass
func NewVagueTermPass(lex *lexicon.Lexicon) *VagueTermPass {
	return &VagueTermPass{
		BasePass: NewBasePass(lex, PassVagueTerm, model.SeverityMedium, 0.75,
			"Vague term lacks measurable criteria"),
	}
}

// Detect reports each vague term, including configured custom terms
func (p *VagueTermPass) Detect(doc *normalizer.Document, _ model.Entities) []model.Ambiguity {
	return p.termFindings(doc, p.Lex.VagueTerms(), func(term string) []string {
		if s, ok := vagueSuggestions[term]; ok {
			return append([]string(nil), s...)
		}
		return []string{fmt.Sprintf("Replace '%s' with a measurable criterion", term)}
	})
}

// ConditionalPass flags "if" clauses with no alternative path
type ConditionalPass struct {
	BasePass
}

// NewConditionalPass creates the incomplete conditional pass
func NewConditionalPass(lex *lexicon.Lexicon) *ConditionalPass {
	return &ConditionalPass{
		BasePass: NewBasePass(lex, PassConditional, model.SeverityMedium, 0.60,
			"Conditional has no alternative behavior"),
	}
}

// Detect reports the first "if" clause of every sentence lacking else or otherwise
func (p *ConditionalPass) Detect(doc *normalizer.Document, _ model.Entities) []model.Ambiguity {
	var found []model.Ambiguity
	for _, s := range doc.Sentences {
		lower := doc.LowerText(s)
		rel := lexicon.Find(lower, "if")
		if rel < 0 {
			continue
		}
		if lexicon.ContainsAny(lower, []string{"else", "otherwise"}) {
			continue
		}
		start := s.Start + rel
		clause := doc.ClauseAt(start)
		end := clause.End
		if text := strings.TrimRight(doc.Original[start:end], " \t\n.,;:!?()"); text != "" {
			end = start + len(text)
		}
		found = append(found, p.finding(doc, start, end, []string{
			"Describe what happens when the condition is not met",
			"Add an 'otherwise' branch with the expected behavior",
		}))
	}
	return found
}

// QuantityPass flags quantities with no bound
type QuantityPass struct {
	BasePass
}

// NewQuantityPass creates the unbounded quantity pass
func NewQuantityPass(lex *lexicon.Lexicon) *QuantityPass {
	return &QuantityPass{
		BasePass: NewBasePass(lex, PassQuantity, model.SeverityLow, 0.70,
			"Quantity is not bounded"),
	}
}

// Detect reports each unbounded quantity term
func (p *QuantityPass) Detect(doc *normalizer.Document, _ model.Entities) []model.Ambiguity {
	return p.termFindings(doc, p.Lex.QuantityTerms(), func(term string) []string {
		return []string{
			fmt.Sprintf("Replace '%s' with an exact number or range", term),
			"State the minimum and maximum expected",
		}
	})
}
