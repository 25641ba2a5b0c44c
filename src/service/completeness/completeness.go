// Package completeness scores how many standard requirement components a
// text covers.
package completeness

import (
	"regexp"

	"prism/src/model"
	"prism/src/service/lexicon"
	"prism/src/service/normalizer"
)

// Component weights; they sum to 100
const (
	WeightActor              = 30
	WeightAcceptanceCriteria = 25
	WeightNFR                = 20
	WeightErrorHandling      = 15
	WeightBusinessRules      = 10
)

// Component names
const (
	ComponentActor              = "actor"
	ComponentAcceptanceCriteria = "acceptance_criteria"
	ComponentNFR                = "nfr"
	ComponentErrorHandling      = "error_handling"
	ComponentBusinessRules      = "business_rules"
)

var givenThen = regexp.MustCompile(`\bgiven\b[\s\S]*\bthen\b`)

type component struct {
	name        string
	weight      int
	priority    model.Priority
	keywords    []string
	description string
	suggestions []string
}

var components = []component{
	{
		name:        ComponentActor,
		weight:      WeightActor,
		priority:    model.PriorityCritical,
		description: "No actor or user role is specified",
		suggestions: []string{
			"Identify who performs the action, e.g. 'As a registered customer'",
			"Name the system or service when no person is involved",
		},
	},
	{
		name:     ComponentAcceptanceCriteria,
		weight:   WeightAcceptanceCriteria,
		priority: model.PriorityHigh,
		keywords: []string{
			"acceptance criteria", "acceptance", "criteria", "success", "succeeds",
			"verify that", "verified", "done when", "definition of done", "must display",
			"is displayed", "expected result", "measured by",
		},
		description: "No acceptance criteria define when the requirement is met",
		suggestions: []string{
			"Add acceptance criteria in Given/When/Then form",
			"List the observable outcomes a tester can verify",
		},
	},
	{
		name:     ComponentNFR,
		weight:   WeightNFR,
		priority: model.PriorityMedium,
		keywords: []string{
			"performance", "security", "secure", "latency", "uptime", "availability",
			"encrypt", "encrypted", "encryption", "response time", "seconds",
			"milliseconds", "ms", "concurrent", "throughput", "scalability",
			"reliability", "usability", "accessibility", "wcag", "compliance",
			"gdpr", "audit", "backup",
		},
		description: "No non-functional requirements (performance, security, availability) are stated",
		suggestions: []string{
			"State performance targets, e.g. 'responds within 2 seconds for 95% of requests'",
			"State security expectations such as authentication and encryption",
		},
	},
	{
		name:     ComponentErrorHandling,
		weight:   WeightErrorHandling,
		priority: model.PriorityMedium,
		keywords: []string{
			"error", "errors", "fail", "fails", "failed", "failure", "invalid",
			"exception", "retry", "retries", "timeout", "reject", "rejected",
			"rollback", "fallback", "incorrect", "unavailable", "denied",
		},
		description: "Error handling and failure scenarios are not described",
		suggestions: []string{
			"Describe what happens when input is invalid",
			"Describe the behavior when a dependent service is unavailable",
		},
	},
	{
		name:     ComponentBusinessRules,
		weight:   WeightBusinessRules,
		priority: model.PriorityLow,
		keywords: []string{
			"rule", "rules", "policy", "policies", "only if", "only when", "at least",
			"at most", "maximum", "minimum", "limit", "limits", "must not",
			"cannot", "not allowed", "required", "eligible", "threshold", "up to",
		},
		description: "Business rules and constraints are not specified",
		suggestions: []string{
			"State limits and constraints, e.g. 'a maximum of 5 attempts'",
			"State the policies that decide who may do what",
		},
	},
}

// Analyzer checks the five completeness components
type Analyzer struct {
	lex *lexicon.Lexicon
}

// New creates an analyzer
func New(lex *lexicon.Lexicon) *Analyzer {
	return &Analyzer{lex: lex}
}

// Analyze scores doc. Score is 100 minus the weight of every missing
// component; there is one gap per missing component in component order.
func (a *Analyzer) Analyze(doc *normalizer.Document, entities model.Entities) model.CompletenessResult {
	result := model.CompletenessResult{
		Score:      100,
		Components: make([]model.ComponentCheck, 0, len(components)),
		Gaps:       []model.Gap{},
	}

	for _, c := range components {
		present := a.isPresent(c, doc, entities)
		result.Components = append(result.Components, model.ComponentCheck{
			Name:    c.name,
			Present: present,
			Weight:  c.weight,
		})
		if present {
			continue
		}
		result.Score -= float64(c.weight)
		result.Gaps = append(result.Gaps, model.Gap{
			Category:    c.name,
			Description: c.description,
			Suggestions: append([]string(nil), c.suggestions...),
			Priority:    c.priority,
		})
	}

	if result.Score < 0 {
		result.Score = 0
	}
	return result
}

func (a *Analyzer) isPresent(c component, doc *normalizer.Document, entities model.Entities) bool {
	switch c.name {
	case ComponentActor:
		return len(entities.Actors) > 0
	case ComponentAcceptanceCriteria:
		if givenThen.MatchString(doc.Lower) {
			return true
		}
	}
	return lexicon.ContainsAny(doc.Lower, c.keywords)
}
