package augment

import (
	"encoding/json"
	"fmt"
	"strings"

	"prism/src/model"
)

const promptTemplate = `You are a senior requirements analyst. Review the requirement below and the
findings of a rule-based analyzer. Add only what the analyzer missed.

Requirement:
"""
%s
"""

Current findings:
%s

Reply with a single JSON object and nothing else, using this shape:
{
  "ambiguities": [{"text": "", "reason": "", "severity": "critical|high|medium|low", "suggestions": [""]}],
  "gaps": [{"category": "", "description": "", "priority": "critical|high|medium|low", "suggestions": [""]}],
  "nfrs": [{"category": "Security|Performance|Usability|Reliability|Scalability|Maintainability|Compatibility|Accessibility",
            "requirement": "", "rationale": "", "acceptance_criteria": [""], "priority": "MustHave|ShouldHave|CouldHave|WontHave"}],
  "entities": {"actors": [""], "actions": [""], "objects": [""]},
  "scores": {"completeness": 0, "actor": 0, "goal": 0, "reason": 0, "business_value": 0},
  "improved_text": ""
}
Scores are 0-100. "text" must quote the requirement exactly.`

type promptFindings struct {
	Entities     model.Entities `json:"entities"`
	Ambiguities  []string       `json:"ambiguities"`
	Gaps         []string       `json:"gaps"`
	Completeness float64        `json:"completeness_score"`
	ValidStory   bool           `json:"valid_user_story"`
	Nfrs         []string       `json:"nfrs"`
}

// BuildPrompt renders the single prompt sent to the provider
func BuildPrompt(result *model.AnalysisResult) string {
	f := promptFindings{
		Entities:     result.Entities,
		Completeness: result.Completeness.Score,
		ValidStory:   result.StoryValidation.IsValidFormat,
	}
	for _, a := range result.Ambiguities {
		f.Ambiguities = append(f.Ambiguities, fmt.Sprintf("%s: %s", a.MatchedText, a.Reason))
	}
	for _, g := range result.Completeness.Gaps {
		f.Gaps = append(f.Gaps, g.Description)
	}
	for _, n := range result.NfrSuggestions {
		f.Nfrs = append(f.Nfrs, fmt.Sprintf("%s: %s", n.Category, n.Requirement))
	}

	findings, _ := json.MarshalIndent(f, "", "  ")
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(result.Requirement.Text), findings)
}
