package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prism/src/config"
	"prism/src/model"
)

func sampleResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		Requirement: model.RequirementText{Text: "As a user, I want to login quickly", Source: "login.txt"},
		Entities:    model.Entities{Actors: []string{"user"}, Actions: []string{"login"}},
		Ambiguities: []model.Ambiguity{{
			MatchedText: "quickly", Reason: "Vague term lacks measurable criteria",
			Suggestions: []string{"Specify a response time"}, Severity: model.SeverityMedium,
		}},
		Completeness: model.CompletenessResult{
			Score:      30,
			Components: []model.ComponentCheck{{Name: "actor", Present: true, Weight: 30}},
			Gaps:       []model.Gap{{Category: "nfr", Description: "No NFRs", Suggestions: []string{"Add a response time"}, Priority: model.PriorityMedium}},
		},
		NfrSuggestions: []model.NfrSuggestion{{Category: model.NfrSecurity, Requirement: "Require authentication", Priority: model.MustHave}},
		Augmentation:   model.Augmentation{Requested: true, Degraded: true, Reason: "no AI provider configured"},
		Artifacts:      model.Artifacts{UML: "@startuml\n@enduml\n"},
	}
}

func TestGenerate_Markdown(t *testing.T) {
	g := NewGenerator(config.OutputConfig{IncludeSuggestions: true})

	out, err := g.Generate(sampleResult(), "md")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Requirement Analysis Report"))
	assert.Contains(t, out, "- [MEDIUM] `quickly`: Vague term lacks measurable criteria")
	assert.Contains(t, out, "  - Suggestion: Specify a response time")
	assert.Contains(t, out, "| medium | 1 |")
	assert.Contains(t, out, "degraded (no AI provider configured)")
	assert.Contains(t, out, "## Artifact: UML Diagrams")
	assert.Contains(t, out, "```plantuml\n@startuml\n@enduml\n```")
	assert.NotContains(t, out, "Artifact: Pseudocode")
}

func TestGenerate_SuggestionsCanBeHidden(t *testing.T) {
	out, err := NewGenerator(config.OutputConfig{}).Generate(sampleResult(), "markdown")
	require.NoError(t, err)

	assert.NotContains(t, out, "Specify a response time")
	assert.NotContains(t, out, "Add a response time")
}

func TestGenerate_Plain(t *testing.T) {
	out, err := NewGenerator(config.OutputConfig{IncludeSuggestions: true}).Generate(sampleResult(), "text")
	require.NoError(t, err)

	assert.Contains(t, out, "REQUIREMENT ANALYSIS REPORT")
	assert.Contains(t, out, `[MEDIUM] "quickly"`)
	assert.Contains(t, out, "UML DIAGRAMS\n------------")
	assert.NotContains(t, out, "#")
}

func TestGenerate_JSONRoundTrips(t *testing.T) {
	in := sampleResult()
	out, err := NewGenerator(config.OutputConfig{}).Generate(in, "json")
	require.NoError(t, err)

	var back model.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	assert.Equal(t, in.Entities, back.Entities)
	assert.Equal(t, in.Completeness.Score, back.Completeness.Score)
}

func TestGenerate_UnknownFormat(t *testing.T) {
	_, err := NewGenerator(config.OutputConfig{}).Generate(sampleResult(), "sarif")

	var cfgErr *model.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestGenerateBatch(t *testing.T) {
	report := &model.BatchReport{
		RunID: "0b5e0f0c-8d0a-4c33-9d51-8a1e7b7c2f10",
		Items: []model.BatchItem{
			{Source: "login.txt", Result: sampleResult()},
			{Source: "broken.txt", Error: "configuration error (pseudocode_style): unsupported"},
		},
		Succeeded: 1,
		Failed:    1,
	}
	g := NewGenerator(config.OutputConfig{})

	md, err := g.GenerateBatch(report, "markdown")
	require.NoError(t, err)
	assert.Contains(t, md, "**Run:** 0b5e0f0c-8d0a-4c33-9d51-8a1e7b7c2f10")
	assert.Contains(t, md, "| login.txt | 30 | 1 | ok |")
	assert.Contains(t, md, "| broken.txt | - | - | failed: configuration error")
	assert.Contains(t, md, "### Summary")

	plain, err := g.GenerateBatch(report, "plain")
	require.NoError(t, err)
	assert.Contains(t, plain, "Succeeded: 1  Failed: 1")
	assert.Contains(t, plain, "FAILED: configuration error")
}

func TestNormalizeFormat(t *testing.T) {
	for in, want := range map[string]string{"JSON": FormatJSON, "md": FormatMarkdown, " plain ": FormatPlain, "txt": FormatPlain} {
		got, err := NormalizeFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, "md", Extension(FormatMarkdown))
	assert.Equal(t, "txt", Extension(FormatPlain))
	assert.Equal(t, "json", Extension(FormatJSON))
}
