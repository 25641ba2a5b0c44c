package controller

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prism/src/config"
	"prism/src/model"
	"prism/src/service/augment"
)

type fixedCapability struct {
	reply string
	err   error
}

func (f fixedCapability) Name() string { return "fixed" }

func (f fixedCapability) Complete(ctx context.Context, _ string, _ augment.CompletionConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.reply, f.err
}

func newTestPipeline(t *testing.T, capability augment.Capability) *Pipeline {
	t.Helper()
	return NewPipeline(config.DefaultConfig(), capability)
}

func inline(text string) model.RequirementText {
	return model.NewInlineRequirement(text)
}

func TestAnalyze_LoginQuickly(t *testing.T) {
	p := newTestPipeline(t, nil)

	result, err := p.Analyze(context.Background(), inline("As a user, I want to login quickly"), model.GenerationRequest{})
	require.NoError(t, err)

	assert.Equal(t, []string{"user"}, result.Entities.Actors)
	assert.Equal(t, []string{"login"}, result.Entities.Actions)

	var vague *model.Ambiguity
	for i := range result.Ambiguities {
		if result.Ambiguities[i].MatchedText == "quickly" {
			vague = &result.Ambiguities[i]
		}
	}
	require.NotNil(t, vague)
	assert.Equal(t, model.SeverityMedium, vague.Severity)

	// no "so that" clause
	assert.False(t, result.StoryValidation.IsValidFormat)
	assert.Empty(t, result.Warnings)
	assert.False(t, result.Augmentation.Requested)
}

func TestAnalyze_MissingActorIsCriticalAndFirst(t *testing.T) {
	p := newTestPipeline(t, nil)

	result, err := p.Analyze(context.Background(), inline("Someone should be able to create reports"), model.GenerationRequest{})
	require.NoError(t, err)

	assert.Empty(t, result.Entities.Actors)
	require.NotEmpty(t, result.Ambiguities)
	assert.Equal(t, model.SeverityCritical, result.Ambiguities[0].Severity)
	assert.False(t, result.StoryValidation.IsValidFormat)
}

func TestAnalyze_Deterministic(t *testing.T) {
	p := newTestPipeline(t, nil)
	text := inline("As an admin, I want to export monthly invoices and delete old reports so that storage stays bounded. " +
		"If the export fails the system should retry. Users must be notified quickly.")
	req := model.GenerationRequest{Artifacts: model.AllArtifacts, PseudocodeStyle: model.StyleClassBased}

	first, err := p.Analyze(context.Background(), text, req)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := p.Analyze(context.Background(), text, req)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAnalyze_GeneratesOnlyRequestedArtifacts(t *testing.T) {
	p := newTestPipeline(t, nil)
	req := model.GenerationRequest{Artifacts: []model.ArtifactKind{model.ArtifactUML, model.ArtifactTests}}

	result, err := p.Analyze(context.Background(), inline("As a user, I want to login so that I can see my orders"), req)
	require.NoError(t, err)

	assert.Contains(t, result.Artifacts.UML, "@startuml")
	assert.Contains(t, result.Artifacts.Tests, "TC-HP-001")
	assert.Empty(t, result.Artifacts.Pseudocode)
	assert.Empty(t, result.Artifacts.Improved)
	assert.Empty(t, result.Artifacts.NFRDocument)
}

func TestAnalyze_ConfigurationErrorReturnsNoResult(t *testing.T) {
	p := newTestPipeline(t, nil)

	tests := []struct {
		name string
		req  model.GenerationRequest
	}{
		{name: "unknown artifact", req: model.GenerationRequest{Artifacts: []model.ArtifactKind{"gantt"}}},
		{name: "unknown style", req: model.GenerationRequest{Artifacts: []model.ArtifactKind{model.ArtifactPseudocode}, PseudocodeStyle: "cobol"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.Analyze(context.Background(), inline("As a user, I want to login"), tt.req)

			assert.Nil(t, result)
			var cfgErr *model.ConfigurationError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestAnalyze_EmptyInputWarns(t *testing.T) {
	p := newTestPipeline(t, nil)

	result, err := p.Analyze(context.Background(), inline("   \n"), model.GenerationRequest{Artifacts: model.AllArtifacts})
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "empty")
	assert.True(t, result.Entities.IsEmpty())
	assert.Empty(t, result.Ambiguities)
	assert.NotEmpty(t, result.Artifacts.Tests)
}

func TestAnalyze_AugmentDegradesWithoutProvider(t *testing.T) {
	p := newTestPipeline(t, nil)

	result, err := p.Analyze(context.Background(), inline("As a user, I want to login"), model.GenerationRequest{Augment: true})
	require.NoError(t, err)

	assert.True(t, result.Augmentation.Requested)
	assert.True(t, result.Augmentation.Degraded)
	assert.Equal(t, "no AI provider configured", result.Augmentation.Reason)
}

func TestAnalyze_AugmentFeedsImprovedArtifact(t *testing.T) {
	reply := `{"improved_text": "As a registered user, I want to log in within 2 seconds so that I can reach my dashboard."}`
	p := newTestPipeline(t, fixedCapability{reply: reply})
	req := model.GenerationRequest{Artifacts: []model.ArtifactKind{model.ArtifactImprove}, Augment: true}

	result, err := p.Analyze(context.Background(), inline("As a user, I want to login quickly"), req)
	require.NoError(t, err)

	assert.False(t, result.Augmentation.Degraded)
	assert.Equal(t, "fixed", result.Augmentation.Provider)
	assert.Contains(t, result.Artifacts.Improved, "within 2 seconds")
}

func TestAnalyze_CancelledContext(t *testing.T) {
	p := newTestPipeline(t, fixedCapability{reply: "{}"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := p.Analyze(ctx, inline("As a user, I want to login"), model.GenerationRequest{Augment: true})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeBatch_KeepsOrderAndIsolatesFailures(t *testing.T) {
	p := newTestPipeline(t, nil)
	items := []model.RequirementText{
		{Text: "As a user, I want to login", Source: "a.txt"},
		{Text: "", Source: "b.txt"},
		{Text: "Someone should be able to create reports", Source: "c.txt"},
		{Text: "As an admin, I want to delete accounts so that data stays clean", Source: "d.txt"},
	}

	out := p.AnalyzeBatch(context.Background(), items, model.GenerationRequest{Artifacts: []model.ArtifactKind{model.ArtifactTests}}, 3)

	require.Len(t, out, len(items))
	for i, item := range out {
		assert.Equal(t, items[i].Source, item.Source)
		assert.NoError(t, item.Err)
		require.NotNil(t, item.Result)
		assert.Equal(t, items[i].Text, item.Result.Requirement.Text)
	}
	assert.NotEmpty(t, out[1].Result.Warnings)
}

func TestAnalyzeBatch_ConfigurationErrorPerItem(t *testing.T) {
	p := newTestPipeline(t, nil)
	items := []model.RequirementText{inline("As a user, I want to login"), inline("As an admin, I want to delete accounts")}

	out := p.AnalyzeBatch(context.Background(), items, model.GenerationRequest{PseudocodeStyle: "cobol"}, 2)

	for _, item := range out {
		assert.Nil(t, item.Result)
		var cfgErr *model.ConfigurationError
		assert.ErrorAs(t, item.Err, &cfgErr)
		assert.NotEmpty(t, item.Error)
	}
}

func TestAnalyzeBatch_Cancelled(t *testing.T) {
	p := newTestPipeline(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := p.AnalyzeBatch(ctx, []model.RequirementText{inline("As a user, I want to login"), inline("x")}, model.GenerationRequest{}, 1)

	for _, item := range out {
		assert.Nil(t, item.Result)
		assert.ErrorIs(t, item.Err, context.Canceled)
	}
}

func TestAnalyzeBatch_MatchesSequential(t *testing.T) {
	p := newTestPipeline(t, nil)
	var items []model.RequirementText
	for _, text := range []string{
		"As a user, I want to login so that I can see my orders",
		"The system should be fast",
		"As a manager, I want to approve refunds so that customers are repaid",
		"If payment fails the order must be cancelled",
		"Anyone can upload files",
	} {
		items = append(items, inline(text))
	}
	req := model.GenerationRequest{Artifacts: model.AllArtifacts}

	parallel := p.AnalyzeBatch(context.Background(), items, req, 4)
	sequential := p.AnalyzeBatch(context.Background(), items, req, 1)

	assert.Equal(t, sequential, parallel)
}

func TestAnalyze_InvalidUTF8(t *testing.T) {
	p := newTestPipeline(t, nil)

	result, err := p.Analyze(context.Background(), inline("The caf\xe9 \xe9\xe9\xe9\xe9 system must be fast"), model.GenerationRequest{Artifacts: model.AllArtifacts})
	require.NoError(t, err)

	var matched []string
	for _, a := range result.Ambiguities {
		matched = append(matched, a.MatchedText)
	}
	assert.Contains(t, matched, "fast")
}

func TestAnalyzeBatch_InvalidUTF8Item(t *testing.T) {
	p := newTestPipeline(t, nil)
	items := []model.RequirementText{
		{Text: "As a user, I want to login", Source: "a.txt"},
		{Text: "As a caf\xe9 owner, I want to export reports quickly", Source: "latin1.txt"},
		{Text: "As an admin, I want to delete accounts", Source: "c.txt"},
	}

	out := p.AnalyzeBatch(context.Background(), items, model.GenerationRequest{Artifacts: model.AllArtifacts}, 3)

	require.Len(t, out, len(items))
	for _, item := range out {
		assert.NoError(t, item.Err, item.Source)
		require.NotNil(t, item.Result, item.Source)
	}
	assert.Contains(t, out[1].Result.Entities.Actions, "export")
}

func TestNewBatchReport_Counts(t *testing.T) {
	items := []model.BatchItem{
		{Source: "a", Result: &model.AnalysisResult{}},
		{Source: "b", Err: context.Canceled, Error: context.Canceled.Error()},
		{Source: "c", Result: &model.AnalysisResult{}},
	}

	report := NewBatchReport(items)

	assert.Len(t, report.RunID, 36)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.NotEqual(t, report.RunID, NewBatchReport(items).RunID)
}

func TestReportController_WritesEveryFormat(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = filepath.Join(t.TempDir(), "reports")
	cfg.Output.Formats = []string{"json", "md", "plain"}

	result, err := NewPipeline(cfg, nil).Analyze(context.Background(),
		model.RequirementText{Text: "As a user, I want to login", Source: "specs/login.txt"}, model.GenerationRequest{})
	require.NoError(t, err)

	paths, err := NewReportController(cfg).GenerateReports(result)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, "login-analysis.json", filepath.Base(paths[0]))
	assert.Equal(t, "login-analysis.md", filepath.Base(paths[1]))
	assert.Equal(t, "login-analysis.txt", filepath.Base(paths[2]))

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Requirement Analysis Report"))
}

func TestReportController_UnknownFormat(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = t.TempDir()
	cfg.Output.Formats = []string{"sarif"}

	_, err := NewReportController(cfg).GenerateReports(&model.AnalysisResult{})

	var cfgErr *model.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestReportName(t *testing.T) {
	assert.Equal(t, "requirement", ReportName(model.SourceInline))
	assert.Equal(t, "checkout", ReportName("docs/stories/checkout.md"))
}
