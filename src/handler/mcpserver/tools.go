package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"prism/src/config"
	"prism/src/controller"
	"prism/src/model"
)

// Tools handles the analysis MCP tools
type Tools struct {
	cfg      *config.Config
	pipeline *controller.Pipeline
	reports  *controller.ReportController
}

// NewTools creates the tool handlers
func NewTools(cfg *config.Config, pipeline *controller.Pipeline) *Tools {
	return &Tools{cfg: cfg, pipeline: pipeline, reports: controller.NewReportController(cfg)}
}

// AnalyzeDefinition returns the MCP tool definition for analyze_requirement
func (t *Tools) AnalyzeDefinition() mcp.Tool {
	return mcp.NewTool("analyze_requirement",
		mcp.WithDescription(
			"Analyze a software requirement for ambiguity, completeness and user story quality, "+
				"suggest non-functional requirements and optionally generate design artifacts.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Requirement text to analyze"),
		),
		mcp.WithString("artifacts",
			mcp.Description("Comma-separated artifacts: uml, pseudo, tests, improve, nfr or all"),
		),
		mcp.WithString("pseudocode_style",
			mcp.Description("Pseudocode style: generic (default) or class"),
		),
		mcp.WithString("format",
			mcp.Description("Report format: json (default), markdown or plain"),
		),
		mcp.WithBoolean("augment",
			mcp.Description("Enrich results with the configured AI provider"),
		),
	)
}

// HandleAnalyze processes the analyze_requirement tool call
func (t *Tools) HandleAnalyze(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("'text' is required"), nil
	}

	genReq := model.GenerationRequest{
		PseudocodeStyle: model.PseudocodeStyle(req.GetString("pseudocode_style", "")),
		Augment:         req.GetBool("augment", false),
	}
	if names := req.GetString("artifacts", ""); names != "" {
		kinds, err := model.ParseArtifacts(strings.Split(names, ","))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		genReq.Artifacts = kinds
	}

	result, err := t.pipeline.Analyze(ctx, model.NewInlineRequirement(text), genReq)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	output, err := t.reports.GenerateToString(result, req.GetString("format", "json"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(output), nil
}

// ValidateDefinition returns the MCP tool definition for validate_user_story
func (t *Tools) ValidateDefinition() mcp.Tool {
	return mcp.NewTool("validate_user_story",
		mcp.WithDescription(
			`Check that a user story follows "As a <role>, I want <goal> so that <reason>" `+
				"and score its actor, goal, reason and business value.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("User story text"),
		),
	)
}

// HandleValidate processes the validate_user_story tool call
func (t *Tools) HandleValidate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("'text' is required"), nil
	}

	data, err := json.MarshalIndent(t.pipeline.ValidateStory(text), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
