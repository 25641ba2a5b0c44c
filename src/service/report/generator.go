package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"prism/src/config"
	"prism/src/model"
	"prism/src/util"
)

// Supported report formats
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatPlain    = "plain"
)

// Generator generates reports in various formats
type Generator struct {
	cfg config.OutputConfig
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig) *Generator {
	return &Generator{cfg: cfg}
}

// NormalizeFormat maps aliases such as "md" or "text" to a supported format
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "plain", "text", "txt":
		return FormatPlain, nil
	}
	return "", &model.ConfigurationError{Field: "format", Message: fmt.Sprintf("unsupported format %q (supported: json, markdown, plain)", format)}
}

// Extension returns the file extension for a format
func Extension(format string) string {
	switch format {
	case FormatMarkdown:
		return "md"
	case FormatPlain:
		return "txt"
	}
	return format
}

// Generate renders one analysis result
func (g *Generator) Generate(result *model.AnalysisResult, format string) (string, error) {
	f, err := NormalizeFormat(format)
	if err != nil {
		util.Warn("Unsupported report format requested: %s", format)
		return "", err
	}
	util.Debug("Generating %s report for %s (%d ambiguities)", f, result.Requirement.Source, len(result.Ambiguities))

	switch f {
	case FormatJSON:
		return generateJSON(result)
	case FormatMarkdown:
		var sb strings.Builder
		sb.WriteString("# Requirement Analysis Report\n\n")
		g.writeMarkdown(&sb, result, "##")
		return sb.String(), nil
	default:
		var sb strings.Builder
		sb.WriteString("REQUIREMENT ANALYSIS REPORT\n")
		sb.WriteString(strings.Repeat("=", 27) + "\n\n")
		g.writePlain(&sb, result)
		return sb.String(), nil
	}
}

// GenerateBatch renders a directory run
func (g *Generator) GenerateBatch(report *model.BatchReport, format string) (string, error) {
	f, err := NormalizeFormat(format)
	if err != nil {
		util.Warn("Unsupported report format requested: %s", format)
		return "", err
	}
	util.Debug("Generating %s batch report for run %s (%d items)", f, report.RunID, len(report.Items))

	switch f {
	case FormatJSON:
		return generateJSON(report)
	case FormatMarkdown:
		return g.batchMarkdown(report), nil
	default:
		return g.batchPlain(report), nil
	}
}

func generateJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) writeMarkdown(sb *strings.Builder, r *model.AnalysisResult, h string) {
	sb.WriteString(fmt.Sprintf("**Source:** %s\n\n", r.Requirement.Source))
	sb.WriteString("> " + strings.ReplaceAll(strings.TrimSpace(r.Requirement.Text), "\n", "\n> ") + "\n\n")

	for _, w := range r.Warnings {
		sb.WriteString(fmt.Sprintf("**Warning:** %s\n\n", w))
	}

	// Summary
	sb.WriteString(h + " Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Completeness:** %.0f/100\n", r.Completeness.Score))
	sb.WriteString(fmt.Sprintf("- **User story format:** %s\n", validLabel(r.StoryValidation.IsValidFormat)))
	sb.WriteString(fmt.Sprintf("- **Business value:** %.0f/100\n", r.StoryValidation.BusinessValueScore))
	sb.WriteString(fmt.Sprintf("- **Ambiguities:** %d\n", len(r.Ambiguities)))
	if r.Augmentation.Requested {
		sb.WriteString(fmt.Sprintf("- **AI augmentation:** %s\n", augmentationLabel(r.Augmentation)))
	}
	sb.WriteString("\n")

	// By Severity
	counts := severityCounts(r.Ambiguities)
	sb.WriteString("| Severity | Count |\n")
	sb.WriteString("|----------|-------|\n")
	for _, sev := range severities {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", sev, counts[sev]))
	}
	sb.WriteString("\n")

	// Entities
	sb.WriteString(h + " Entities\n\n")
	sb.WriteString(fmt.Sprintf("- **Actors:** %s\n", listOrNone(r.Entities.Actors)))
	sb.WriteString(fmt.Sprintf("- **Actions:** %s\n", listOrNone(r.Entities.Actions)))
	sb.WriteString(fmt.Sprintf("- **Objects:** %s\n\n", listOrNone(r.Entities.Objects)))

	// Ambiguities
	if len(r.Ambiguities) > 0 {
		sb.WriteString(h + " Ambiguities\n\n")
		for _, a := range r.Ambiguities {
			sb.WriteString(fmt.Sprintf("- %s `%s`: %s\n", severityLabel(a.Severity), a.MatchedText, a.Reason))
			if g.cfg.IncludeSuggestions {
				for _, s := range a.Suggestions {
					sb.WriteString(fmt.Sprintf("  - Suggestion: %s\n", s))
				}
			}
		}
		sb.WriteString("\n")
	}

	// Completeness
	sb.WriteString(h + " Completeness\n\n")
	sb.WriteString("| Component | Weight | Present |\n")
	sb.WriteString("|-----------|--------|---------|\n")
	for _, c := range r.Completeness.Components {
		sb.WriteString(fmt.Sprintf("| %s | %d | %s |\n", c.Name, c.Weight, yesNo(c.Present)))
	}
	sb.WriteString("\n")
	for _, gap := range r.Completeness.Gaps {
		sb.WriteString(fmt.Sprintf("- **[%s] %s:** %s\n", strings.ToUpper(string(gap.Priority)), gap.Category, gap.Description))
		if g.cfg.IncludeSuggestions {
			for _, s := range gap.Suggestions {
				sb.WriteString(fmt.Sprintf("  - %s\n", s))
			}
		}
	}
	if len(r.Completeness.Gaps) > 0 {
		sb.WriteString("\n")
	}

	// User story
	sv := r.StoryValidation
	sb.WriteString(h + " User Story\n\n")
	sb.WriteString("| Part | Text | Score |\n")
	sb.WriteString("|------|------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Actor | %s | %.0f |\n", sv.Actor, sv.ActorQuality.Score))
	sb.WriteString(fmt.Sprintf("| Goal | %s | %.0f |\n", sv.Goal, sv.GoalQuality.Score))
	sb.WriteString(fmt.Sprintf("| Reason | %s | %.0f |\n", sv.Reason, sv.ReasonQuality.Score))
	sb.WriteString("\n")
	if g.cfg.IncludeSuggestions {
		for _, rec := range sv.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		if len(sv.Recommendations) > 0 {
			sb.WriteString("\n")
		}
	}

	// NFRs
	sb.WriteString(h + " Non-Functional Requirements\n\n")
	for _, n := range r.NfrSuggestions {
		sb.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", n.Category, n.Priority, n.Requirement))
	}
	sb.WriteString("\n")

	// Artifacts
	for _, kind := range model.AllArtifacts {
		body := r.Artifacts.Get(kind)
		if body == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s Artifact: %s\n\n", h, artifactTitle(kind)))
		sb.WriteString("```" + fenceLanguage(kind) + "\n")
		sb.WriteString(strings.TrimRight(body, "\n"))
		sb.WriteString("\n```\n\n")
	}
}

func (g *Generator) writePlain(sb *strings.Builder, r *model.AnalysisResult) {
	sb.WriteString(fmt.Sprintf("Source: %s\n", r.Requirement.Source))
	sb.WriteString(fmt.Sprintf("Text: %s\n", strings.TrimSpace(r.Requirement.Text)))
	for _, w := range r.Warnings {
		sb.WriteString(fmt.Sprintf("Warning: %s\n", w))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Completeness: %.0f/100\n", r.Completeness.Score))
	sb.WriteString(fmt.Sprintf("User story format: %s\n", validLabel(r.StoryValidation.IsValidFormat)))
	sb.WriteString(fmt.Sprintf("Business value: %.0f/100\n", r.StoryValidation.BusinessValueScore))
	if r.Augmentation.Requested {
		sb.WriteString(fmt.Sprintf("AI augmentation: %s\n", augmentationLabel(r.Augmentation)))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Actors: %s\n", listOrNone(r.Entities.Actors)))
	sb.WriteString(fmt.Sprintf("Actions: %s\n", listOrNone(r.Entities.Actions)))
	sb.WriteString(fmt.Sprintf("Objects: %s\n\n", listOrNone(r.Entities.Objects)))

	sb.WriteString(fmt.Sprintf("Ambiguities (%d):\n", len(r.Ambiguities)))
	for _, a := range r.Ambiguities {
		sb.WriteString(fmt.Sprintf("  %s %q: %s\n", severityLabel(a.Severity), a.MatchedText, a.Reason))
		if g.cfg.IncludeSuggestions && len(a.Suggestions) > 0 {
			sb.WriteString(fmt.Sprintf("    -> %s\n", a.Suggestions[0]))
		}
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Gaps (%d):\n", len(r.Completeness.Gaps)))
	for _, gap := range r.Completeness.Gaps {
		sb.WriteString(fmt.Sprintf("  [%s] %s: %s\n", strings.ToUpper(string(gap.Priority)), gap.Category, gap.Description))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("NFR suggestions (%d):\n", len(r.NfrSuggestions)))
	for _, n := range r.NfrSuggestions {
		sb.WriteString(fmt.Sprintf("  %s (%s): %s\n", n.Category, n.Priority, n.Requirement))
	}

	for _, kind := range model.AllArtifacts {
		body := r.Artifacts.Get(kind)
		if body == "" {
			continue
		}
		title := strings.ToUpper(artifactTitle(kind))
		sb.WriteString("\n" + title + "\n" + strings.Repeat("-", len(title)) + "\n")
		sb.WriteString(strings.TrimRight(body, "\n") + "\n")
	}
}

func (g *Generator) batchMarkdown(report *model.BatchReport) string {
	var sb strings.Builder
	sb.WriteString("# Requirement Analysis Batch Report\n\n")
	sb.WriteString(fmt.Sprintf("**Run:** %s\n\n", report.RunID))
	sb.WriteString(fmt.Sprintf("- **Analyzed:** %d\n", len(report.Items)))
	sb.WriteString(fmt.Sprintf("- **Succeeded:** %d\n", report.Succeeded))
	sb.WriteString(fmt.Sprintf("- **Failed:** %d\n\n", report.Failed))

	sb.WriteString("| Source | Completeness | Ambiguities | Status |\n")
	sb.WriteString("|--------|--------------|-------------|--------|\n")
	for _, item := range report.Items {
		if item.Result == nil {
			sb.WriteString(fmt.Sprintf("| %s | - | - | failed: %s |\n", item.Source, item.Error))
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %.0f | %d | ok |\n", item.Source, item.Result.Completeness.Score, len(item.Result.Ambiguities)))
	}
	sb.WriteString("\n")

	for _, item := range report.Items {
		if item.Result == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("## %s\n\n", item.Source))
		g.writeMarkdown(&sb, item.Result, "###")
	}
	return sb.String()
}

func (g *Generator) batchPlain(report *model.BatchReport) string {
	var sb strings.Builder
	sb.WriteString("REQUIREMENT ANALYSIS BATCH REPORT\n")
	sb.WriteString(fmt.Sprintf("Run: %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Succeeded: %d  Failed: %d\n", report.Succeeded, report.Failed))

	for _, item := range report.Items {
		sb.WriteString("\n" + strings.Repeat("=", 60) + "\n")
		if item.Result == nil {
			sb.WriteString(fmt.Sprintf("Source: %s\nFAILED: %s\n", item.Source, item.Error))
			continue
		}
		g.writePlain(&sb, item.Result)
	}
	return sb.String()
}

var severities = []model.Severity{model.SeverityCritical, model.SeverityHigh, model.SeverityMedium, model.SeverityLow}

func severityCounts(ambiguities []model.Ambiguity) map[model.Severity]int {
	counts := make(map[model.Severity]int)
	for _, a := range ambiguities {
		counts[a.Severity]++
	}
	return counts
}

func severityLabel(s model.Severity) string {
	switch s {
	case model.SeverityCritical:
		return "[CRITICAL]"
	case model.SeverityHigh:
		return "[HIGH]"
	case model.SeverityMedium:
		return "[MEDIUM]"
	default:
		return "[LOW]"
	}
}

func augmentationLabel(a model.Augmentation) string {
	if a.Degraded {
		return fmt.Sprintf("degraded (%s)", a.Reason)
	}
	return "applied via " + a.Provider
}

func validLabel(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func artifactTitle(kind model.ArtifactKind) string {
	switch kind {
	case model.ArtifactUML:
		return "UML Diagrams"
	case model.ArtifactPseudocode:
		return "Pseudocode"
	case model.ArtifactTests:
		return "Test Cases"
	case model.ArtifactImprove:
		return "Improved Requirement"
	case model.ArtifactNFR:
		return "NFR Document"
	}
	return string(kind)
}

func fenceLanguage(kind model.ArtifactKind) string {
	switch kind {
	case model.ArtifactUML:
		return "plantuml"
	case model.ArtifactTests, model.ArtifactImprove, model.ArtifactNFR:
		return "markdown"
	}
	return "text"
}
