package controller

import (
	"os"
	"path/filepath"
	"strings"

	"prism/src/config"
	"prism/src/model"
	"prism/src/service/report"
	"prism/src/util"
)

// ReportController handles report generation
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// GenerateReports writes one analysis in every configured format
func (c *ReportController) GenerateReports(result *model.AnalysisResult) ([]string, error) {
	return c.writeAll(ReportName(result.Requirement.Source), func(g *report.Generator, format string) (string, error) {
		return g.Generate(result, format)
	})
}

// GenerateBatchReports writes a batch run in every configured format
func (c *ReportController) GenerateBatchReports(batch *model.BatchReport) ([]string, error) {
	return c.writeAll("batch-"+shortID(batch.RunID), func(g *report.Generator, format string) (string, error) {
		return g.GenerateBatch(batch, format)
	})
}

func (c *ReportController) writeAll(name string, render func(*report.Generator, string) (string, error)) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	reportGenerator := report.NewGenerator(c.cfg.Output)
	var outputPaths []string

	for _, format := range c.cfg.Output.Formats {
		f, err := report.NormalizeFormat(format)
		if err != nil {
			return nil, err
		}

		output, err := render(reportGenerator, f)
		if err != nil {
			util.Error("Failed to generate %s report: %v", f, err)
			return nil, err
		}

		outputPath := filepath.Join(c.cfg.Output.OutputDir, name+"-analysis."+report.Extension(f))

		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			util.Error("Failed to create output directory: %v", err)
			return nil, err
		}

		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			util.Error("Failed to write report to %s: %v", outputPath, err)
			return nil, err
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString renders one analysis in a single format
func (c *ReportController) GenerateToString(result *model.AnalysisResult, format string) (string, error) {
	return report.NewGenerator(c.cfg.Output).Generate(result, format)
}

// GenerateBatchToString renders a batch run in a single format
func (c *ReportController) GenerateBatchToString(batch *model.BatchReport, format string) (string, error) {
	return report.NewGenerator(c.cfg.Output).GenerateBatch(batch, format)
}

// ReportName derives a file name stem from a requirement source
func ReportName(source string) string {
	if source == "" || source == model.SourceInline {
		return "requirement"
	}
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
