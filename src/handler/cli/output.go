package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"prism/src/model"
)

// progress shows a spinner on an interactive stderr and nothing otherwise
type progress struct {
	s *spinner.Spinner
}

func startProgress(suffix string) *progress {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return &progress{}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + suffix
	s.Start()
	return &progress{s: s}
}

func (p *progress) stop() {
	if p.s != nil {
		p.s.Stop()
	}
}

func severityColor(s model.Severity) *color.Color {
	switch s {
	case model.SeverityCritical:
		return color.New(color.FgRed, color.Bold)
	case model.SeverityHigh:
		return color.New(color.FgRed)
	case model.SeverityMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgHiBlack)
	}
}

func scoreColor(score float64) *color.Color {
	switch {
	case score >= 80:
		return color.New(color.FgGreen)
	case score >= 50:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// printSummary writes a short colored digest of one result
func printSummary(w io.Writer, r *model.AnalysisResult) {
	bold := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)

	bold.Fprintf(w, "\n%s\n", r.Requirement.Source)
	for _, warning := range r.Warnings {
		color.New(color.FgYellow).Fprintf(w, "  warning: %s\n", warning)
	}

	fmt.Fprint(w, "  Completeness:   ")
	scoreColor(r.Completeness.Score).Fprintf(w, "%.0f/100\n", r.Completeness.Score)
	fmt.Fprint(w, "  Business value: ")
	scoreColor(r.StoryValidation.BusinessValueScore).Fprintf(w, "%.0f/100\n", r.StoryValidation.BusinessValueScore)
	fmt.Fprint(w, "  Story format:   ")
	if r.StoryValidation.IsValidFormat {
		color.New(color.FgGreen).Fprintln(w, "valid")
	} else {
		color.New(color.FgRed).Fprintln(w, "invalid")
	}

	fmt.Fprintf(w, "  Ambiguities:    %d\n", len(r.Ambiguities))
	for _, a := range r.Ambiguities {
		fmt.Fprint(w, "    ")
		severityColor(a.Severity).Fprintf(w, "%-8s", a.Severity)
		fmt.Fprintf(w, " %q ", a.MatchedText)
		dim.Fprintln(w, a.Reason)
	}

	if r.Augmentation.Requested {
		if r.Augmentation.Degraded {
			color.New(color.FgYellow).Fprintf(w, "  AI augmentation degraded: %s\n", r.Augmentation.Reason)
		} else {
			color.New(color.FgGreen).Fprintf(w, "  AI augmentation applied via %s\n", r.Augmentation.Provider)
		}
	}
}

// printBatchSummary writes one line per item plus totals
func printBatchSummary(w io.Writer, report *model.BatchReport) {
	bold := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)

	bold.Fprintf(w, "\nRun %s\n", report.RunID)
	for _, item := range report.Items {
		if item.Result == nil {
			color.New(color.FgRed).Fprint(w, "  FAIL ")
			fmt.Fprintf(w, "%s ", item.Source)
			dim.Fprintln(w, item.Error)
			continue
		}
		color.New(color.FgGreen).Fprint(w, "  OK   ")
		fmt.Fprintf(w, "%s  completeness ", item.Source)
		scoreColor(item.Result.Completeness.Score).Fprintf(w, "%.0f", item.Result.Completeness.Score)
		fmt.Fprintf(w, "  ambiguities %d\n", len(item.Result.Ambiguities))
	}
	fmt.Fprintf(w, "\n%d succeeded, %d failed\n", report.Succeeded, report.Failed)
}

// printStory writes a story validation breakdown
func printStory(w io.Writer, v model.StoryValidation) {
	bold := color.New(color.Bold)

	fmt.Fprint(w, "Format: ")
	if v.IsValidFormat {
		color.New(color.FgGreen).Fprintln(w, "valid")
	} else {
		color.New(color.FgRed).Fprintln(w, "invalid")
	}

	parts := []struct {
		label string
		text  string
		q     model.QualityScore
	}{
		{"Actor", v.Actor, v.ActorQuality},
		{"Goal", v.Goal, v.GoalQuality},
		{"Reason", v.Reason, v.ReasonQuality},
	}
	for _, p := range parts {
		bold.Fprintf(w, "%-7s", p.label)
		scoreColor(p.q.Score).Fprintf(w, "%5.0f", p.q.Score)
		fmt.Fprintf(w, "  %s\n", p.text)
		for _, issue := range p.q.Issues {
			fmt.Fprintf(w, "         - %s\n", issue)
		}
	}

	fmt.Fprint(w, "Business value: ")
	scoreColor(v.BusinessValueScore).Fprintf(w, "%.0f/100\n", v.BusinessValueScore)
	for _, rec := range v.Recommendations {
		fmt.Fprintf(w, "  * %s\n", rec)
	}
}
