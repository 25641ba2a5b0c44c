package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"prism/src/controller"
	"prism/src/service/detector"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", h.cfg.Agent.Name, h.cfg.Agent.Version)
		},
	}
}

func (h *Handler) passesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passes [name]",
		Short: "List ambiguity detection passes",
		Long: "Lists every ambiguity pass with its severity and confidence; passes below the configured threshold are disabled. " +
			"With a name, describes that one pass",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := controller.NewPipeline(h.cfg, nil).Detectors()

			if len(args) == 1 {
				p := runner.GetPass(args[0])
				if p == nil {
					return fmt.Errorf("unknown pass %q (run \"prism passes\" to list them)", args[0])
				}
				printPass(cmd.OutOrStdout(), p, runner.IsEnabled(p))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Ambiguity passes (threshold %.2f):\n", h.cfg.Analysis.AmbiguityThreshold)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			for _, p := range runner.ListPasses() {
				fmt.Fprintf(w, "  - %s\t%s\t%.2f\t%s\n", p.Name(), p.Severity(), p.Confidence(), passState(runner.IsEnabled(p)))
			}
			return w.Flush()
		},
	}
}

func printPass(w io.Writer, p detector.Pass, enabled bool) {
	fmt.Fprintf(w, "Name:       %s\n", p.Name())
	fmt.Fprintf(w, "Severity:   %s\n", p.Severity())
	fmt.Fprintf(w, "Confidence: %.2f\n", p.Confidence())
	fmt.Fprintf(w, "State:      %s\n", passState(enabled))
	if r, ok := p.(interface{ Reason() string }); ok {
		fmt.Fprintf(w, "Reason:     %s\n", r.Reason())
	}
}

func passState(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
