package cli

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"prism/src/config"
	"prism/src/controller"
	"prism/src/model"
	"prism/src/service/augment"
	"prism/src/service/provider"
	"prism/src/util"
)

type analyzeOptions struct {
	file            string
	dir             string
	preset          string
	generate        []string
	format          string
	output          string
	pseudoLang      string
	ai              bool
	parallel        int
	continueOnError bool
	timeout         time.Duration
}

func (h *Handler) analyzeCmd() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze requirement text",
		Long: "Analyzes requirement text given as an argument, read from --file, from every matching file in --dir, " +
			"or from stdin, and generates the requested artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("parallel") {
				opts.parallel = h.cfg.Concurrency.MaxParallelItems
			}

			req, err := buildRequest(h.cfg, opts, cmd.Flags().Changed("preset"))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
			defer cancel()

			capability, err := h.capability(ctx, req.Augment)
			if err != nil {
				return err
			}
			pipeline := controller.NewPipeline(h.cfg, capability)

			if opts.dir != "" {
				return h.analyzeDir(ctx, cmd, pipeline, req, opts)
			}

			text, err := readInput(cmd.InOrStdin(), args, opts.file)
			if err != nil {
				return err
			}

			util.Info("Analyzing %s (timeout: %v)", text.Source, opts.timeout)
			spin := startProgress("Analyzing requirement")
			result, err := pipeline.Analyze(ctx, text, req)
			spin.stop()
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			reportCtrl := controller.NewReportController(h.reportConfig(opts))
			if opts.output != "" {
				paths, err := reportCtrl.GenerateReports(result)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
				}
			} else {
				output, err := reportCtrl.GenerateToString(result, h.stdoutFormat(opts))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), output)
			}

			printSummary(cmd.ErrOrStderr(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Read the requirement from a file")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Analyze every matching file in a directory")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Artifact preset (basic, standard, full, report)")
	cmd.Flags().StringSliceVarP(&opts.generate, "generate", "g", nil, "Artifacts to generate (uml, pseudo, tests, improve, nfr, all); overrides --preset")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format (json, markdown, plain)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory path")
	cmd.Flags().StringVar(&opts.pseudoLang, "pseudo-lang", "", "Pseudocode style (generic, class)")
	cmd.Flags().BoolVar(&opts.ai, "ai", false, "Enrich results with the configured AI provider")
	cmd.Flags().IntVar(&opts.parallel, "parallel", 4, "Files analyzed concurrently in --dir mode")
	cmd.Flags().BoolVar(&opts.continueOnError, "continue-on-error", false, "Exit successfully in --dir mode even if some files fail")
	cmd.Flags().DurationVarP(&opts.timeout, "timeout", "t", 5*time.Minute, "Analysis timeout")

	cmd.MarkFlagsMutuallyExclusive("file", "dir")

	return cmd
}

func (h *Handler) analyzeDir(ctx context.Context, cmd *cobra.Command, pipeline *controller.Pipeline, req model.GenerationRequest, opts analyzeOptions) error {
	items, err := collectInputs(opts.dir, util.NewInputMatcher(h.cfg.Input))
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no requirement files matched in %s", opts.dir)
	}

	spin := startProgress(fmt.Sprintf("Analyzing %d files", len(items)))
	results := pipeline.AnalyzeBatch(ctx, items, req, opts.parallel)
	spin.stop()

	batch := controller.NewBatchReport(results)
	reportCtrl := controller.NewReportController(h.reportConfig(opts))
	if opts.output != "" {
		paths, err := reportCtrl.GenerateBatchReports(batch)
		if err != nil {
			return fmt.Errorf("generating reports: %w", err)
		}
		for _, path := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		}
	} else {
		output, err := reportCtrl.GenerateBatchToString(batch, h.stdoutFormat(opts))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}

	printBatchSummary(cmd.ErrOrStderr(), batch)
	if batch.Failed > 0 && !opts.continueOnError {
		return fmt.Errorf("%d of %d files failed", batch.Failed, len(batch.Items))
	}
	return nil
}

// buildRequest resolves artifacts from --generate, then --preset, then the
// configured artifacts or preset
func buildRequest(cfg *config.Config, opts analyzeOptions, presetChanged bool) (model.GenerationRequest, error) {
	req := model.GenerationRequest{
		PseudocodeStyle: model.PseudocodeStyle(cfg.Generation.PseudocodeStyle),
		Augment:         opts.ai,
	}
	if opts.pseudoLang != "" {
		req.PseudocodeStyle = model.PseudocodeStyle(opts.pseudoLang)
	}

	var err error
	switch {
	case len(opts.generate) > 0:
		req.Artifacts, err = model.ParseArtifacts(opts.generate)
	case presetChanged:
		req.Artifacts, err = model.PresetArtifacts(model.Preset(opts.preset))
	case len(cfg.Generation.Artifacts) > 0:
		req.Artifacts, err = model.ParseArtifacts(cfg.Generation.Artifacts)
	default:
		req.Artifacts, err = model.PresetArtifacts(model.Preset(cfg.Generation.Preset))
	}
	if err != nil {
		return model.GenerationRequest{}, err
	}
	return req, req.Validate()
}

func (h *Handler) capability(ctx context.Context, wanted bool) (augment.Capability, error) {
	if !wanted {
		return nil, nil
	}
	capability, err := provider.New(ctx, h.cfg)
	if err != nil {
		return nil, fmt.Errorf("creating AI provider: %w", err)
	}
	if capability == nil {
		util.Warn("--ai requested but no provider is configured; results will be marked degraded")
	}
	return capability, nil
}

func (h *Handler) reportConfig(opts analyzeOptions) *config.Config {
	cfg := *h.cfg
	if opts.output != "" {
		cfg.Output.OutputDir = opts.output
		if opts.format != "" {
			cfg.Output.Formats = []string{opts.format}
		}
	}
	return &cfg
}

func (h *Handler) stdoutFormat(opts analyzeOptions) string {
	if opts.format != "" {
		return opts.format
	}
	if len(h.cfg.Output.Formats) > 0 {
		return h.cfg.Output.Formats[0]
	}
	return "markdown"
}

// readInput takes text from --file, the arguments, or a piped stdin
func readInput(stdin io.Reader, args []string, file string) (model.RequirementText, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return model.RequirementText{}, fmt.Errorf("reading requirement file: %w", err)
		}
		return model.RequirementText{Text: string(data), Source: file}, nil
	}

	if len(args) > 0 {
		return model.NewInlineRequirement(strings.Join(args, " ")), nil
	}

	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return model.RequirementText{}, fmt.Errorf("no requirement given: pass text, --file, --dir or pipe it on stdin")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return model.RequirementText{}, fmt.Errorf("reading stdin: %w", err)
	}
	return model.RequirementText{Text: string(data), Source: "stdin"}, nil
}

// collectInputs reads every matching file under dir in lexical order
func collectInputs(dir string, matcher *util.InputMatcher) ([]model.RequirementText, error) {
	var items []model.RequirementText
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if !matcher.Matches(rel) {
			util.Debug("Skipping %s", rel)
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		items = append(items, model.RequirementText{Text: string(data), Source: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	return items, nil
}
