package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"prism/src/config"
	"prism/src/controller"
	"prism/src/handler/mcpserver"
)

func (h *Handler) validateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate [story]",
		Short: "Validate a user story",
		Long:  `Checks that a story follows "As a <role>, I want <goal> so that <reason>" and scores each part`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args, file)
			if err != nil {
				return err
			}
			validation := controller.NewPipeline(h.cfg, nil).ValidateStory(text.Text)
			printStory(cmd.OutOrStdout(), validation)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the story from a file")
	return cmd
}

func (h *Handler) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with secrets redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *h.cfg
			if cfg.LLM.APIKey != "" {
				cfg.LLM.APIKey = redact(cfg.LLM.APIKey)
			}
			data, err := yaml.Marshal(&cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.NewLoader().Save(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)

	return cmd
}

func (h *Handler) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve analysis tools over MCP on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			capability, err := h.capability(cmd.Context(), h.cfg.LLM.AIEnabled())
			if err != nil {
				return err
			}
			return mcpserver.Serve(h.cfg, controller.NewPipeline(h.cfg, capability))
		},
	}
}

func redact(secret string) string {
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:4] + strings.Repeat("*", len(secret)-8) + secret[len(secret)-4:]
}
