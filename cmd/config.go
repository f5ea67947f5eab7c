package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jywlabs/namegame/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: `Show the current namegame configuration.

Displays settings from .namegame/config.yaml if present, otherwise the
defaults, with .env and NAMEGAME_* environment overrides applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig(cmd.OutOrStdout(), activeConfig)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(out io.Writer, cfg *config.Config) error {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	if cfg.Path == "" {
		fmt.Fprintln(out, "No .namegame/config.yaml found (using defaults)")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'namegame init' to create a configuration file.")
	} else {
		fmt.Fprintf(out, "Configuration file: %s\n", cfg.Path)
	}
	fmt.Fprintln(out)

	content, err := cfg.YAML()
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	fmt.Fprintln(out, "Effective settings:")
	fmt.Fprint(out, content)
	return nil
}
