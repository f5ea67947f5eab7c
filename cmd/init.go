package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jywlabs/namegame/internal/template"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize .namegame/ directory",
	Long: `Initialize the .namegame/ directory in the current directory.

Creates:
  .namegame/
    config.yaml    # No-vowel policy, output style, logging`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(".", cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(dir string, out io.Writer) error {
	configDir := filepath.Join(dir, template.ConfigDir)

	// Check if already initialized
	if _, err := os.Stat(configDir); err == nil {
		return fmt.Errorf("%s/ already exists", template.ConfigDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	// Create default files from templates
	for filename, content := range template.DefaultFiles() {
		filePath := filepath.Join(configDir, filename)
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
	}

	fmt.Fprintf(out, "Initialized %s/\n", template.ConfigDir)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Created:")
	fmt.Fprintf(out, "  %s/%s   - Verse and logging settings\n", template.ConfigDir, template.ConfigFile)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the settings if you like")
	fmt.Fprintln(out, "  2. Run: namegame verse <name>")

	return nil
}
