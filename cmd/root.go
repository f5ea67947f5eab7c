package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jywlabs/namegame/internal/config"
	"github.com/jywlabs/namegame/internal/logging"
	"github.com/jywlabs/namegame/internal/output"
)

var (
	logLevelFlag  string
	logFormatFlag string

	// activeConfig is loaded before every command runs.
	activeConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "namegame",
	Short: "namegame - turn a name into a Name Game verse",
	Long: `namegame sings "The Name Game" for any name.

  $ namegame verse Gary
  Gary!
  Gary, Gary, bo-bary
  Banana-fana fo-fary
  Fi-Fi mo-mary
  Gary!

Commands:
  verse       Print the verse for a name
  vowel       Show where the rhyme starts in a word
  init        Create .namegame/config.yaml
  config      Show current configuration
  version     Show version info

Configuration is read from .namegame/config.yaml, then .env, then
NAMEGAME_* environment variables, then command flags.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format: text or json")
}

// setup loads configuration and initializes logging for every command.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(".", logLevelFlag, logFormatFlag)
	if err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.Init(level, cfg.LogFormat, cmd.ErrOrStderr())
	logging.New("cmd").Debug("configuration loaded",
		"path", cfg.Path,
		"noVowel", cfg.NoVowel.String(),
		"style", cfg.Style)

	activeConfig = cfg
	return nil
}

// loadConfig reads the config under dir and applies the global flag overrides.
func loadConfig(dir, logLevel, logFormat string) (*config.Config, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, activeConfig, err)
		os.Exit(1)
	}
}

// printError reports err in the configured style, or auto when no
// configuration was loaded.
func printError(w io.Writer, cfg *config.Config, err error) {
	style := config.StyleAuto
	if cfg != nil {
		style = cfg.Style
	}
	output.NewStyled(w, style).Error(err)
}
