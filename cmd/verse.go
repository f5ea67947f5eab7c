package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jywlabs/namegame/internal/config"
	"github.com/jywlabs/namegame/internal/logging"
	"github.com/jywlabs/namegame/internal/output"
	"github.com/jywlabs/namegame/internal/verse"
)

var (
	verseNoVowelFlag string
	verseStyleFlag   string
	verseJSONFlag    bool
)

var verseCmd = &cobra.Command{
	Use:   "verse [name]",
	Short: "Print the verse for a name",
	Long: `Print the Name Game verse for a name.

Names starting with an uppercase vowel (A, E, I, O, U) rhyme on the whole
name. Other names rhyme from their first vowel; "y" counts as a vowel
except as the first letter. Names starting with B, F or M drop that
letter from the matching bo-/fo-/mo- line.

Without a name argument, the name is read from standard input after a
prompt on standard error.

Examples:
  namegame verse Gary                 # Gary, Gary, bo-bary ...
  namegame verse Billy                # Billy, Billy, bo-illy ...
  namegame verse Grrm --no-vowel last # rhyme on the last letter
  namegame verse Earl --json          # machine-readable output`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := verseOptions{
			noVowel: verseNoVowelFlag,
			style:   verseStyleFlag,
			json:    verseJSONFlag,
		}
		return runVerse(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), activeConfig, opts, args)
	},
}

func init() {
	verseCmd.Flags().StringVar(&verseNoVowelFlag, "no-vowel", "", "Names without a vowel: empty, last, or reject (default from config)")
	verseCmd.Flags().StringVar(&verseStyleFlag, "style", "", "Output style: auto, plain, or color (default from config)")
	verseCmd.Flags().BoolVar(&verseJSONFlag, "json", false, "Print the verse as JSON")
	rootCmd.AddCommand(verseCmd)
}

// verseOptions holds flag values; empty strings defer to the config.
type verseOptions struct {
	noVowel string
	style   string
	json    bool
}

// verseJSON is the --json output shape.
type verseJSON struct {
	Name     string         `json:"name"`
	Category verse.Category `json:"category"`
	Stem     string         `json:"stem"`
	Lines    []string       `json:"lines"`
}

// runVerse writes the verse to out. The name prompt goes to prompt so that
// out carries only the verse.
func runVerse(in io.Reader, out, prompt io.Writer, cfg *config.Config, opts verseOptions, args []string) error {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	policy := cfg.NoVowel
	if opts.noVowel != "" {
		p, err := verse.ParseNoVowelPolicy(opts.noVowel)
		if err != nil {
			return fmt.Errorf("invalid --no-vowel: %w", err)
		}
		policy = p
	}

	style := cfg.Style
	if opts.style != "" {
		s, err := config.ParseStyle(opts.style)
		if err != nil {
			return fmt.Errorf("invalid --style: %w", err)
		}
		style = s
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		prompted, err := promptName(in, prompt)
		if err != nil {
			return err
		}
		name = prompted
	}

	composer := verse.New(
		verse.WithNoVowelPolicy(policy),
		verse.WithLogger(logging.New("verse")),
	)
	v, err := composer.Compose(name)
	if err != nil {
		return fmt.Errorf("cannot compose verse: %w", err)
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(verseJSON{
			Name:     v.Name,
			Category: v.Classification.Category,
			Stem:     v.Stem,
			Lines:    v.Lines(),
		})
	}

	output.NewStyled(out, style).Verse(v)
	return nil
}

// promptName asks for a name on w and reads one line from in.
func promptName(in io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Name: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read name: %w", err)
	}
	fmt.Fprintln(w)

	return strings.TrimSpace(line), nil
}
