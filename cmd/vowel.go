package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jywlabs/namegame/internal/output"
	"github.com/jywlabs/namegame/internal/vowel"
)

var vowelCmd = &cobra.Command{
	Use:   "vowel <word>",
	Short: "Show where the rhyme starts in a word",
	Long: `Print the index of the first vowel in a lowercase word, or -1.

a, e, i, o and u count anywhere; y counts everywhere except the first
letter. The word is used as given, so uppercase letters never match.

Examples:
  namegame vowel hat     # 1
  namegame vowel sky     # 2
  namegame vowel year    # 1
  namegame vowel grrm    # -1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style := ""
		if activeConfig != nil {
			style = activeConfig.Style
		}
		runVowel(cmd.OutOrStdout(), style, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vowelCmd)
}

func runVowel(out io.Writer, style, word string) {
	output.NewStyled(out, style).VowelIndex(word, vowel.First(word))
}
