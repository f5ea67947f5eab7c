package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jywlabs/namegame/internal/verse"
)

// Printer handles formatted output for the CLI.
type Printer struct {
	w      io.Writer
	styled bool
	st     styles
}

// New creates a plain Printer that writes to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewStyled creates a Printer for the given style: "plain", "color", or
// "auto" (color only when w is a terminal).
func NewStyled(w io.Writer, style string) *Printer {
	p := New(w)
	switch style {
	case "color":
		p.styled = true
	case "auto":
		p.styled = IsTerminal(w)
	}
	if p.styled {
		p.st = newStyles(w)
	}
	return p
}

// Styled reports whether the printer emits ANSI styling.
func (p *Printer) Styled() bool { return p.styled }

// Verse prints the five verse lines.
// Plain format is exactly v.String() followed by a newline.
func (p *Printer) Verse(v *verse.Verse) {
	if !p.styled {
		fmt.Fprintln(p.w, v.String())
		return
	}

	lines := v.Lines()
	for i, line := range lines {
		if i == 0 || i == len(lines)-1 {
			fmt.Fprintln(p.w, p.st.callout.Render(line))
			continue
		}
		lead := strings.TrimSuffix(line, v.Stem)
		stem := line[len(lead):]
		fmt.Fprintln(p.w, p.st.lead.Render(lead)+p.st.stem.Render(stem))
	}
}

// VowelIndex prints the first-vowel index of word.
// Format: "N", or in styled mode "word  N" with the vowel highlighted.
func (p *Printer) VowelIndex(word string, idx int) {
	if !p.styled {
		fmt.Fprintf(p.w, "%d\n", idx)
		return
	}

	marked := p.st.muted.Render(word)
	if idx >= 0 && idx < len(word) {
		marked = p.st.muted.Render(word[:idx]) +
			p.st.stem.Render(word[idx:idx+1]) +
			p.st.muted.Render(word[idx+1:])
	}
	fmt.Fprintf(p.w, "%s  %d\n", marked, idx)
}

// Error prints an error message.
// Format: "error: <msg>"
func (p *Printer) Error(err error) {
	msg := "error: " + err.Error()
	if p.styled {
		msg = p.st.err.Render(msg)
	}
	fmt.Fprintln(p.w, msg)
}
