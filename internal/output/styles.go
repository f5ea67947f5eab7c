package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"
)

// Color palette
var (
	ColorError  = lipgloss.Color("#FF5F87") // Pink
	ColorInfo   = lipgloss.Color("#5FAFFF") // Blue
	ColorMuted  = lipgloss.Color("#888888") // Mid gray (readable)
	ColorAccent = lipgloss.Color("#AF87FF") // Purple
	ColorRhyme  = lipgloss.Color("#00D787") // Green
)

// styles are bound to one renderer so a Printer's color decision does not
// depend on what os.Stdout happens to be.
type styles struct {
	callout lipgloss.Style // "Gary!" lines
	lead    lipgloss.Style // fixed verse text
	stem    lipgloss.Style // the rhyming part
	muted   lipgloss.Style
	err     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)
	return styles{
		callout: r.NewStyle().Foreground(ColorAccent).Bold(true),
		lead:    r.NewStyle().Foreground(ColorInfo),
		stem:    r.NewStyle().Foreground(ColorRhyme).Bold(true),
		muted:   r.NewStyle().Foreground(ColorMuted),
		err:     r.NewStyle().Foreground(ColorError).Bold(true),
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(f.Fd())
}
