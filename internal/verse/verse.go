// Package verse turns a name into the five-line verse of the Name Game.
//
//	Gary!
//	Gary, Gary, bo-bary
//	Banana-fana fo-fary
//	Fi-Fi mo-mary
//	Gary!
//
// Names starting with an uppercase vowel keep their whole lowercased form as
// the stem. Every other name is cut at its first vowel, and a name starting
// with B, F or M drops that letter from the matching rhyme line.
package verse

import (
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/jywlabs/namegame/internal/vowel"
)

// Fixed text of the verse.
const (
	boLead  = "bo-"
	foLead  = "Banana-fana fo-"
	moLead  = "Fi-Fi mo-"
	callout = "!"
)

// LineCount is the number of lines in every verse.
const LineCount = 5

// Verse is a rendered verse together with the values it was built from.
type Verse struct {
	Name           string
	Classification Classification
	Stem           string
	Prefixes       Prefixes

	lines [LineCount]string
}

// Lines returns the five lines of the verse.
func (v *Verse) Lines() []string {
	out := make([]string, LineCount)
	copy(out, v.lines[:])
	return out
}

// String joins the lines with newlines, without a trailing newline.
func (v *Verse) String() string {
	return strings.Join(v.lines[:], "\n")
}

// Composer builds verses. It holds no mutable state and is safe for
// concurrent use.
type Composer struct {
	policy NoVowelPolicy
	logger *slog.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithNoVowelPolicy sets how names without a vowel are handled.
func WithNoVowelPolicy(p NoVowelPolicy) Option {
	return func(c *Composer) { c.policy = p }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Composer) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Composer with the default no-vowel policy and a discarding logger.
func New(opts ...Option) *Composer {
	c := &Composer{
		policy: DefaultNoVowelPolicy,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Policy returns the no-vowel policy in effect.
func (c *Composer) Policy() NoVowelPolicy { return c.policy }

// Stem returns the lowercased part of name used in the rhyme lines.
func (c *Composer) Stem(name string) (string, error) {
	class, err := Classify(name)
	if err != nil {
		return "", err
	}
	return c.stem(name, class)
}

func (c *Composer) stem(name string, class Classification) (string, error) {
	lower := strings.ToLower(name)
	if class.Category == VowelStart {
		return lower, nil
	}

	// The locator sees the name as typed; the index then cuts the lowercased form.
	idx := vowel.First(name)
	if idx == vowel.NotFound {
		return c.noVowelStem(name, lower)
	}
	if idx > len(lower) {
		idx = len(lower)
	}
	return lower[idx:], nil
}

func (c *Composer) noVowelStem(name, lower string) (string, error) {
	c.logger.Debug("no vowel found", "name", name, "policy", c.policy)

	switch c.policy {
	case NoVowelLast:
		_, size := utf8.DecodeLastRuneInString(lower)
		return lower[len(lower)-size:], nil
	case NoVowelReject:
		return "", &NameError{Name: name, Err: ErrNoVowel}
	default:
		return "", nil
	}
}

// Compose builds the verse for name.
func (c *Composer) Compose(name string) (*Verse, error) {
	class, err := Classify(name)
	if err != nil {
		return nil, err
	}

	stem, err := c.stem(name, class)
	if err != nil {
		return nil, err
	}

	p := class.Prefixes()
	c.logger.Debug("composed verse",
		"name", name,
		"category", class.Category.String(),
		"stem", stem)

	v := &Verse{
		Name:           name,
		Classification: class,
		Stem:           stem,
		Prefixes:       p,
	}
	v.lines = [LineCount]string{
		name + callout,
		name + ", " + name + ", " + boLead + p.B + stem,
		foLead + p.F + stem,
		moLead + p.M + stem,
		name + callout,
	}
	return v, nil
}

var defaultComposer = New()

// Compose builds the verse for name with the default policy.
func Compose(name string) (*Verse, error) {
	return defaultComposer.Compose(name)
}

// Name returns the verse text for name with the default policy.
func Name(name string) (string, error) {
	v, err := Compose(name)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}
