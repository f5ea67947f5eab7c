package verse

import "fmt"

// Category is the three-way classification of a name by its first character.
type Category int

const (
	// Regular names are truncated to their first vowel and keep every rhyme prefix.
	Regular Category = iota
	// VowelStart names begin with an uppercase vowel and are not truncated.
	VowelStart
	// BFMStart names begin with B, F or M and lose the matching rhyme prefix.
	BFMStart
)

func (c Category) String() string {
	switch c {
	case VowelStart:
		return "vowel-start"
	case BFMStart:
		return "bfm-start"
	case Regular:
		return "regular"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// MarshalText lets categories appear by name in JSON output.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Classification is a Category plus, for BFMStart, the letter that matched.
type Classification struct {
	Category Category
	Letter   byte
}

// Prefixes holds the rhyme prefix for the bo-, fo- and mo- lines.
// A suppressed prefix is empty.
type Prefixes struct {
	B string
	F string
	M string
}

// Prefixes returns the active rhyme prefixes for the classification.
func (c Classification) Prefixes() Prefixes {
	p := Prefixes{B: "b", F: "f", M: "m"}
	if c.Category != BFMStart {
		return p
	}
	switch c.Letter {
	case 'B':
		p.B = ""
	case 'F':
		p.F = ""
	case 'M':
		p.M = ""
	}
	return p
}

// Classify inspects the first byte of name. The comparison is case
// sensitive: "Evan" is VowelStart, "evan" is Regular.
func Classify(name string) (Classification, error) {
	if name == "" {
		return Classification{}, &NameError{Name: name, Err: ErrEmptyName}
	}

	switch first := name[0]; first {
	case 'A', 'E', 'I', 'O', 'U':
		return Classification{Category: VowelStart}, nil
	case 'B', 'F', 'M':
		return Classification{Category: BFMStart, Letter: first}, nil
	default:
		return Classification{Category: Regular}, nil
	}
}
