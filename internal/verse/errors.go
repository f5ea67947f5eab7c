package verse

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when the name has no characters to classify.
	ErrEmptyName = errors.New("name is empty")

	// ErrNoVowel is returned under NoVowelReject when a truncated name has no vowel.
	ErrNoVowel = errors.New("name has no vowel to rhyme on")
)

// NameError records the name that could not be turned into a verse.
type NameError struct {
	Name string
	Err  error
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name %q: %v", e.Name, e.Err)
}

func (e *NameError) Unwrap() error { return e.Err }
