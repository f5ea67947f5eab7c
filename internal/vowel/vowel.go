// Package vowel locates the first vowel of a word under the name-game rules:
// a, e, i, o and u count anywhere, y counts everywhere except the first
// position.
package vowel

import "strings"

// NotFound is returned by First when the word has no qualifying vowel.
const NotFound = -1

// vowels are the letters that count at every position.
var vowels = []string{"a", "e", "i", "o", "u"}

// First returns the index of the first vowel in s, or NotFound.
//
// Examples:
//
//	First("hat")  == 1
//	First("grrm") == -1
//	First("sky")  == 2
//	First("year") == 1
//
// s is expected to hold lowercase letters only. That is not checked; any
// other byte simply never counts as a vowel.
func First(s string) int {
	result := NotFound
	for _, v := range vowels {
		result = earliest(result, strings.Index(s, v))
	}

	if len(s) > 1 {
		if y := strings.Index(s[1:], "y"); y != NotFound {
			result = earliest(result, y+1)
		}
	}

	return result
}

// IsVowelAt reports whether the byte at position i of s counts as a vowel.
func IsVowelAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	switch s[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	case 'y':
		return i > 0
	}
	return false
}

// earliest returns the smaller of two indexes, ignoring NotFound.
func earliest(cur, idx int) int {
	if idx == NotFound {
		return cur
	}
	if cur == NotFound || idx < cur {
		return idx
	}
	return cur
}
