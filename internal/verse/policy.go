package verse

import (
	"fmt"
	"strings"
)

// NoVowelPolicy decides the stem of a truncated name that has no vowel.
type NoVowelPolicy string

const (
	// NoVowelEmpty rhymes on an empty stem: "Grrm" gives "bo-b".
	NoVowelEmpty NoVowelPolicy = "empty"
	// NoVowelLast keeps only the last letter: "Grrm" gives "bo-bm".
	NoVowelLast NoVowelPolicy = "last"
	// NoVowelReject fails with ErrNoVowel.
	NoVowelReject NoVowelPolicy = "reject"
)

// DefaultNoVowelPolicy is used when no policy is configured.
const DefaultNoVowelPolicy = NoVowelEmpty

// NoVowelPolicies lists the accepted policy names in display order.
var NoVowelPolicies = []NoVowelPolicy{NoVowelEmpty, NoVowelLast, NoVowelReject}

// ParseNoVowelPolicy converts a config or flag value into a policy.
// Matching ignores case and surrounding space.
func ParseNoVowelPolicy(s string) (NoVowelPolicy, error) {
	p := NoVowelPolicy(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range NoVowelPolicies {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown no-vowel policy %q (want one of %s)", s, policyList())
}

func (p NoVowelPolicy) String() string { return string(p) }

func policyList() string {
	names := make([]string, len(NoVowelPolicies))
	for i, p := range NoVowelPolicies {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
