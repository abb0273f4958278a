package core

import "strings"

// Classify determines a token's Kind from its leading hyphens alone. It is
// total: every string, including the empty string, maps to exactly one Kind.
//
// Rule order matters. The bare separator "--" also matches the LongOption
// prefix test, so the builder checks for the separator with a literal
// equality comparison before ever calling Classify.
func Classify(token string) Kind {
	if strings.HasPrefix(token, "--") {
		return LongOption
	}

	if strings.HasPrefix(token, "-") && len(token) > 1 {
		return ShortOption
	}

	// Covers "", tokens without a leading hyphen, and the exact token "-".
	return Simple
}
