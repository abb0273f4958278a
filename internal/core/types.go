// Package core implements the argument classification and splitting logic.
// The root argsift package re-exports its types and wraps its entry points.
package core

// Kind classifies a single command-line token by its leading-hyphen shape.
type Kind int

// Exported constants.
const (
	// Simple is a token with no option syntax: no leading hyphen, the exact
	// token "-", or anything appearing after the "--" separator.
	Simple Kind = iota
	// ShortOption is a token starting with exactly one hyphen and longer
	// than one character, e.g. "-v" or the bundle "-abc".
	ShortOption
	// LongOption is a token starting with two hyphens, optionally carrying
	// an "=value" suffix, e.g. "--verbose" or "--data=a,b".
	LongOption
)

// String returns the display name for the kind.
func (k Kind) String() string {
	switch k {
	case ShortOption:
		return "Short Option"
	case LongOption:
		return "Long Option"
	default:
		return "Simple"
	}
}

// Option is one classified token from before the "--" separator.
type Option struct {
	// Kind is the token's classification.
	Kind Kind

	// Text is the canonical token text: the full token for Simple and
	// un-bundled ShortOption entries, the flag name before "=" for a
	// LongOption with a value, and "-" plus one character for each entry
	// expanded from a bundle.
	Text string

	// Values holds the comma-separated values of a LongOption that
	// contained "=". Empty for every other kind.
	Values []string
}

// Command is the structured result of splitting one argument list.
// It is a read-only snapshot; Build is the only constructor.
type Command struct {
	// Name is the first raw token, conventionally the program path.
	// Empty when the raw token list itself was empty.
	Name string

	// Options holds every classified pre-separator token in scan order.
	// Bundled short options expand in place into consecutive entries.
	Options []Option

	// Args holds the tokens after the first literal "--", verbatim.
	Args []string
}
