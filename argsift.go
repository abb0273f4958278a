// Package argsift partitions a raw command-line argument list into a
// program name, a list of classified options, and a list of positional
// arguments following the "--" separator.
//
// It supports simple arguments (myfile.txt), short options (-v), bundled
// short options (-abc, parsed as -a, -b, -c), long options (--verbose), and
// long options with comma-separated values (--data=v1,v2). Everything is
// text: there is no schema of allowed flags, no type coercion, and no help
// generation. Tools that need those should reach for a full command
// framework instead.
//
// Tokens after the first literal "--" are never classified; they are
// collected verbatim into Command.Args. Simple arguments before "--" land
// in Command.Options alongside the flags, in original order.
package argsift

import (
	"io"

	"github.com/argsift/argsift/internal/core"
	"github.com/argsift/argsift/internal/render"
)

// --- Re-exported types from core ---

// Kind classifies a single command-line token by its leading-hyphen shape.
type Kind = core.Kind

// Option is one classified token from before the "--" separator.
type Option = core.Option

// Command is the structured result of splitting one argument list.
type Command = core.Command

// Re-export Kind constants
const (
	Simple      = core.Simple
	ShortOption = core.ShortOption
	LongOption  = core.LongOption
)

// --- Public API ---

// Get reads the process argument list once and returns its classified
// split. It never fails: any argument list, including an empty one,
// produces a valid Command.
func Get() Command {
	return core.FromEnv(core.NewOsEnv())
}

// Parse classifies and splits the given tokens. The first token is treated
// as the program name. This is the injectable-args twin of Get, useful for
// testing.
func Parse(tokens []string) Command {
	return core.Build(tokens)
}

// Classify reports the Kind a single token would be assigned. It depends
// only on the token's content; the "--" separator handling in Parse happens
// before classification and is not visible here.
func Classify(token string) Kind {
	return core.Classify(token)
}

// CmdString returns the raw process argument list joined by single spaces,
// useful for logging the exact invocation. It performs no classification.
func CmdString() string {
	return core.CmdString(core.NewOsEnv())
}

// Fprint writes a human-readable, styled rendering of the command to w:
// the program name, a numbered list of options with kind and values, and a
// numbered list of post-separator arguments, with explicit notices for
// empty sections.
func Fprint(w io.Writer, cmd Command) error {
	return render.Fprint(w, cmd)
}
