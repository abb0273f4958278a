package core

import "strings"

// builder accumulates a Command during the scan. It is never exposed to
// callers; Build is the only way to obtain a finished Command.
type builder struct {
	cmd Command
}

func (b *builder) addOption(opt Option) {
	b.cmd.Options = append(b.cmd.Options, opt)
}

func (b *builder) addArgs(tokens []string) {
	b.cmd.Args = append(b.cmd.Args, tokens...)
}

// Build splits an argument list into a Command in a single left-to-right
// pass. The first token becomes the command name. Tokens after that are
// classified into Options until the first literal "--", after which every
// remaining token is copied verbatim into Args without classification.
//
// Build is total: every token sequence, including the empty one, produces a
// valid Command.
func Build(tokens []string) Command {
	b := &builder{}
	if len(tokens) == 0 {
		return b.cmd
	}

	b.cmd.Name = tokens[0]

	rest := tokens[1:]
	for i, token := range rest {
		// The separator is a literal match, checked before classification:
		// "--" would otherwise classify as a LongOption.
		if token == "--" {
			b.addArgs(rest[i+1:])
			break
		}

		switch Classify(token) {
		case LongOption:
			b.addOption(longOption(token))
		case ShortOption:
			// Bundles like "-abc" expand into one entry per character.
			// Repeated characters expand verbatim: "-aa" yields two "-a"
			// entries, since no validation layer exists to reject them.
			if len(token) > 2 {
				for _, c := range token[1:] {
					b.addOption(Option{Kind: ShortOption, Text: "-" + string(c)})
				}
			} else {
				b.addOption(Option{Kind: ShortOption, Text: token})
			}
		case Simple:
			b.addOption(Option{Kind: Simple, Text: token})
		}
	}

	return b.cmd
}

// longOption splits a long option at its first "=" into flag text and a
// parsed value list. Later "=" characters belong to the value substring.
func longOption(token string) Option {
	eq := strings.Index(token, "=")
	if eq < 0 {
		return Option{Kind: LongOption, Text: token}
	}

	return Option{
		Kind:   LongOption,
		Text:   token[:eq],
		Values: ParseValues(token[eq+1:]),
	}
}
