// Package render formats a parsed command for terminal display.
// This file handles the actual rendering of the parsed structure.

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/argsift/argsift/internal/core"
)

// Fprint writes a human-readable, styled rendering of the command to w.
// The command is treated as read-only input; Fprint never mutates it.
// The only failure mode is a write error from w, returned wrapped.
func Fprint(w io.Writer, cmd core.Command) error {
	s := DefaultStyles()

	var out strings.Builder

	fmt.Fprintf(&out, "%s: %s\n", s.Label.Render("Command"), s.ArgText.Render(cmd.Name))

	renderOptions(&out, s, cmd.Options)
	renderArgs(&out, s, cmd.Args)

	if _, err := io.WriteString(w, out.String()); err != nil {
		return fmt.Errorf("rendering command: %w", err)
	}

	return nil
}

func renderOptions(out *strings.Builder, s Styles, opts []core.Option) {
	fmt.Fprintf(out, "%s:\n", s.Header.Render("Options"))

	if len(opts) == 0 {
		fmt.Fprintf(out, "  %s\n", s.Notice.Render("No options provided (before --)."))
		return
	}

	for i, opt := range opts {
		fmt.Fprintf(out, "  %s. %s (%s: %s): %s: %s\n",
			s.Index.Render(strconv.Itoa(i+1)),
			s.OptionText.Render(opt.Text),
			s.Label.Render("Type"),
			kindStyle(s, opt.Kind).Render(opt.Kind.String()),
			s.Label.Render("Values"),
			renderValues(s, opt.Values),
		)
	}
}

func renderArgs(out *strings.Builder, s Styles, args []string) {
	fmt.Fprintf(out, "%s:\n", s.Header.Render("Arguments (-- after)"))

	if len(args) == 0 {
		fmt.Fprintf(out, "  %s\n", s.Notice.Render("No arguments provided after --."))
		return
	}

	for i, arg := range args {
		fmt.Fprintf(out, "  %s. %s\n",
			s.Index.Render(strconv.Itoa(i+1)),
			s.ArgText.Render(arg),
		)
	}
}

func renderValues(s Styles, values []string) string {
	if len(values) == 0 {
		return s.Notice.Render("None")
	}

	return "[" + s.Values.Render(strings.Join(values, ", ")) + "]"
}

func kindStyle(s Styles, kind core.Kind) lipgloss.Style {
	switch kind {
	case core.ShortOption:
		return s.ShortKind
	case core.LongOption:
		return s.LongKind
	default:
		return s.SimpleKind
	}
}
