package argsift_test

import (
	"os"
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/argsift/argsift"
)

func TestParseClassifiesAndSplits(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cmd := argsift.Parse([]string{
		"prog", "-iv", "file.txt", "--data=apple, banana", "--verbose",
		"--", "pos1", "--pos-flag",
	})

	g.Expect(cmd.Name).To(Equal("prog"))
	g.Expect(cmd.Options).To(Equal([]argsift.Option{
		{Kind: argsift.ShortOption, Text: "-i"},
		{Kind: argsift.ShortOption, Text: "-v"},
		{Kind: argsift.Simple, Text: "file.txt"},
		{Kind: argsift.LongOption, Text: "--data", Values: []string{"apple", "banana"}},
		{Kind: argsift.LongOption, Text: "--verbose"},
	}))
	g.Expect(cmd.Args).To(Equal([]string{"pos1", "--pos-flag"}))
}

func TestParseEmptyTokenList(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cmd := argsift.Parse(nil)

	g.Expect(cmd.Name).To(Equal(""))
	g.Expect(cmd.Options).To(BeEmpty())
	g.Expect(cmd.Args).To(BeEmpty())
}

func TestClassify(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(argsift.Classify("--verbose")).To(Equal(argsift.LongOption))
	g.Expect(argsift.Classify("-v")).To(Equal(argsift.ShortOption))
	g.Expect(argsift.Classify("-")).To(Equal(argsift.Simple))
	g.Expect(argsift.Classify("file.txt")).To(Equal(argsift.Simple))
}

func TestGetUsesProcessArgs(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	// The test binary's own invocation is the live argument list.
	cmd := argsift.Get()

	g.Expect(cmd.Name).To(Equal(os.Args[0]))
}

func TestCmdStringJoinsProcessArgs(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(argsift.CmdString()).To(Equal(strings.Join(os.Args, " ")))
}

func TestFprintRendersParsedCommand(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var buf strings.Builder
	cmd := argsift.Parse([]string{"prog", "--data=a,b", "--", "x"})

	g.Expect(argsift.Fprint(&buf, cmd)).To(Succeed())

	out := buf.String()
	g.Expect(out).To(ContainSubstring("prog"))
	g.Expect(out).To(ContainSubstring("--data"))
	g.Expect(out).To(ContainSubstring("Arguments (-- after)"))
}
