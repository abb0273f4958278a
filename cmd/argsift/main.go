// Package main provides the argsift demo CLI: it classifies its own
// invocation and prints the structured result.
//
// Example:
//
//	argsift -iv file.txt --data=apple,banana --verbose -- pos1 --pos-flag
package main

import (
	"fmt"
	"os"

	"github.com/argsift/argsift"
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	cmd := argsift.Get()

	if err := argsift.Fprint(os.Stdout, cmd); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	return 0
}
