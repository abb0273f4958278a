package main

import (
	"os"
	"strings"
	"testing"
)

func TestRunMainPrintsOwnInvocation(t *testing.T) {
	// Capture stdout through a pipe; runMain writes the rendering there.
	orig := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe error: %v", err)
	}

	os.Stdout = w

	code := runMain()

	os.Stdout = orig

	if err := w.Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	out := make([]byte, 64*1024)
	n, _ := r.Read(out)
	output := string(out[:n])

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	// Colon and styling placement vary with the color profile; the labels
	// themselves are always present.
	if !strings.Contains(output, "Command") {
		t.Errorf("expected command header in output, got:\n%s", output)
	}

	if !strings.Contains(output, "Options") {
		t.Errorf("expected options section in output, got:\n%s", output)
	}
}
