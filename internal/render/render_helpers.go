package render

import "strings"

// StripANSI removes ANSI escape codes from a string, leaving the plain
// text. Useful for comparing rendered output independent of the terminal's
// color profile.
func StripANSI(s string) string {
	var result strings.Builder

	inEscape := false

	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}

		if inEscape {
			if r == 'm' {
				inEscape = false
			}

			continue
		}

		result.WriteRune(r)
	}

	return result.String()
}
