package core

import "strings"

// ParseValues splits a long option's value string on commas, trims
// whitespace from each piece, and drops pieces that are empty after
// trimming. Order of the surviving pieces is preserved. There is no escaping
// or quoting support; "" and ",," both yield no values.
func ParseValues(raw string) []string {
	var values []string

	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		values = append(values, piece)
	}

	return values
}
