// Package render formats a parsed command for terminal display.
// This file defines lipgloss styles for consistent terminal output.

package render

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles used for command rendering.
type Styles struct {
	// Label is the style for field labels like "Command", "Type", "Values" (cyan).
	Label lipgloss.Style

	// Header is the style for section headers like "Options:" (bold green).
	Header lipgloss.Style

	// Index is the style for entry numbers (bold).
	Index lipgloss.Style

	// OptionText is the style for the option token text (magenta).
	OptionText lipgloss.Style

	// ArgText is the style for the command name and post-separator arguments (blue).
	ArgText lipgloss.Style

	// Values is the style for non-empty value lists (green).
	Values lipgloss.Style

	// Notice is the style for empty-section notices and "None" values (red).
	Notice lipgloss.Style

	// SimpleKind, ShortKind, and LongKind color a kind name by variant.
	SimpleKind lipgloss.Style
	ShortKind  lipgloss.Style
	LongKind   lipgloss.Style
}

// DefaultStyles returns the standard styles for command output.
func DefaultStyles() Styles {
	return Styles{
		Label:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")), // Cyan
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")), // Green
		Index:      lipgloss.NewStyle().Bold(true),
		OptionText: lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // Magenta
		ArgText:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // Blue
		Values:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // Green
		Notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // Red
		SimpleKind: lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // Purple
		ShortKind:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // Yellow
		LongKind:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // Cyan
	}
}
