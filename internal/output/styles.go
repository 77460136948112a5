package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: module names, paths, groups.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen marks created files and added lines.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow marks modified entries.
	ColorYellow = lipgloss.Color("220")

	// ColorRed marks removed entries.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Styles groups the styles used by tree and diff rendering.
type Styles struct {
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Noun    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// GetStyles returns the default styles.
func GetStyles() *Styles {
	return &Styles{
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(ColorDimGray),
		Noun:    StyleNoun,
		Success: lipgloss.NewStyle().Foreground(ColorGreen),
		Warning: lipgloss.NewStyle().Foreground(ColorYellow),
		Error:   lipgloss.NewStyle().Foreground(ColorRed),
	}
}

// Resource kinds shown next to generated files.
const (
	KindSource   = "source"
	KindResource = "resource"
	KindGroup    = "group"
)

// KindStyle returns the style for a generated entry kind.
func KindStyle(kind string) lipgloss.Style {
	switch kind {
	case KindSource:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case KindResource:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case KindGroup:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatField renders an aligned "label: value" line with a styled value.
// An empty value is rendered as an empty field rather than omitted.
func FormatField(label, value string, width int) string {
	padded := label + ":"
	for len(padded) < width {
		padded += " "
	}
	return StyleDim.Render(padded) + " " + StyleNoun.Render(value)
}
