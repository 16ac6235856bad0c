package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): primary text
// - Accent (soft purple, configurable): ids, highlights
// - Muted (gray): secondary info, counts, hints
// - No colored success/error - unicode symbols only

// DefaultAccent is the accent color used when the config sets none.
const DefaultAccent = "#A78BFA"

var (
	// Accent style for record ids and highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(DefaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(DefaultAccent)).Bold(true)
)

var accentColor = DefaultAccent

// ConfigureTheme applies a custom accent color from config. Empty input
// keeps the default.
func ConfigureTheme(accent string) {
	if accent == "" {
		return
	}
	accentColor = accent
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true)
}

// AccentColor returns the active accent color.
func AccentColor() string {
	return accentColor
}
