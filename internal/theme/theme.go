package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds the semantic color palette for the entire TUI.
type Theme struct {
	Base    lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Korean market convention: rising prices render red, falling blue.
	Up   lipgloss.Color
	Down lipgloss.Color
}

// Default theme.
var Default = Theme{
	Base:    lipgloss.Color("#201F26"),
	Surface: lipgloss.Color("#2D2C35"),
	Border:  lipgloss.Color("#4D4C57"),
	Muted:   lipgloss.Color("#858392"),
	Text:    lipgloss.Color("#DFDBDD"),
	Subtext: lipgloss.Color("#BFBCC8"),
	Primary: lipgloss.Color("#4F7CFF"),
	Accent:  lipgloss.Color("#FF60FF"),
	Success: lipgloss.Color("#00FFB2"),
	Warning: lipgloss.Color("#FFD300"),
	Error:   lipgloss.Color("#E94090"),
	Info:    lipgloss.Color("#00CED1"),
	Up:      lipgloss.Color("#FF5B5B"),
	Down:    lipgloss.Color("#5B8CFF"),
}
