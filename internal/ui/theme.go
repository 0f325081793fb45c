package ui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var defaultPalette = palette{
	Text:    lipgloss.Color("#cdd6f4"),
	Muted:   lipgloss.Color("#a6adc8"),
	Success: lipgloss.Color("#94e2d5"),
	Warning: lipgloss.Color("#f9e2af"),
	Error:   lipgloss.Color("#f38ba8"),
}

// Styles holds one lipgloss style per message class.
type Styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Plain   lipgloss.Style
}

func defaultStyles() Styles {
	p := defaultPalette
	return Styles{
		Success: lipgloss.NewStyle().Foreground(p.Success),
		Warning: lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Plain:   lipgloss.NewStyle().Foreground(p.Text),
	}
}
