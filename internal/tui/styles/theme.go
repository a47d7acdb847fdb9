package styles

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	BaseStyle = lipgloss.NewStyle()

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("63")).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Background(lipgloss.Color("235"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	// Collapsible regions keep the original pipeline's look: a blue
	// rounded border with left padding.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			PaddingLeft(1)

	TextStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)

	ButtonFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("205")).
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("63")).
				Bold(true).
				Padding(0, 1)

	PollingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))
)

// GetPhaseIcon returns a one-glyph marker for a widget readiness phase name.
func GetPhaseIcon(phase string) string {
	switch phase {
	case "ready":
		return "✓"
	case "polling":
		return "⟳"
	case "failed":
		return "✗"
	default:
		return "•"
	}
}
