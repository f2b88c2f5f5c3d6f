package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.AdaptiveColor{Light: "#111111", Dark: "#f2f2f2"}
	muted  = lipgloss.AdaptiveColor{Light: "#707070", Dark: "#8a8a8a"}

	titleStyle = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Margin(1, 0, 2, 0)

	menuItemStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Margin(0, 1).
		Foreground(muted)

	selectedMenuItemStyle = menuItemStyle.
		Foreground(lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"}).
		Background(accent).
		Bold(true)

	helpStyle = lipgloss.NewStyle().
		Foreground(muted).
		Margin(2, 0, 0, 0)

	formStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Margin(1, 0)

	labelStyle = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	yearStyle = lipgloss.NewStyle().
		Foreground(muted).
		Width(6)

	idStyle = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Width(4)

	progressStyle = lipgloss.NewStyle().
		Margin(1, 0)

	successStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#2f7d32", Dark: "#7bd88f"}).
		Bold(true)

	warningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#9a6a00", Dark: "#f1fa8c"}).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#ff5555"}).
		Bold(true)
)

// GetAdaptiveStyles returns styles that adapt to terminal width
func GetAdaptiveStyles(width, height int) (titleStyle, formStyle, helpStyle lipgloss.Style) {
	maxWidth := width - 4
	if maxWidth < 20 {
		maxWidth = 0
	}

	adaptiveTitleStyle := lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Margin(1, 0, 2, 0).
		Align(lipgloss.Center).
		Width(maxWidth)

	adaptiveFormStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Margin(1, 0).
		Width(maxWidth)

	adaptiveHelpStyle := lipgloss.NewStyle().
		Foreground(muted).
		Margin(2, 0, 0, 0).
		Width(maxWidth)

	return adaptiveTitleStyle, adaptiveFormStyle, adaptiveHelpStyle
}
