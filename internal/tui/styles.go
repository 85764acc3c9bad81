package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF5F87")).
		Padding(1, 2)
)

// row renders one list line, highlighted when selected.
func row(selected bool, text string) string {
	if selected {
		return selectedStyle.Render(cursor(true) + text)
	}
	return cursor(false) + text
}
