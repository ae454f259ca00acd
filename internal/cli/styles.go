package cli

import "github.com/charmbracelet/lipgloss"

var (
	dayHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	hashStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	noteStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)
