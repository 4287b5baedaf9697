package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Underline(true)
	appTitleStyle     = lipgloss.NewStyle().Bold(true)
	linkStyle         = lipgloss.NewStyle().Padding(0, 1)
	selectedLinkStyle = linkStyle.Bold(true).Underline(true)
	ruleStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	footerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Align(lipgloss.Center)
	snackbarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	cartBarStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	promptStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	shellStyle        = lipgloss.NewStyle().Padding(1, 2)
)
