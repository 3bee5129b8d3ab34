package tui

import "github.com/charmbracelet/lipgloss"

var (
	blue   = lipgloss.Color("#3B82F6")
	pink   = lipgloss.Color("#EC4899")
	muted  = lipgloss.Color("#71717A")
	subtle = lipgloss.Color("#27272A")

	brandStyle = lipgloss.NewStyle().Bold(true).Italic(true).Foreground(lipgloss.Color("#FFFFFF"))
	tabStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(muted)
	activeTab  = tabStyle.Foreground(blue).Bold(true).Underline(true)

	titleStyle     = lipgloss.NewStyle().Bold(true).Italic(true).MarginBottom(1)
	highlightStyle = lipgloss.NewStyle().Bold(true).Italic(true).Foreground(blue)
	leadStyle      = lipgloss.NewStyle().Foreground(muted).Italic(true)
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(subtle).Padding(0, 1).MarginRight(1)
	statStyle      = lipgloss.NewStyle().Bold(true).Foreground(blue)
	feedStyle      = lipgloss.NewStyle().Foreground(pink)
	copiedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ADE80"))
	helpStyle      = lipgloss.NewStyle().Foreground(muted).MarginTop(1)
)
