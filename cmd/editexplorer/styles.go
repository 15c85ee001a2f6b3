package main

import "github.com/charmbracelet/lipgloss"

var (
	offsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)
