package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	summaryStyle = lipgloss.NewStyle().MarginBottom(1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1)
)
