package tui

import "github.com/charmbracelet/lipgloss"

// fullPreviewMinWidth is the terminal width below which the preview drops
// to compact size.
const fullPreviewMinWidth = 120

const formWidth = 40

var (
	mutedColor  = lipgloss.Color("245")
	accentColor = lipgloss.Color("212")
	errorColor  = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	formStyle = lipgloss.NewStyle().
			Width(formWidth).
			PaddingRight(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
