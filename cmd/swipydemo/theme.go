package main

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(highlight).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(special)

	rowStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	rowNumberStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Width(4)

	indicatorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FFFFFF"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(subtle).
			Padding(0, 1).
			MarginRight(1)

	buttonActiveStyle = buttonStyle.
				Background(highlight).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Faint(true)
)
