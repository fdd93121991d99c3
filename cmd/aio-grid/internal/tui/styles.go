package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSection = lipgloss.NewStyle().Foreground(colorGray)
	styleStatus  = lipgloss.NewStyle().Foreground(colorDim)
	styleFocused = lipgloss.NewStyle().Foreground(colorWhite).Background(colorCyan)
)
