package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/boing/internal/render"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	instructionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#C23616", Dark: "#FF6B6B"})

	counterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	inkStyles = map[render.Ink]lipgloss.Style{
		render.InkWall: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#555555"}),
		render.InkCoil: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#444444", Dark: "#CCCCCC"}),
		render.InkGuide: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#666666"}),
		render.InkKnob: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#C23616", Dark: "#FF6B6B"}),
	}
)

func paintInk(ink render.Ink, s string) string {
	st, ok := inkStyles[ink]
	if !ok {
		return s
	}
	return st.Render(s)
}
