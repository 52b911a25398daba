package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/boing/internal/input"
)

type keyMap struct {
	Grab  key.Binding
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Grab: key.NewBinding(
			key.WithKeys(" ", "z", "x"),
			key.WithHelp("space", "grab/let go"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Left, k.Right, k.Up, k.Down, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Grab},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

// direction maps a key to a pad direction.
func (k keyMap) direction(msg tea.KeyMsg) (input.Direction, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return input.Left, true
	case key.Matches(msg, k.Right):
		return input.Right, true
	case key.Matches(msg, k.Up):
		return input.Up, true
	case key.Matches(msg, k.Down):
		return input.Down, true
	}
	return 0, false
}
