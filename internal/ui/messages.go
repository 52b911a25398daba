package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/boing/internal/boing"
)

type frameMsg time.Time
type soundEndedMsg boing.InstanceID

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// waitForEnded blocks until the engine reports a finished sound.
func waitForEnded(ended <-chan boing.InstanceID) tea.Cmd {
	if ended == nil {
		return nil
	}
	return func() tea.Msg {
		id, ok := <-ended
		if !ok {
			return nil
		}
		return soundEndedMsg(id)
	}
}
