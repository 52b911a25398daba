package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/boing/internal/boing"
	"github.com/olivier-w/boing/internal/input"
	"github.com/olivier-w/boing/internal/render"
	"github.com/olivier-w/boing/internal/toy"
	"github.com/olivier-w/boing/internal/util"
)

const (
	defaultFPS = 60

	// lines around the scene: header, status, meter, help and spacing
	chromeLines = 10
	minRows     = 6
	minCols     = 20
	defaultCols = 60
	defaultRows = 20

	instructions = "grab with space + move the arrows, let go to boing!"
)

// Options tune the terminal frontend.
type Options struct {
	FPS        int
	HoldWindow time.Duration
}

// Model is the Bubbletea model for the boing TUI.
type Model struct {
	toy      *toy.Toy
	latch    *input.KeyLatch
	ended    <-chan boing.InstanceID
	keys     keyMap
	help     help.Model
	meter    pullMeter
	interval time.Duration
	now      func() time.Time

	frame      toy.Frame
	last       time.Time
	width      int
	height     int
	cols       int
	rows       int
	worldWidth float64
	quitting   bool
}

// New creates a Model driving t. ended delivers finished sound instances;
// it may be nil.
func New(t *toy.Toy, ended <-chan boing.InstanceID, opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	return Model{
		toy:      t,
		latch:    input.NewKeyLatch(opts.HoldWindow),
		ended:    ended,
		keys:     defaultKeyMap(),
		help:     help.New(),
		meter:    newPullMeter(fps),
		interval: time.Second / time.Duration(fps),
		now:      time.Now,
		frame:    t.Snapshot(),
		cols:     defaultCols,
		rows:     defaultRows,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.interval), waitForEnded(m.ended), tea.SetWindowTitle("boing"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		case key.Matches(msg, m.keys.Grab):
			m.latch.ToggleTrigger()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			if d, ok := m.keys.direction(msg); ok {
				m.latch.Press(d, m.now())
			}
		}
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		var delta time.Duration
		if !m.last.IsZero() {
			delta = now.Sub(m.last)
		}
		m.last = now
		m.frame = m.toy.Tick(delta, m.latch.Poll(now))
		if m.frame.Dragging {
			m.meter.step(m.frame.Displacement)
		} else {
			m.meter.step(0)
		}
		return m, frameCmd(m.interval)

	case soundEndedMsg:
		m.toy.SoundEnded(boing.InstanceID(msg))
		return m, waitForEnded(m.ended)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.cols = max(width-4, minCols)
	m.rows = max(height-chromeLines, minRows)

	w := render.WorldWidth(m.cols, m.rows)
	if w != m.worldWidth {
		m.worldWidth = w
		m.toy.Resize(w)
		m.frame = m.toy.Snapshot()
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := counterStyle.Render(util.FormatBoings(m.frame.Count))
	if m.frame.ShowInstructions {
		status = instructionStyle.Render(instructions)
	}

	canvas := render.NewCanvas(m.cols, m.rows)
	scene := render.Scene{
		Anchor:     m.frame.Anchor,
		Knob:       m.frame.Knob,
		RestLength: m.frame.RestLength,
	}
	if m.frame.Dragging {
		target := m.frame.Target
		scene.Target = &target
	}
	scene.Draw(canvas)

	w := m.width
	if w < 30 {
		w = defaultCols
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + headerStyle.Render("boing") + "\n")
	b.WriteString("\n")
	b.WriteString("  " + status + "\n")
	b.WriteString("\n")
	for _, line := range strings.Split(canvas.Render(paintInk), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")
	b.WriteString("  " + statusStyle.Render(m.meter.view(w-4)) + "\n")
	b.WriteString("\n")
	b.WriteString("  " + helpStyle.Render(m.help.View(m.keys)) + "\n")
	return b.String()
}
