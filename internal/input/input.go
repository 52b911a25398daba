package input

import "time"

// Buttons is one poll of a digital trigger and four-way pad.
type Buttons struct {
	Trigger bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
}

// Source is polled once per frame for the current button state.
type Source interface {
	Poll(now time.Time) Buttons
}

// Intent is the per-frame drag direction and trigger state.
// DX and DY are -1, 0 or +1; diagonals are not normalized.
type Intent struct {
	DX, DY      float64
	TriggerDown bool
}

// Edge reports trigger transitions since the previous sample.
type Edge struct {
	Pressed  bool
	Released bool
}

// Sampler turns button polls into an Intent and trigger edges.
type Sampler struct {
	wasDown bool
}

// Sample converts b into an Intent and reports whether the trigger changed
// since the previous call.
func (s *Sampler) Sample(b Buttons) (Intent, Edge) {
	in := Intent{TriggerDown: b.Trigger}
	if b.Left {
		in.DX--
	}
	if b.Right {
		in.DX++
	}
	if b.Up {
		in.DY--
	}
	if b.Down {
		in.DY++
	}

	edge := Edge{
		Pressed:  b.Trigger && !s.wasDown,
		Released: !b.Trigger && s.wasDown,
	}
	s.wasDown = b.Trigger
	return in, edge
}
