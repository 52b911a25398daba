package input

import "time"

// DefaultHoldWindow covers the initial delay of typical terminal key repeat.
const DefaultHoldWindow = 550 * time.Millisecond

// Direction is one arm of the four-way pad.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// KeyLatch is a Source for terminals, which report key presses and
// auto-repeats but never releases. A direction stays held while presses keep
// arriving within the hold window; the trigger toggles on each press.
type KeyLatch struct {
	hold    time.Duration
	trigger bool
	until   [4]time.Time
}

// NewKeyLatch returns a latch with the given hold window. A non-positive
// window falls back to DefaultHoldWindow.
func NewKeyLatch(hold time.Duration) *KeyLatch {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyLatch{hold: hold}
}

// Press records a press or repeat of d. The opposite direction is dropped so
// reversing does not cancel out until the old latch expires.
func (k *KeyLatch) Press(d Direction, now time.Time) {
	if d < Left || d > Down {
		return
	}
	k.until[d.opposite()] = time.Time{}
	k.until[d] = now.Add(k.hold)
}

// ToggleTrigger flips the trigger and reports the new state.
func (k *KeyLatch) ToggleTrigger() bool {
	k.trigger = !k.trigger
	return k.trigger
}

// Reset drops the trigger and every latched direction.
func (k *KeyLatch) Reset() {
	*k = KeyLatch{hold: k.hold}
}

// Poll implements Source.
func (k *KeyLatch) Poll(now time.Time) Buttons {
	held := func(d Direction) bool { return now.Before(k.until[d]) }
	return Buttons{
		Trigger: k.trigger,
		Left:    held(Left),
		Right:   held(Right),
		Up:      held(Up),
		Down:    held(Down),
	}
}
