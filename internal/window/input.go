package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/olivier-w/boing/internal/input"
)

// stickThreshold turns an analog stick into the digital four-way pad.
const stickThreshold = 0.5

// padState is one device's raw controls for a frame.
type padState struct {
	A                     bool
	Left, Right, Up, Down bool
	StickX, StickY        float64
}

func (p padState) buttons() input.Buttons {
	return input.Buttons{
		Trigger: p.A,
		Left:    p.Left || p.StickX <= -stickThreshold,
		Right:   p.Right || p.StickX >= stickThreshold,
		Up:      p.Up || p.StickY <= -stickThreshold,
		Down:    p.Down || p.StickY >= stickThreshold,
	}
}

// merge ORs every device so keyboard and gamepads can be mixed.
func merge(states []padState) input.Buttons {
	var b input.Buttons
	for _, s := range states {
		sb := s.buttons()
		b.Trigger = b.Trigger || sb.Trigger
		b.Left = b.Left || sb.Left
		b.Right = b.Right || sb.Right
		b.Up = b.Up || sb.Up
		b.Down = b.Down || sb.Down
	}
	return b
}

// deviceSource reads the keyboard and every standard-layout gamepad.
type deviceSource struct {
	pads   []ebiten.GamepadID
	states []padState
}

func anyKey(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func keyboardState() padState {
	return padState{
		A:     anyKey(ebiten.KeySpace, ebiten.KeyZ, ebiten.KeyX),
		Left:  anyKey(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyKey(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:    anyKey(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  anyKey(ebiten.KeyArrowDown, ebiten.KeyS),
	}
}

func gamepadState(id ebiten.GamepadID) padState {
	pressed := func(b ebiten.StandardGamepadButton) bool {
		return ebiten.IsStandardGamepadButtonPressed(id, b)
	}
	return padState{
		A:      pressed(ebiten.StandardGamepadButtonRightBottom),
		Left:   pressed(ebiten.StandardGamepadButtonLeftLeft),
		Right:  pressed(ebiten.StandardGamepadButtonLeftRight),
		Up:     pressed(ebiten.StandardGamepadButtonLeftTop),
		Down:   pressed(ebiten.StandardGamepadButtonLeftBottom),
		StickX: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
		StickY: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
	}
}

// Poll implements input.Source.
func (d *deviceSource) Poll(time.Time) input.Buttons {
	d.states = append(d.states[:0], keyboardState())
	d.pads = ebiten.AppendGamepadIDs(d.pads[:0])
	for _, id := range d.pads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			d.states = append(d.states, gamepadState(id))
		}
	}
	return merge(d.states)
}
