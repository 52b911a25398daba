// Package toy wires input, spring physics and boing audio into one frame loop.
package toy

import (
	"time"

	"github.com/olivier-w/boing/internal/boing"
	"github.com/olivier-w/boing/internal/input"
	"github.com/olivier-w/boing/internal/spring"
)

// Frame is what a renderer needs after a tick.
type Frame struct {
	Anchor       spring.Point
	Knob         spring.Point
	Target       spring.Point
	RestLength   float64
	Dragging     bool
	Displacement float64

	Count            int
	ShowInstructions bool

	// Boing is set on the tick a qualifying release happened.
	Boing *boing.Boing
	// FadedOut counts sounds silenced by a re-grab on this tick.
	FadedOut int
}

// Toy owns the whole simulation. Hosts call Tick once per rendered frame from
// a single goroutine.
type Toy struct {
	sampler  input.Sampler
	sim      *spring.Simulator
	detector boing.Detector
	mapper   *boing.Mapper
	intent   input.Intent
}

// New returns a toy at rest playing through e.
func New(cfg spring.RestConfig, e boing.Engine) *Toy {
	return &Toy{
		sim:      spring.NewSimulator(cfg),
		detector: boing.NewDetector(),
		mapper:   boing.NewMapper(e),
	}
}

// Tick samples b, handles trigger edges and advances physics by delta.
// delta is clamped to spring.MaxFrameMs.
func (t *Toy) Tick(delta time.Duration, b input.Buttons) Frame {
	intent, edge := t.sampler.Sample(b)
	t.intent = intent

	var f Frame
	if edge.Pressed {
		if t.detector.Press(t.sim.Speed()) {
			f.FadedOut = t.mapper.FadeOutAll()
		}
		t.sim.SetDragging(true)
	}
	if edge.Released {
		wasDragging := t.sim.Dragging()
		t.sim.SetDragging(false)
		if force, ok := t.detector.Release(wasDragging, t.sim.Displacement()); ok {
			bg := t.mapper.Trigger(force)
			f.Boing = &bg
		}
	}

	ms := spring.ClampDelta(float64(delta) / float64(time.Millisecond))
	spring.Advance(t.sim, ms, intent.DX, intent.DY)

	t.fill(&f)
	return f
}

// Snapshot returns the current frame without advancing.
func (t *Toy) Snapshot() Frame {
	var f Frame
	t.fill(&f)
	return f
}

func (t *Toy) fill(f *Frame) {
	cfg := t.sim.Config()
	f.Anchor = cfg.Anchor
	f.Knob = t.sim.Position()
	f.Target = t.sim.Target(t.intent.DX, t.intent.DY)
	f.RestLength = cfg.RestLength
	f.Dragging = t.sim.Dragging()
	f.Displacement = t.sim.Displacement()
	f.Count = t.mapper.Count()
	f.ShowInstructions = !t.mapper.Onboarded()
}

// Resize adapts the rest length to a canvas width and snaps the knob to rest.
func (t *Toy) Resize(width float64) {
	t.sim.Resize(width)
}

// SoundEnded forwards a playback completion from the audio engine.
func (t *Toy) SoundEnded(id boing.InstanceID) {
	t.mapper.Ended(id)
}

// ActiveSounds returns the number of sounds still tracked.
func (t *Toy) ActiveSounds() int { return t.mapper.Active() }

// State returns the knob's polar state.
func (t *Toy) State() spring.KnobState { return t.sim.State() }
