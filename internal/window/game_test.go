package window

import (
	"testing"
	"time"

	"github.com/olivier-w/boing/internal/boing"
	"github.com/olivier-w/boing/internal/input"
	"github.com/olivier-w/boing/internal/spring"
	"github.com/olivier-w/boing/internal/toy"
)

type stubEngine struct {
	next boing.InstanceID
}

func (e *stubEngine) Play() (boing.InstanceID, error) {
	e.next++
	return e.next, nil
}

func (e *stubEngine) SetRate(boing.InstanceID, float64) error                      { return nil }
func (e *stubEngine) SetVolume(boing.InstanceID, float64) error                    { return nil }
func (e *stubEngine) Volume(boing.InstanceID) float64                              { return 1 }
func (e *stubEngine) Fade(boing.InstanceID, float64, float64, time.Duration) error { return nil }

type scriptedSource struct {
	b input.Buttons
}

func (s *scriptedSource) Poll(time.Time) input.Buttons { return s.b }

func newTestGame(ended chan boing.InstanceID) (*Game, *scriptedSource, *time.Time) {
	ty := toy.New(spring.DefaultRestConfig(), &stubEngine{})
	g := NewGame(ty, ended)
	src := &scriptedSource{}
	g.src = src
	now := time.Unix(500, 0)
	g.now = func() time.Time { return now }
	return g, src, &now
}

func TestStepPullAndRelease(t *testing.T) {
	g, src, now := newTestGame(nil)

	src.b = input.Buttons{Trigger: true, Right: true}
	for iter := 0; iter < 30; iter++ {
		*now = now.Add(16 * time.Millisecond)
		g.step()
	}
	if !g.frame.Dragging {
		t.Fatal("expected knob held")
	}

	src.b = input.Buttons{}
	*now = now.Add(16 * time.Millisecond)
	g.step()
	if g.frame.Count != 1 || g.frame.ShowInstructions {
		t.Fatalf("expected first boing, got count %d instructions %v", g.frame.Count, g.frame.ShowInstructions)
	}
}

func TestDrainEndedDoesNotBlock(t *testing.T) {
	ty := toy.New(spring.DefaultRestConfig(), &stubEngine{})
	ended := make(chan boing.InstanceID, 4)
	ended <- 1
	ended <- 2

	if n := drainEnded(ended, ty); n != 2 {
		t.Fatalf("expected 2 drained, got %d", n)
	}
	if n := drainEnded(ended, ty); n != 0 {
		t.Fatalf("expected empty drain, got %d", n)
	}
	if n := drainEnded(nil, ty); n != 0 {
		t.Fatalf("expected nil channel to drain nothing, got %d", n)
	}
	close(ended)
	if n := drainEnded(ended, ty); n != 0 {
		t.Fatalf("expected closed channel to drain nothing, got %d", n)
	}
}

func TestLayoutResizesToy(t *testing.T) {
	g, _, _ := newTestGame(nil)

	w, h := g.Layout(500, 800)
	if w != 426 || h != 400 {
		t.Fatalf("expected 426x400, got %dx%d", w, h)
	}
	want := spring.RestLengthForWidth(426, 17)
	if g.frame.RestLength != want {
		t.Fatalf("expected rest length %f, got %f", want, g.frame.RestLength)
	}

	if w, _ := g.Layout(2000, 800); w != 600 {
		t.Fatalf("expected width capped at 600, got %d", w)
	}
	if w, _ := g.Layout(10, 800); w != 100 {
		t.Fatalf("expected minimum width 100, got %d", w)
	}
}

func TestMergeDevices(t *testing.T) {
	b := merge([]padState{
		{Left: true},
		{A: true, StickY: 0.8},
		{StickX: 0.2},
	})
	want := input.Buttons{Trigger: true, Left: true, Down: true}
	if b != want {
		t.Fatalf("expected %+v, got %+v", want, b)
	}
}

func TestStickThreshold(t *testing.T) {
	tests := []struct {
		x, y float64
		want input.Buttons
	}{
		{0, 0, input.Buttons{}},
		{-0.5, 0, input.Buttons{Left: true}},
		{0.49, -0.7, input.Buttons{Up: true}},
		{1, 1, input.Buttons{Right: true, Down: true}},
	}
	for _, tt := range tests {
		got := padState{StickX: tt.x, StickY: tt.y}.buttons()
		if got != tt.want {
			t.Fatalf("stick (%v, %v): expected %+v, got %+v", tt.x, tt.y, tt.want, got)
		}
	}
}
