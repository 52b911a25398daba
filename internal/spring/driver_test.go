package spring

import (
	"math"
	"testing"
)

func TestSubstepsSplitsIntoBoundedEqualSteps(t *testing.T) {
	tests := []struct {
		delta float64
		n     int
		step  float64
	}{
		{0, 0, 0},
		{-5, 0, 0},
		{8, 1, 8},
		{16, 1, 16},
		{16.5, 2, 8.25},
		{50, 4, 12.5},
	}
	for _, tt := range tests {
		n, step := Substeps(tt.delta)
		if n != tt.n || step != tt.step {
			t.Fatalf("Substeps(%v): expected (%d, %v), got (%d, %v)", tt.delta, tt.n, tt.step, n, step)
		}
	}
}

func TestClampDelta(t *testing.T) {
	if got := ClampDelta(120); got != MaxFrameMs {
		t.Fatalf("expected stall clamped to %v, got %v", MaxFrameMs, got)
	}
	if got := ClampDelta(-3); got != 0 {
		t.Fatalf("expected negative delta clamped to 0, got %v", got)
	}
	if got := ClampDelta(math.NaN()); got != 0 {
		t.Fatalf("expected NaN delta clamped to 0, got %v", got)
	}
	if got := ClampDelta(16.7); got != 16.7 {
		t.Fatalf("expected ordinary delta untouched, got %v", got)
	}
}

func TestAdvanceMatchesManualSubsteps(t *testing.T) {
	a := NewSimulator(DefaultRestConfig())
	b := NewSimulator(DefaultRestConfig())
	a.SetDragging(true)
	b.SetDragging(true)

	if n := Advance(a, 40, 1, 1); n != 3 {
		t.Fatalf("expected 3 substeps, got %d", n)
	}
	for iter := 0; iter < 3; iter++ {
		b.Step(40.0/3, 1, 1)
	}
	if a.Position() != b.Position() || a.State() != b.State() {
		t.Fatalf("expected identical results, got %+v and %+v", a.State(), b.State())
	}
}
