package render

import (
	"math"
	"strings"
	"testing"

	"github.com/olivier-w/boing/internal/spring"
)

func near(a, b spring.Point) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func TestCoilEndsAtAnchorAndKnob(t *testing.T) {
	anchor := spring.Point{X: 17, Y: 200}
	knob := spring.Point{X: 300, Y: 120}

	pts := Coil(anchor, knob, 250)
	if len(pts) != coilSteps+1 {
		t.Fatalf("expected %d points, got %d", coilSteps+1, len(pts))
	}
	if !near(pts[0], anchor) {
		t.Fatalf("expected coil to start at anchor, got %+v", pts[0])
	}
	if !near(pts[len(pts)-1], knob) {
		t.Fatalf("expected coil to end at knob, got %+v", pts[len(pts)-1])
	}
}

func maxOffset(pts []spring.Point, y float64) float64 {
	var m float64
	for _, p := range pts {
		m = math.Max(m, math.Abs(p.Y-y))
	}
	return m
}

func TestCoilBulgesWhenCompressed(t *testing.T) {
	anchor := spring.Point{X: 17, Y: 200}

	rest := maxOffset(Coil(anchor, spring.Point{X: 267, Y: 200}, 250), 200)
	squashed := maxOffset(Coil(anchor, spring.Point{X: 142, Y: 200}, 250), 200)
	if squashed <= rest {
		t.Fatalf("expected wider turns when compressed, rest %f squashed %f", rest, squashed)
	}
}

func TestCoilDegenerate(t *testing.T) {
	anchor := spring.Point{X: 17, Y: 200}
	for _, p := range Coil(anchor, anchor, 250) {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatal("expected finite points for a zero-length coil")
		}
	}
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0, InkCoil)
	c.Set(3, 3, InkKnob)
	c.Set(-1, 0, InkCoil)
	c.Set(4, 0, InkCoil)

	if got, want := c.String(), "⠁⢀"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCanvasLineAndClear(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Line(0, 0, 3, 0, InkCoil)
	if got, want := c.String(), "⠉⠉"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	c.Clear()
	if got, want := c.String(), "⠀⠀"; got != want {
		t.Fatalf("expected blank canvas, got %q", got)
	}
}

func TestCanvasDashed(t *testing.T) {
	c := NewCanvas(4, 1)
	c.Dashed(0, 0, 7, 0, 2, InkGuide)
	// dots 0,1 on, 2,3 off, 4,5 on, 6,7 off
	if got, want := c.String(), "⠉⠀⠉⠀"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCanvasIgnoresNonFinite(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Line(math.NaN(), 0, 1, 1, InkCoil)
	c.Disc(math.Inf(1), 0, 2, InkKnob)
	if strings.Trim(c.String(), "⠀\n") != "" {
		t.Fatalf("expected nothing drawn, got %q", c.String())
	}
}

func TestRenderPaintsRuns(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Set(0, 0, InkWall)
	c.Set(2, 0, InkKnob)
	c.Set(4, 0, InkKnob)

	got := c.Render(func(ink Ink, s string) string {
		return "[" + string(rune('0'+ink)) + ":" + s + "]"
	})
	want := "[1:⠁][4:⠁⠁]"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWorldWidth(t *testing.T) {
	tests := []struct {
		cols, rows int
		want       float64
	}{
		{50, 25, 400},
		{1000, 25, MaxWorldWidth},
		{10, 25, minWorldWidth},
		{0, 0, minWorldWidth},
	}
	for _, tt := range tests {
		if got := WorldWidth(tt.cols, tt.rows); got != tt.want {
			t.Fatalf("WorldWidth(%d, %d): expected %v, got %v", tt.cols, tt.rows, tt.want, got)
		}
	}
}

func TestSceneDrawsKnobAndGuide(t *testing.T) {
	c := NewCanvas(75, 25)
	target := spring.Point{X: 500, Y: 50}
	s := Scene{
		Anchor:     spring.Point{X: 17, Y: 200},
		Knob:       spring.Point{X: 267, Y: 200},
		RestLength: 250,
		Target:     &target,
	}
	s.Draw(c)

	lines := strings.Split(c.String(), "\n")
	if len(lines) != 25 {
		t.Fatalf("expected 25 lines, got %d", len(lines))
	}

	inks := make(map[Ink]bool)
	c.Render(func(ink Ink, _ string) string {
		inks[ink] = true
		return ""
	})
	for _, ink := range []Ink{InkWall, InkCoil, InkGuide, InkKnob} {
		if !inks[ink] {
			t.Fatalf("expected ink %d in scene", ink)
		}
	}
}
