package render

import (
	"math"

	"github.com/olivier-w/boing/internal/spring"
)

const (
	// WorldHeight is the fixed height of the play area in world pixels.
	WorldHeight = 400.0
	// MaxWorldWidth caps how wide the play area grows.
	MaxWorldWidth = 600.0
	minWorldWidth = 100.0

	knobRadius   = 16.0
	targetRadius = 4.0
	guideDash    = 4.0
)

// Scene is one frame of the toy in world pixels.
type Scene struct {
	Anchor     spring.Point
	Knob       spring.Point
	RestLength float64
	// Target is the drag target; nil when the knob is not held.
	Target *spring.Point
}

// WorldWidth returns the world width that fits a canvas of cols x rows cells
// at the scale that fits WorldHeight into the rows.
func WorldWidth(cols, rows int) float64 {
	if cols < 1 || rows < 1 {
		return minWorldWidth
	}
	w := float64(cols*2) / scaleFor(rows)
	return math.Max(minWorldWidth, math.Min(w, MaxWorldWidth))
}

func scaleFor(rows int) float64 {
	return float64(rows*4) / WorldHeight
}

// Draw paints the scene onto c, scaled so WorldHeight fills the canvas.
func (s Scene) Draw(c *Canvas) {
	_, rows := c.Size()
	scale := scaleFor(rows)
	pt := func(p spring.Point) (float64, float64) { return p.X * scale, p.Y * scale }

	_, h := c.Dots()
	ax, _ := pt(s.Anchor)
	c.Line(ax, 0, ax, float64(h-1), InkWall)
	for y := 0; y < h; y += 2 {
		for x := (y / 2) % 2; float64(x) < ax-1; x += 2 {
			c.Set(x, y, InkWall)
		}
	}

	if s.Target != nil {
		kx, ky := pt(s.Knob)
		tx, ty := pt(*s.Target)
		c.Dashed(kx, ky, tx, ty, guideDash*scale, InkGuide)
		c.Disc(tx, ty, targetRadius*scale, InkGuide)
	}

	coil := Coil(s.Anchor, s.Knob, s.RestLength)
	for i := 1; i < len(coil); i++ {
		x0, y0 := pt(coil[i-1])
		x1, y1 := pt(coil[i])
		c.Line(x0, y0, x1, y1, InkCoil)
	}

	kx, ky := pt(s.Knob)
	c.Disc(kx, ky, knobRadius*scale, InkKnob)
}
