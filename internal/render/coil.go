package render

import (
	"math"

	"github.com/olivier-w/boing/internal/spring"
)

const (
	coilTurns     = 25
	coilSteps     = 100
	coilWidth     = 25.0
	coilTaper     = 1.2
	bendStiffness = 150.0
)

// Coil returns the spring drawn from anchor to knob as a polyline in world
// pixels. The centre line is a quadratic curve that leaves the wall
// horizontally; a sine wave across it forms the turns, tapering toward the
// knob and bulging while the spring is compressed.
func Coil(anchor, knob spring.Point, restLength float64) []spring.Point {
	length := anchor.Dist(knob)
	ctrl := spring.Point{X: anchor.X + math.Min(bendStiffness, length*0.5), Y: anchor.Y}

	bulge := 1.0
	if restLength > 0 && length < restLength {
		bulge += (restLength - length) / restLength
	}

	pts := make([]spring.Point, 0, coilSteps+1)
	for i := 0; i <= coilSteps; i++ {
		t := float64(i) / coilSteps
		u := 1 - t

		bx := u*u*anchor.X + 2*u*t*ctrl.X + t*t*knob.X
		by := u*u*anchor.Y + 2*u*t*ctrl.Y + t*t*knob.Y

		tx := 2*u*(ctrl.X-anchor.X) + 2*t*(knob.X-ctrl.X)
		ty := 2*u*(ctrl.Y-anchor.Y) + 2*t*(knob.Y-ctrl.Y)
		var nx, ny float64
		if tl := math.Hypot(tx, ty); tl > 0 {
			nx, ny = -ty/tl, tx/tl
		}

		w := coilWidth * (coilTaper - t) * bulge
		s := math.Sin(t * coilTurns * 2 * math.Pi)
		pts = append(pts, spring.Point{X: bx + nx*s*w, Y: by + ny*s*w})
	}
	return pts
}
