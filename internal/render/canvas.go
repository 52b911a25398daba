package render

import (
	"math"
	"strings"
)

// Ink tags the layer that last drew a cell so a frontend can colour it.
type Ink uint8

const (
	InkNone Ink = iota
	InkWall
	InkCoil
	InkGuide
	InkKnob
)

const maxLineSteps = 4096

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Canvas is a grid of braille cells addressed in dots. Each cell is a 2x4 dot
// grid, giving 2x horizontal and 4x vertical resolution.
type Canvas struct {
	cols, rows int
	cells      []uint8
	ink        []Ink
}

func NewCanvas(cols, rows int) *Canvas {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return &Canvas{
		cols:  cols,
		rows:  rows,
		cells: make([]uint8, cols*rows),
		ink:   make([]Ink, cols*rows),
	}
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (w, h int) { return c.cols * 2, c.rows * 4 }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	clear(c.cells)
	clear(c.ink)
}

// Set lights the dot at (x, y). Dots off the canvas are ignored.
func (c *Canvas) Set(x, y int, ink Ink) {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return
	}
	i := (y/4)*c.cols + x/2
	c.cells[i] |= 1 << brailleBits[x%2][y%4]
	c.ink[i] = ink
}

func (c *Canvas) setf(x, y float64, ink Ink) {
	c.Set(int(math.Floor(x)), int(math.Floor(y)), ink)
}

// Line draws a solid line between two dot positions.
func (c *Canvas) Line(x0, y0, x1, y1 float64, ink Ink) {
	c.Dashed(x0, y0, x1, y1, 0, ink)
}

// Dashed draws a line that alternates dash dots on and dash dots off.
// A dash of zero or less draws a solid line.
func (c *Canvas) Dashed(x0, y0, x1, y1, dash float64, ink Ink) {
	if !finite(x0, y0, x1, y1) {
		return
	}
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	steps = min(steps, maxLineSteps)
	if steps == 0 {
		c.setf(x0, y0, ink)
		return
	}
	stepLen := math.Hypot(dx, dy) / float64(steps)
	for i := 0; i <= steps; i++ {
		if dash > 0 && int(float64(i)*stepLen/dash)%2 == 1 {
			continue
		}
		t := float64(i) / float64(steps)
		c.setf(x0+dx*t, y0+dy*t, ink)
	}
}

// Disc fills a circle of radius r dots around (cx, cy).
func (c *Canvas) Disc(cx, cy, r float64, ink Ink) {
	if !finite(cx, cy, r) || r < 0 {
		return
	}
	for y := math.Floor(cy - r); y <= cy+r; y++ {
		for x := math.Floor(cx - r); x <= cx+r; x++ {
			if math.Hypot(x+0.5-cx, y+0.5-cy) <= r+0.5 {
				c.setf(x, y, ink)
			}
		}
	}
}

// Render joins the cells into lines. Runs of cells with the same ink are
// passed to paint together; a nil paint returns the bare glyphs.
func (c *Canvas) Render(paint func(Ink, string) string) string {
	rows := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var line, run strings.Builder
		runInk := InkNone
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if paint != nil {
				line.WriteString(paint(runInk, run.String()))
			} else {
				line.WriteString(run.String())
			}
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			ink := c.ink[i]
			if c.cells[i] == 0 {
				ink = InkNone
			}
			if ink != runInk {
				flush()
				runInk = ink
			}
			run.WriteRune(rune(0x2800 + uint(c.cells[i])))
		}
		flush()
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}

func (c *Canvas) String() string { return c.Render(nil) }

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
