// Package window runs the toy in a desktop window with gamepad support.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/olivier-w/boing/internal/boing"
	"github.com/olivier-w/boing/internal/input"
	"github.com/olivier-w/boing/internal/render"
	"github.com/olivier-w/boing/internal/spring"
	"github.com/olivier-w/boing/internal/toy"
	"github.com/olivier-w/boing/internal/util"
)

const (
	worldHeight = int(render.WorldHeight)
	minWidth    = 100.0

	knobRadius   = 16
	targetRadius = 4
	dashLength   = 4.0

	instructions = "hold A + move joystick to boing!"
)

var (
	backgroundColor = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}
	wallColor       = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	wallEdgeColor   = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	coilColor       = color.RGBA{0x44, 0x44, 0x44, 0xff}
	knobColor       = color.RGBA{0xe0, 0x50, 0x40, 0xff}
	knobEdgeColor   = color.RGBA{0x2d, 0x34, 0x36, 0xff}
	guideColor      = color.RGBA{0x00, 0x00, 0x00, 0x4c}
)

// Game implements ebiten.Game.
type Game struct {
	toy   *toy.Toy
	ended <-chan boing.InstanceID
	src   input.Source
	now   func() time.Time

	frame toy.Frame
	last  time.Time
	width float64
}

// NewGame returns a game driving t from the keyboard and gamepads.
func NewGame(t *toy.Toy, ended <-chan boing.InstanceID) *Game {
	return &Game{
		toy:   t,
		ended: ended,
		src:   &deviceSource{},
		now:   time.Now,
		frame: t.Snapshot(),
	}
}

// Update advances the toy by the wall-clock time since the last update.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.step()
	return nil
}

func (g *Game) step() {
	drainEnded(g.ended, g.toy)

	now := g.now()
	var delta time.Duration
	if !g.last.IsZero() {
		delta = now.Sub(g.last)
	}
	g.last = now
	g.frame = g.toy.Tick(delta, g.src.Poll(now))
}

// drainEnded forwards every completion already waiting, without blocking.
func drainEnded(ended <-chan boing.InstanceID, t *toy.Toy) int {
	n := 0
	for {
		select {
		case id, ok := <-ended:
			if !ok {
				return n
			}
			t.SoundEnded(id)
			n++
		default:
			return n
		}
	}
}

// Draw renders wall, spring, knob and the drag target.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.frame
	screen.Fill(backgroundColor)

	h := float32(screen.Bounds().Dy())
	ax := float32(f.Anchor.X)
	vector.DrawFilledRect(screen, 0, 0, ax, h, wallColor, false)
	vector.StrokeLine(screen, ax, 0, ax, h, 1, wallEdgeColor, false)

	if f.Dragging {
		drawDashed(screen, f.Knob, f.Target)
		vector.DrawFilledCircle(screen, float32(f.Target.X), float32(f.Target.Y), targetRadius, guideColor, true)
	}

	coil := render.Coil(f.Anchor, f.Knob, f.RestLength)
	for i := 1; i < len(coil); i++ {
		a, b := coil[i-1], coil[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 3, coilColor, true)
	}

	kx, ky := float32(f.Knob.X), float32(f.Knob.Y)
	vector.DrawFilledCircle(screen, kx, ky, knobRadius, knobColor, true)
	vector.StrokeCircle(screen, kx, ky, knobRadius, 2, knobEdgeColor, true)

	if f.ShowInstructions {
		ebitenutil.DebugPrintAt(screen, instructions, 8, 8)
	}
	ebitenutil.DebugPrintAt(screen, util.FormatBoings(f.Count), 8, int(h)-20)
}

func drawDashed(screen *ebiten.Image, from, to spring.Point) {
	length := from.Dist(to)
	if length == 0 || math.IsNaN(length) {
		return
	}
	dx, dy := (to.X-from.X)/length, (to.Y-from.Y)/length
	for d := 0.0; d < length; d += 2 * dashLength {
		end := math.Min(d+dashLength, length)
		vector.StrokeLine(screen,
			float32(from.X+dx*d), float32(from.Y+dy*d),
			float32(from.X+dx*end), float32(from.Y+dy*end),
			2, guideColor, true)
	}
}

// Layout sizes the world to the window and resizes the toy when the width
// changes.
func (g *Game) Layout(outsideWidth, _ int) (int, int) {
	w := worldWidthFor(outsideWidth)
	if w != g.width {
		g.width = w
		g.toy.Resize(w)
		g.frame = g.toy.Snapshot()
	}
	return int(w), worldHeight
}

func worldWidthFor(outsideWidth int) float64 {
	w := math.Floor(float64(outsideWidth)*0.9 - 24)
	return math.Max(minWidth, math.Min(w, render.MaxWorldWidth))
}

// Run opens the window and blocks until it is closed.
func Run(t *toy.Toy, ended <-chan boing.InstanceID) error {
	ebiten.SetWindowSize(int(render.MaxWorldWidth)+40, worldHeight+40)
	ebiten.SetWindowTitle("boing")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(NewGame(t, ended)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
