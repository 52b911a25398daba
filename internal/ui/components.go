package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/harmonica"
)

// fullPull is the displacement that maps to full volume and pitch.
const fullPull = 200.0

// pullMeter shows how hard the knob is pulled. The bar chases the live value
// through a critically damped spring so it does not jitter at frame rate.
type pullMeter struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	bar    progress.Model
}

func newPullMeter(fps int) pullMeter {
	return pullMeter{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
		bar: progress.New(
			progress.WithGradient("#FFB8B8", "#C23616"),
			progress.WithoutPercentage(),
		),
	}
}

// step advances the meter toward displacement and returns the shown level.
func (p *pullMeter) step(displacement float64) float64 {
	target := pullLevel(displacement)
	p.pos, p.vel = p.spring.Update(p.pos, p.vel, target)
	return p.level()
}

func (p *pullMeter) level() float64 {
	return math.Max(0, math.Min(1, p.pos))
}

func (p *pullMeter) view(width int) string {
	if width < 10 {
		width = 10
	}
	p.bar.Width = width - 10
	return fmt.Sprintf("pull %s %3d%%", p.bar.ViewAs(p.level()), int(p.level()*100+0.5))
}

func pullLevel(displacement float64) float64 {
	if math.IsNaN(displacement) || displacement <= 0 {
		return 0
	}
	return math.Min(displacement/fullPull, 1)
}
