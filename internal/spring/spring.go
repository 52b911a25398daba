package spring

import "math"

const (
	// referenceFrameMs is the frame duration the tuning constants were chosen for.
	referenceFrameMs = 1000.0 / 60.0

	dragReach     = 250.0
	dragLerp      = 0.15
	angularSpring = 0.9
	minPushLength = 20.0
	minLength     = 16.0
	wallClearance = 16.0
	bounceDamping = -0.5

	maxLengthVelocity  = 10000.0
	maxAngularVelocity = 1000.0

	maxRestLength   = 250.0
	restWidthFactor = 0.65
)

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// RestConfig holds the spring geometry and tuning.
type RestConfig struct {
	RestLength      float64
	Anchor          Point
	PullLimit       float64
	PushLimit       float64
	SpringStiffness float64
	Friction        float64
	AngularFriction float64
}

// DefaultRestConfig returns the tuning the toy ships with.
func DefaultRestConfig() RestConfig {
	return RestConfig{
		RestLength:      250,
		Anchor:          Point{X: 17, Y: 200},
		PullLimit:       300,
		PushLimit:       400,
		SpringStiffness: 0.95,
		Friction:        0.88,
		AngularFriction: 0.9,
	}
}

// RestLengthForWidth returns the rest length for a canvas of the given width.
// Narrow canvases never pull the rest point inside the wall clearance.
func RestLengthForWidth(width, anchorX float64) float64 {
	rest := math.Min((width-anchorX)*restWidthFactor, maxRestLength)
	if math.IsNaN(rest) || rest < minLength {
		return minLength
	}
	return rest
}

// KnobState is the knob in polar coordinates around the anchor.
type KnobState struct {
	Length          float64
	Angle           float64
	LengthVelocity  float64
	AngularVelocity float64
}

// finite reports whether every field is finite and within the velocity bounds.
func (k KnobState) finite() bool {
	for _, v := range [...]float64{k.Length, k.Angle, k.LengthVelocity, k.AngularVelocity} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return math.Abs(k.LengthVelocity) <= maxLengthVelocity &&
		math.Abs(k.AngularVelocity) <= maxAngularVelocity
}

// Simulator advances the knob. It is not safe for concurrent use.
type Simulator struct {
	cfg      RestConfig
	state    KnobState
	pos      Point
	dragging bool
}

// NewSimulator returns a simulator with the knob at rest.
func NewSimulator(cfg RestConfig) *Simulator {
	s := &Simulator{cfg: cfg}
	s.Reset()
	return s
}

// Config returns the current rest configuration.
func (s *Simulator) Config() RestConfig { return s.cfg }

// State returns the current polar state.
func (s *Simulator) State() KnobState { return s.state }

// Position returns the knob position in canvas pixels.
func (s *Simulator) Position() Point { return s.pos }

// Anchor returns the wall anchor.
func (s *Simulator) Anchor() Point { return s.cfg.Anchor }

// RestPosition returns the knob's equilibrium point.
func (s *Simulator) RestPosition() Point {
	return Point{X: s.cfg.Anchor.X + s.cfg.RestLength, Y: s.cfg.Anchor.Y}
}

// Displacement returns how far the knob sits from its rest position.
func (s *Simulator) Displacement() float64 {
	return s.pos.Dist(s.RestPosition())
}

// Speed returns the combined radial and tangential speed of the knob.
func (s *Simulator) Speed() float64 {
	return math.Abs(s.state.LengthVelocity) + math.Abs(s.state.AngularVelocity)*s.state.Length
}

// Dragging reports whether the knob follows input.
func (s *Simulator) Dragging() bool { return s.dragging }

// SetDragging switches between drag pursuit and free oscillation.
func (s *Simulator) SetDragging(v bool) { s.dragging = v }

// Target returns the drag target for the given direction.
func (s *Simulator) Target(dx, dy float64) Point {
	return Point{
		X: s.cfg.Anchor.X + s.cfg.RestLength + dx*dragReach,
		Y: s.cfg.Anchor.Y + dy*dragReach,
	}
}

// Reset puts the knob at rest with no momentum.
func (s *Simulator) Reset() {
	s.state = KnobState{Length: s.cfg.RestLength}
	s.pos = s.RestPosition()
}

// Resize recomputes the rest length for a new canvas width and snaps to rest.
func (s *Simulator) Resize(width float64) {
	s.cfg.RestLength = RestLengthForWidth(width, s.cfg.Anchor.X)
	s.Reset()
}

// Step advances the simulation by dtMs milliseconds.
func (s *Simulator) Step(dtMs, dx, dy float64) {
	timeScale := dtMs / referenceFrameMs
	if s.dragging {
		s.stepDrag(timeScale, dx, dy)
	} else {
		s.stepFree(timeScale)
	}
	if !s.state.finite() {
		s.Reset()
	}
}

func (s *Simulator) stepDrag(timeScale, dx, dy float64) {
	anchor := s.cfg.Anchor
	rest := s.cfg.RestLength
	target := s.Target(dx, dy)

	lerp := dragLerp * timeScale
	goalX := s.pos.X + (target.X-s.pos.X)*lerp
	goalY := s.pos.Y + (target.Y-s.pos.Y)*lerp

	ox := goalX - anchor.X
	oy := goalY - anchor.Y
	if ox < 0 {
		ox = 0
	}

	dist := math.Hypot(ox, oy)
	angle := math.Atan2(oy, ox)

	offset := dist - rest
	var length float64
	if offset > 0 {
		length = rest + offset/(1+offset/s.cfg.PullLimit)
	} else {
		abs := -offset
		length = rest - abs/(1+abs/s.cfg.PushLimit)
		if length < minPushLength {
			length = minPushLength
		}
	}

	s.pos = Point{
		X: anchor.X + math.Cos(angle)*length,
		Y: anchor.Y + math.Sin(angle)*length,
	}
	if minX := anchor.X + wallClearance; s.pos.X < minX {
		s.pos.X = minX
	}

	s.state = KnobState{
		Length: s.pos.Dist(anchor),
		Angle:  math.Atan2(s.pos.Y-anchor.Y, s.pos.X-anchor.X),
	}
}

func (s *Simulator) stepFree(timeScale float64) {
	anchor := s.cfg.Anchor
	st := &s.state

	st.LengthVelocity += (s.cfg.RestLength - st.Length) * s.cfg.SpringStiffness * timeScale
	st.LengthVelocity *= math.Pow(s.cfg.Friction, timeScale)
	st.Length += st.LengthVelocity * timeScale

	st.AngularVelocity += -st.Angle * angularSpring * timeScale
	st.AngularVelocity *= math.Pow(s.cfg.AngularFriction, timeScale)
	st.Angle += st.AngularVelocity * timeScale

	if st.Length < minLength {
		st.Length = minLength
		st.LengthVelocity *= bounceDamping
	}

	s.pos = Point{
		X: anchor.X + math.Cos(st.Angle)*st.Length,
		Y: anchor.Y + math.Sin(st.Angle)*st.Length,
	}

	minX := anchor.X + wallClearance
	if s.pos.X >= minX {
		return
	}
	s.pos.X = minX
	if math.Abs(st.Angle) > math.Pi/2 {
		st.Angle = math.Copysign(math.Pi, st.Angle) - st.Angle
		st.AngularVelocity *= bounceDamping
	}
	st.Length = s.pos.Dist(anchor)
	st.LengthVelocity *= bounceDamping
}
