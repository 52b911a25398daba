package spring

import "math"

const (
	// MaxSubstepMs bounds a single integration step.
	MaxSubstepMs = 16.0
	// MaxFrameMs is the largest frame delta a host should feed the driver.
	MaxFrameMs = 50.0
)

// ClampDelta bounds a wall-clock frame delta so a stalled host (a backgrounded
// window, a suspended terminal) resumes with one ordinary frame.
func ClampDelta(deltaMs float64) float64 {
	if math.IsNaN(deltaMs) || deltaMs < 0 {
		return 0
	}
	return math.Min(deltaMs, MaxFrameMs)
}

// Substeps splits deltaMs into equal steps no longer than MaxSubstepMs.
func Substeps(deltaMs float64) (n int, stepMs float64) {
	if !(deltaMs > 0) || math.IsInf(deltaMs, 1) {
		return 0, 0
	}
	n = int(math.Ceil(deltaMs / MaxSubstepMs))
	return n, deltaMs / float64(n)
}

// Advance runs the simulator over deltaMs in bounded substeps and returns the
// number of substeps taken.
func Advance(s *Simulator, deltaMs, dx, dy float64) int {
	n, step := Substeps(deltaMs)
	for iter := 0; iter < n; iter++ {
		s.Step(step, dx, dy)
	}
	return n
}
