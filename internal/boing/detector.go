package boing

const (
	// DeadZone is the displacement a release must exceed to boing.
	DeadZone = 10.0
	// RegrabSpeed is the knob speed above which grabbing it silences playing sounds.
	RegrabSpeed = 1.0
)

// Detector decides what trigger edges mean for audio.
type Detector struct {
	DeadZone    float64
	RegrabSpeed float64
}

// NewDetector returns a detector with the default thresholds.
func NewDetector() Detector {
	return Detector{DeadZone: DeadZone, RegrabSpeed: RegrabSpeed}
}

// Release returns the force of a boing when a drag ends with the knob
// displacement from rest. ok is false for micro-releases and when no drag
// was active.
func (d Detector) Release(wasDragging bool, displacement float64) (force float64, ok bool) {
	if !wasDragging || !(displacement > d.DeadZone) {
		return 0, false
	}
	return displacement, true
}

// Press reports whether grabbing a knob moving at speed should fade out the
// sounds that are still playing.
func (d Detector) Press(speed float64) bool {
	return speed > d.RegrabSpeed
}
