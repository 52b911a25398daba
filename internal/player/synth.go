package player

import "math"

const (
	synthRate     = 44100
	synthDuration = 1.6 // seconds

	synthStartHz   = 180.0
	synthEndHz     = 95.0
	synthBendTime  = 0.35
	synthVibratoHz = 11.0
	synthVibrato   = 0.06
	synthDecay     = 2.8
	synthAttack    = 0.004
)

// SynthClip builds the default boing: a sine that drops in pitch, wobbles and
// decays. It is used when no asset is configured or the asset fails to load.
func SynthClip() *Clip {
	n := int(synthRate * synthDuration)
	frames := make([][2]float64, n)

	phase := 0.0
	for i := range frames {
		t := float64(i) / synthRate

		bend := math.Exp(-t / synthBendTime)
		hz := synthEndHz + (synthStartHz-synthEndHz)*bend
		hz *= 1 + synthVibrato*math.Sin(2*math.Pi*synthVibratoHz*t)*math.Exp(-t)
		phase += 2 * math.Pi * hz / synthRate

		env := math.Exp(-synthDecay * t)
		if t < synthAttack {
			env *= t / synthAttack
		}
		// a little second harmonic gives it some twang
		s := 0.8 * env * (math.Sin(phase) + 0.25*math.Sin(2*phase))
		frames[i] = [2]float64{s, s}
	}

	clip, err := newClip(synthRate, frames)
	if err != nil {
		// unreachable: rate and length are fixed
		panic(err)
	}
	return clip
}
