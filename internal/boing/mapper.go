package boing

import (
	"errors"
	"log"
	"math"
	"time"
)

const (
	forceSaturation = 200.0

	minRate   = 0.9 * 1.1
	maxRate   = 1.5 * 1.1
	minVolume = 0.3
	maxVolume = 1.0

	tailVolume      = 0.1
	tailFade        = 1900 * time.Millisecond
	fadeOutDuration = 100 * time.Millisecond
)

// Params are the playback settings for one boing.
type Params struct {
	Rate   float64
	Volume float64
}

// MapForce converts a release force into playback rate and volume.
// The mapping saturates at a force of 200.
func MapForce(force float64) Params {
	n := force / forceSaturation
	if math.IsNaN(n) || n < 0 {
		n = 0
	}
	if n > 1 {
		n = 1
	}
	return Params{
		Rate:   minRate + n*(maxRate-minRate),
		Volume: minVolume + n*(maxVolume-minVolume),
	}
}

// Boing describes one qualifying release.
type Boing struct {
	Force    float64
	Params   Params
	Instance InstanceID
	Played   bool
	Count    int
	// First is set on the first boing only; the onboarding hint hides then.
	First bool
}

// Mapper starts sounds for boings, keeps the set of live instances and counts
// boings. It is driven from the frame loop and is not safe for concurrent use.
type Mapper struct {
	engine    Engine
	active    map[InstanceID]float64
	count     int
	onboarded bool
}

// NewMapper returns a mapper playing through e.
func NewMapper(e Engine) *Mapper {
	return &Mapper{
		engine: e,
		active: make(map[InstanceID]float64),
	}
}

// Trigger plays a boing for force and advances the counter. Playback failures
// are logged; the boing still counts.
func (m *Mapper) Trigger(force float64) Boing {
	b := Boing{Force: force, Params: MapForce(force)}

	if id, err := m.engine.Play(); err != nil {
		log.Printf("boing: play failed: %v", err)
	} else {
		b.Instance = id
		b.Played = true
		if err := m.engine.SetRate(id, b.Params.Rate); err != nil {
			log.Printf("boing: set rate on %d: %v", id, err)
		}
		if err := m.engine.SetVolume(id, b.Params.Volume); err != nil {
			log.Printf("boing: set volume on %d: %v", id, err)
		}
		m.active[id] = b.Params.Volume
		if err := m.engine.Fade(id, b.Params.Volume, tailVolume, tailFade); err != nil {
			log.Printf("boing: fade on %d: %v", id, err)
		}
	}

	m.count++
	b.Count = m.count
	if !m.onboarded {
		m.onboarded = true
		b.First = true
	}
	return b
}

// FadeOutAll fades every live instance to silence and forgets them at once.
// It does not wait for the fades to finish.
func (m *Mapper) FadeOutAll() int {
	n := len(m.active)
	for id := range m.active {
		err := m.engine.Fade(id, m.engine.Volume(id), 0, fadeOutDuration)
		if err != nil && !errors.Is(err, ErrNoInstance) {
			log.Printf("boing: fade out %d: %v", id, err)
		}
	}
	clear(m.active)
	return n
}

// Ended records that playback of id finished. Unknown ids are ignored, so a
// natural end racing a FadeOutAll is harmless.
func (m *Mapper) Ended(id InstanceID) {
	delete(m.active, id)
}

// Active returns the number of live instances.
func (m *Mapper) Active() int { return len(m.active) }

// Tracking reports whether id is in the live set.
func (m *Mapper) Tracking(id InstanceID) bool {
	_, ok := m.active[id]
	return ok
}

// Count returns the number of boings so far.
func (m *Mapper) Count() int { return m.count }

// Onboarded reports whether the first boing has happened.
func (m *Mapper) Onboarded() bool { return m.onboarded }
