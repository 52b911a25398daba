package boing

import (
	"errors"
	"time"
)

// ErrNoInstance is returned by engines for ids that are not playing, which
// includes instances that finished before the caller heard about it.
var ErrNoInstance = errors.New("no such sound instance")

// InstanceID identifies one playing sound.
type InstanceID uint64

// Engine plays the boing asset. Completion is reported out of band; callers
// route it to Mapper.Ended.
type Engine interface {
	Play() (InstanceID, error)
	SetRate(id InstanceID, rate float64) error
	SetVolume(id InstanceID, volume float64) error
	Volume(id InstanceID) float64
	Fade(id InstanceID, from, to float64, d time.Duration) error
}
