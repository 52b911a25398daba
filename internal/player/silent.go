package player

import (
	"fmt"
	"sync"
	"time"

	"github.com/olivier-w/boing/internal/boing"
)

// Silent is an engine that plays nothing. Instances still last as long as the
// clip would at their rate, so counting and completion behave as with sound.
type Silent struct {
	clipLen time.Duration

	mu      sync.Mutex
	nextID  boing.InstanceID
	volumes map[boing.InstanceID]float64
	timers  map[boing.InstanceID]*time.Timer
	closed  bool

	ended chan boing.InstanceID
}

// NewSilent returns a silent engine whose instances last clipLen.
func NewSilent(clipLen time.Duration) *Silent {
	return &Silent{
		clipLen: clipLen,
		volumes: make(map[boing.InstanceID]float64),
		timers:  make(map[boing.InstanceID]*time.Timer),
		ended:   make(chan boing.InstanceID, endedBacklog),
	}
}

func (s *Silent) Play() (boing.InstanceID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, fmt.Errorf("engine closed")
	}
	s.nextID++
	id := s.nextID
	s.volumes[id] = 1
	s.timers[id] = time.AfterFunc(s.clipLen, func() { s.finish(id) })
	return id, nil
}

func (s *Silent) finish(id boing.InstanceID) {
	s.mu.Lock()
	_, ok := s.volumes[id]
	delete(s.volumes, id)
	delete(s.timers, id)
	closed := s.closed
	s.mu.Unlock()

	if !ok || closed {
		return
	}
	select {
	case s.ended <- id:
	default:
	}
}

// SetRate reschedules the end of id as if the clip were played at rate.
func (s *Silent) SetRate(id boing.InstanceID, rate float64) error {
	if rate <= 0 {
		return fmt.Errorf("invalid rate %v", rate)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[id]
	if !ok {
		return fmt.Errorf("%w: %d", boing.ErrNoInstance, id)
	}
	t.Reset(time.Duration(float64(s.clipLen) / rate))
	return nil
}

func (s *Silent) SetVolume(id boing.InstanceID, volume float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.volumes[id]; !ok {
		return fmt.Errorf("%w: %d", boing.ErrNoInstance, id)
	}
	s.volumes[id] = clampVolume(volume)
	return nil
}

func (s *Silent) Volume(id boing.InstanceID) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volumes[id]
}

// Fade jumps straight to the target volume.
func (s *Silent) Fade(id boing.InstanceID, _, to float64, _ time.Duration) error {
	return s.SetVolume(id, to)
}

func (s *Silent) Ended() <-chan boing.InstanceID { return s.ended }

func (s *Silent) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
		delete(s.volumes, id)
	}
	return nil
}
