package player

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/olivier-w/boing/internal/boing"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 2 // 16-bit = 2 bytes
	frameSize    = channelCount * bitDepth
	bytesPerSec  = sampleRate * frameSize

	// Small device buffers keep rate and volume changes audible at once.
	playerBufferSize = bytesPerSec / 20
	pollInterval     = 10 * time.Millisecond
	endedBacklog     = 64
)

// otoPlayer is the part of *oto.Player the engine drives.
type otoPlayer interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
}

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// Engine plays overlapping instances of one clip. It implements boing.Engine.
//
// Play only registers the instance; the monitor goroutine starts it on its
// next poll, so rate and volume set right after Play apply from the first
// sample.
type Engine struct {
	clip      *Clip
	newPlayer func(r io.Reader) otoPlayer
	now       func() time.Time

	mu     sync.Mutex
	voices map[boing.InstanceID]*voice
	nextID boing.InstanceID
	closed bool

	ended     chan boing.InstanceID
	stop      chan struct{}
	closeOnce sync.Once
}

// New opens the audio device and returns an engine for clip.
func New(clip *Clip) (*Engine, error) {
	ctx, err := initOto()
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	e := newEngine(clip, func(r io.Reader) otoPlayer {
		p := ctx.NewPlayer(r)
		p.SetBufferSize(playerBufferSize)
		return p
	})
	go e.monitor()
	return e, nil
}

func newEngine(clip *Clip, newPlayer func(io.Reader) otoPlayer) *Engine {
	return &Engine{
		clip:      clip,
		newPlayer: newPlayer,
		now:       time.Now,
		voices:    make(map[boing.InstanceID]*voice),
		ended:     make(chan boing.InstanceID, endedBacklog),
		stop:      make(chan struct{}),
	}
}

// Play starts a new instance of the clip at full volume and normal rate.
func (e *Engine) Play() (boing.InstanceID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return 0, fmt.Errorf("engine closed")
	}
	e.nextID++
	v := newVoice(e.clip)
	v.player = e.newPlayer(v)
	e.voices[e.nextID] = v
	return e.nextID, nil
}

func (e *Engine) voice(id boing.InstanceID) (*voice, error) {
	v, ok := e.voices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", boing.ErrNoInstance, id)
	}
	return v, nil
}

// SetRate sets the playback rate of id; 1 is the clip's natural speed.
func (e *Engine) SetRate(id boing.InstanceID, rate float64) error {
	if rate <= 0 {
		return fmt.Errorf("invalid rate %v", rate)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	v, err := e.voice(id)
	if err != nil {
		return err
	}
	v.setRate(rate)
	return nil
}

// SetVolume sets the volume of id and cancels any fade in progress.
func (e *Engine) SetVolume(id boing.InstanceID, volume float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, err := e.voice(id)
	if err != nil {
		return err
	}
	v.fade = nil
	v.volume = clampVolume(volume)
	if v.started {
		v.player.SetVolume(v.volume)
	}
	return nil
}

// Volume returns the current volume of id, or 0 for unknown ids.
func (e *Engine) Volume(id boing.InstanceID) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.voices[id]
	if !ok {
		return 0
	}
	if v.fade != nil {
		vol, _ := v.fade.at(e.now())
		return vol
	}
	return v.volume
}

// Fade ramps the volume of id linearly from one level to another over d.
// A later Fade or SetVolume replaces it.
func (e *Engine) Fade(id boing.InstanceID, from, to float64, d time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, err := e.voice(id)
	if err != nil {
		return err
	}
	v.fade = &fade{from: clampVolume(from), to: clampVolume(to), start: e.now(), dur: d}
	v.volume = v.fade.from
	if v.started {
		v.player.SetVolume(v.volume)
	}
	return nil
}

// Ended delivers the id of every instance whose playback finished.
func (e *Engine) Ended() <-chan boing.InstanceID { return e.ended }

// Active returns the number of instances not yet reported as ended.
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.voices)
}

// Close stops every instance and the monitor. Pending ids are not delivered.
func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		close(e.stop)
		e.mu.Lock()
		e.closed = true
		for id, v := range e.voices {
			v.player.Pause()
			delete(e.voices, id)
		}
		e.mu.Unlock()
	})
	return nil
}

func (e *Engine) monitor() {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-e.stop:
			return
		case <-ticker.C:
		}
		for _, id := range e.poll() {
			select {
			case e.ended <- id:
			case <-e.stop:
				return
			}
		}
	}
}

// poll starts pending instances, advances fades and collects finished ones.
func (e *Engine) poll() []boing.InstanceID {
	now := e.now()
	e.mu.Lock()
	defer e.mu.Unlock()

	var done []boing.InstanceID
	for id, v := range e.voices {
		if !v.started {
			v.player.SetVolume(v.volume)
			v.player.Play()
			v.started = true
			continue
		}
		if v.fade != nil {
			vol, finished := v.fade.at(now)
			v.volume = vol
			v.player.SetVolume(vol)
			if finished {
				v.fade = nil
			}
		}
		if v.isDrained() && !v.player.IsPlaying() {
			delete(e.voices, id)
			done = append(done, id)
		}
	}
	return done
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0 || v != v:
		return 0
	case v > 1:
		return 1
	}
	return v
}
