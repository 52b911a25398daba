package player

import (
	"encoding/binary"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep"
)

const resampleQuality = 4

// voice is one playing instance of the clip. Oto pulls PCM from it on its own
// goroutine; the engine adjusts rate and volume from the frame loop.
type voice struct {
	mu        sync.Mutex
	src       *beep.Resampler
	baseRatio float64
	scratch   [][2]float64
	drained   bool

	// guarded by Engine.mu
	player  otoPlayer
	started bool
	volume  float64
	fade    *fade
}

func newVoice(clip *Clip) *voice {
	base := float64(clip.SampleRate()) / float64(sampleRate)
	return &voice{
		src:       beep.ResampleRatio(resampleQuality, base, clip.streamer()),
		baseRatio: base,
		volume:    1,
	}
}

func (v *voice) setRate(rate float64) {
	v.mu.Lock()
	v.src.SetRatio(v.baseRatio * rate)
	v.mu.Unlock()
}

func (v *voice) isDrained() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.drained
}

// Read renders resampled frames as 16-bit little-endian stereo.
func (v *voice) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.drained {
		return 0, io.EOF
	}
	n := len(p) / frameSize
	if n == 0 {
		return 0, nil
	}
	if cap(v.scratch) < n {
		v.scratch = make([][2]float64, n)
	}
	frames := v.scratch[:n]

	got, ok := v.src.Stream(frames)
	for i := 0; i < got; i++ {
		for ch := 0; ch < channelCount; ch++ {
			binary.LittleEndian.PutUint16(p[i*frameSize+ch*bitDepth:], uint16(toPCM16(frames[i][ch])))
		}
	}
	if !ok || got == 0 {
		v.drained = true
		if got == 0 {
			return 0, io.EOF
		}
	}
	return got * frameSize, nil
}

func toPCM16(s float64) int16 {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return int16(s * 32767)
}

// fade is a linear volume ramp.
type fade struct {
	from, to float64
	start    time.Time
	dur      time.Duration
}

// at returns the ramp value at now and whether the ramp has finished.
func (f *fade) at(now time.Time) (float64, bool) {
	elapsed := now.Sub(f.start)
	if f.dur <= 0 || elapsed >= f.dur {
		return f.to, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := float64(elapsed) / float64(f.dur)
	return f.from + (f.to-f.from)*t, false
}
