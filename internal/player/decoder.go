package player

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-audio/wav"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
	"github.com/olivier-w/boing/internal/media"
)

// Clip is a decoded sound held in memory as stereo frames.
type Clip struct {
	buf *beep.Buffer
}

func newClip(sampleRate int, frames [][2]float64) (*Clip, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("unsupported sample rate: %d", sampleRate)
	}
	if len(frames) == 0 {
		return nil, errors.New("no audio data")
	}
	buf := beep.NewBuffer(beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: channelCount,
		Precision:   bitDepth,
	})
	buf.Append(&frameStreamer{frames: frames})
	return &Clip{buf: buf}, nil
}

// SampleRate returns the clip's native sample rate.
func (c *Clip) SampleRate() int { return int(c.buf.Format().SampleRate) }

// Frames returns the clip length in sample frames.
func (c *Clip) Frames() int { return c.buf.Len() }

// Duration returns the clip length at its native rate.
func (c *Clip) Duration() time.Duration {
	return c.buf.Format().SampleRate.D(c.buf.Len())
}

func (c *Clip) streamer() beep.StreamSeeker {
	return c.buf.Streamer(0, c.buf.Len())
}

// frameStreamer streams a slice of frames once.
type frameStreamer struct {
	frames [][2]float64
	pos    int
}

func (s *frameStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.frames) {
		return 0, false
	}
	n := copy(samples, s.frames[s.pos:])
	s.pos += n
	return n, true
}

func (s *frameStreamer) Err() error { return nil }

// LoadClip decodes the sound asset at path.
func LoadClip(path string) (*Clip, error) {
	format, ok := media.FormatOf(path)
	if !ok {
		return nil, fmt.Errorf("unsupported format %q (supported: %s)", path, media.SupportedExtsList())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	clip, err := DecodeClip(bytes.NewReader(raw), format)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return clip, nil
}

// DecodeClip decodes a whole asset of the given format.
func DecodeClip(r io.ReadSeeker, format media.Format) (*Clip, error) {
	var (
		rate   int
		frames [][2]float64
		err    error
	)
	switch format {
	case media.WAV:
		rate, frames, err = decodeWAV(r)
	case media.MP3:
		rate, frames, err = decodeMP3(r)
	case media.OGG:
		rate, frames, err = decodeOGG(r)
	case media.FLAC:
		rate, frames, err = decodeFLAC(r)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, err
	}
	return newClip(rate, frames)
}

// interleave folds interleaved samples of the given channel count into
// stereo frames. Mono is copied to both sides; channels past two are dropped.
func interleave(n, channels int, sample func(i int) float64) [][2]float64 {
	if channels < 1 {
		return nil
	}
	frames := make([][2]float64, n/channels)
	for i := range frames {
		l := sample(i * channels)
		r := l
		if channels > 1 {
			r = sample(i*channels + 1)
		}
		frames[i] = [2]float64{l, r}
	}
	return frames
}

// --- WAV ---

func decodeWAV(r io.ReadSeeker) (int, [][2]float64, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return 0, nil, errors.New("invalid WAV file")
	}
	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return 0, nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	var scale, offset float64
	switch bitDepth {
	case 8:
		// 8-bit WAV is unsigned
		scale, offset = 128, 128
	case 16, 24, 32:
		scale = float64(int64(1) << (bitDepth - 1))
	default:
		return 0, nil, fmt.Errorf("unsupported WAV bit depth: %d", bitDepth)
	}

	frames := interleave(len(pcm.Data), int(dec.NumChans), func(i int) float64 {
		return (float64(pcm.Data[i]) - offset) / scale
	})
	return int(dec.SampleRate), frames, nil
}

// --- MP3 ---

func decodeMP3(r io.Reader) (int, [][2]float64, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return 0, nil, err
	}
	// go-mp3 always produces 16-bit stereo.
	raw, err := io.ReadAll(dec)
	if err != nil {
		return 0, nil, fmt.Errorf("reading MP3 frames: %w", err)
	}
	frames := interleave(len(raw)/2, 2, func(i int) float64 {
		return float64(int16(binary.LittleEndian.Uint16(raw[i*2:]))) / 32768
	})
	return dec.SampleRate(), frames, nil
}

// --- OGG Vorbis ---

func decodeOGG(r io.Reader) (int, [][2]float64, error) {
	samples, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return 0, nil, fmt.Errorf("decoding OGG: %w", err)
	}
	frames := interleave(len(samples), format.Channels, func(i int) float64 {
		return float64(samples[i])
	})
	return format.SampleRate, frames, nil
}

// --- FLAC ---

func decodeFLAC(r io.Reader) (int, [][2]float64, error) {
	stream, err := flac.New(r)
	if err != nil {
		return 0, nil, fmt.Errorf("decoding FLAC: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	scale := float64(int64(1) << (info.BitsPerSample - 1))

	var frames [][2]float64
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, nil, fmt.Errorf("decoding FLAC frame: %w", err)
		}
		n := int(frame.Subframes[0].NSamples)
		for i := 0; i < n; i++ {
			left := float64(frame.Subframes[0].Samples[i]) / scale
			right := left
			if channels > 1 {
				right = float64(frame.Subframes[1].Samples[i]) / scale
			}
			frames = append(frames, [2]float64{left, right})
		}
	}
	return int(info.SampleRate), frames, nil
}
