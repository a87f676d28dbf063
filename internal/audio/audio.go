// Package audio plays short procedural sound effects through oto.
package audio

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundBounce SoundKind = iota
	SoundStart
	SoundPause
	SoundRestart
)

// maxVoices limits simultaneous effects; a fast snake on a narrow board
// can bounce every frame.
const maxVoices = 3

// System owns the oto context. A nil *System is a valid, silent player.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	voices int32
}

// Init opens the default output device.
func Init() (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &System{ctx: ctx, ready: ready, volume: 0.58}, nil
}

// SetVolume sets the effect volume in [0, 1].
func (s *System) SetVolume(vol float64) {
	if s == nil {
		return
	}
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}
	s.volume = vol
}

// Play starts kind in the background. It never blocks the caller.
func (s *System) Play(kind SoundKind) {
	if s == nil || s.volume <= 0 {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	if atomic.AddInt32(&s.voices, 1) > maxVoices {
		atomic.AddInt32(&s.voices, -1)
		return
	}
	samples := Generate(kind)
	if len(samples) == 0 {
		atomic.AddInt32(&s.voices, -1)
		return
	}
	volume := s.volume
	go func() {
		defer atomic.AddInt32(&s.voices, -1)
		player := s.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
