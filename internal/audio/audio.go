// Package audio plays a short procedural chime whenever the swarm starts
// moving to a new frame.
package audio

import (
	"io"
	"log/slog"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"curveswarm/internal/swarm"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// DefaultVolume keeps the chime well under the visuals.
const DefaultVolume = 0.35

// Player owns the output device. A nil *Player is silent.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	log    *slog.Logger
}

// New opens the output device. Playback is skipped until it is ready.
func New(volume float64, log *slog.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Player{ctx: ctx, ready: ready, volume: clampF(volume, 0, 1), log: log}, nil
}

// Ready reports whether the device finished initializing.
func (p *Player) Ready() bool {
	if p == nil {
		return false
	}
	select {
	case <-p.ready:
		return true
	default:
		return false
	}
}

// Chime plays the chime for a frame from the given generator. It never
// blocks the caller.
func (p *Player) Chime(kind swarm.GeneratorKind) {
	if !p.Ready() || p.volume <= 0 {
		return
	}
	samples := Chime(kind)
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.log.Warn("close audio player", "err", err)
		}
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

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
