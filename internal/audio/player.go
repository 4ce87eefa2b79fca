// Package audio realizes game sound cues through gopxl/beep.
// When no output device is available the player stays silent.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

// SampleRate is the output rate used for every cue.
const SampleRate = beep.SampleRate(44100)

// output is the device the mixer plays into.
type output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }

// Player mixes cues onto a single speaker stream.
type Player struct {
	mu     sync.Mutex
	log    *log.Logger
	out    output
	mixer  *beep.Mixer
	ready  bool
	played uint64
}

var _ core.SoundPlayer = (*Player)(nil)

// New creates a player bound to the system speaker. Call Open before use.
func New(logger *log.Logger) *Player {
	return newPlayer(logger, speakerOutput{})
}

func newPlayer(logger *log.Logger, out output) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		log:   logger,
		out:   out,
		mixer: &beep.Mixer{},
	}
}

// Open initializes the speaker. Failure is logged once and leaves the
// player silent; it is never fatal.
func (p *Player) Open() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return
	}
	if err := p.out.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		p.log.Warn("audio unavailable, continuing without sound", "err", err)
		return
	}
	p.out.Play(p.mixer)
	p.ready = true
	p.log.Debug("audio ready", "rate", int(SampleRate))
}

// Ready reports whether cues reach an output device.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Play queues cue on the mixer and returns immediately.
func (p *Player) Play(cue core.SoundCue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || cue.Volume <= 0 || cue.Duration <= 0 {
		return
	}
	p.played++
	s := withVolume(NewTone(cue, SampleRate, p.played), cue.Volume)

	p.out.Lock()
	p.mixer.Add(s)
	p.out.Unlock()
}

// Close drops every queued cue and silences the player.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.out.Lock()
	p.mixer.Clear()
	p.out.Unlock()
	p.ready = false
}

// withVolume scales a stream linearly; effects.Volume works in log space.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
