package audio

import (
	"math"
	"math/rand/v2"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

const (
	attackSeconds = 0.005
	// Amplitude falls to e^-decayRate by the end of the cue.
	decayRate = 4.0
)

// tone is a one-shot oscillator with a short attack and exponential decay.
type tone struct {
	wave     core.Waveform
	freq     float64
	rate     beep.SampleRate
	length   int
	position int
	phase    float64
	noise    *rand.Rand
}

// NewTone returns a streamer that renders cue at the given sample rate.
// Volume is applied separately; the raw tone peaks at 1.
func NewTone(cue core.SoundCue, rate beep.SampleRate, seed uint64) beep.Streamer {
	return &tone{
		wave:   cue.Wave,
		freq:   cue.Pitch,
		rate:   rate,
		length: rate.N(cue.Duration),
		noise:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.length {
			return i, true
		}
		val := t.sample() * t.envelope()
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) sample() float64 {
	switch t.wave {
	case core.WaveSine:
		return math.Sin(2 * math.Pi * t.phase)
	case core.WaveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case core.WaveSawtooth:
		return 2 * (t.phase - 0.5)
	case core.WaveTriangle:
		return 4*math.Abs(t.phase-0.5) - 1
	case core.WaveNoise:
		return t.noise.Float64()*2 - 1
	default:
		return 0
	}
}

func (t *tone) envelope() float64 {
	secs := float64(t.position) / float64(t.rate)
	if secs < attackSeconds {
		return secs / attackSeconds
	}
	progress := float64(t.position) / float64(t.length)
	return math.Exp(-decayRate * progress)
}
