package core

import "time"

// Waveform selects the timbre of a sound cue.
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveSine
	WaveSawtooth
	WaveTriangle
	WaveNoise
)

// String returns the waveform name.
func (w Waveform) String() string {
	switch w {
	case WaveSquare:
		return "square"
	case WaveSine:
		return "sine"
	case WaveSawtooth:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	case WaveNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// SoundCue is a symbolic description of a short sound effect.
type SoundCue struct {
	Name     string
	Pitch    float64 // Hz
	Duration time.Duration
	Volume   float64 // 0..1
	Wave     Waveform
}

// WithVolume returns a copy of the cue scaled by factor and clamped to [0, 1].
func (c SoundCue) WithVolume(factor float64) SoundCue {
	c.Volume = ClampF(c.Volume*factor, 0, 1)
	return c
}

// SoundPlayer realizes sound cues. Play must not block the caller.
type SoundPlayer interface {
	Play(cue SoundCue)
}

// NopSound is a SoundPlayer that discards every cue.
type NopSound struct{}

// Play does nothing.
func (NopSound) Play(SoundCue) {}
