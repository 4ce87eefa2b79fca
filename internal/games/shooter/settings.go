package shooter

import (
	"math"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

const (
	defaultMasterVolume = 0.7
	defaultSFXVolume    = 0.8
	volumeStep          = 0.1
)

// Settings holds audio volumes and the persisted records.
type Settings struct {
	store     core.KVStore
	Master    float64
	SFX       float64
	HighScore int
	LastLevel int // Furthest level the player may start from
}

// LoadSettings reads settings from store, falling back to defaults for
// missing values and clamping the rest.
func LoadSettings(store core.KVStore) *Settings {
	s := &Settings{
		store:     store,
		Master:    defaultMasterVolume,
		SFX:       defaultSFXVolume,
		LastLevel: 1,
	}
	if v, ok := store.GetFloat(keyMaster); ok {
		s.Master = clampVolume(v)
	}
	if v, ok := store.GetFloat(keySFX); ok {
		s.SFX = clampVolume(v)
	}
	if v, ok := store.GetInt(keyHighScore); ok {
		s.HighScore = core.Max(v, 0)
	}
	if v, ok := store.GetInt(keyLastLevel); ok {
		s.LastLevel = core.Max(v, 1)
	}
	return s
}

func clampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	// Round to the step grid so repeated adjustments do not drift.
	return core.ClampF(math.Round(v*100)/100, 0, 1)
}

// AdjustMaster moves the master volume by delta steps.
func (s *Settings) AdjustMaster(delta int) {
	s.Master = clampVolume(s.Master + float64(delta)*volumeStep)
	_ = s.store.SetFloat(keyMaster, s.Master)
}

// AdjustSFX moves the effects volume by delta steps.
func (s *Settings) AdjustSFX(delta int) {
	s.SFX = clampVolume(s.SFX + float64(delta)*volumeStep)
	_ = s.store.SetFloat(keySFX, s.SFX)
}

// Gain is the factor applied to every cue.
func (s *Settings) Gain() float64 {
	return s.Master * s.SFX
}

// RecordScore persists score if it beats the high score.
func (s *Settings) RecordScore(score int) bool {
	if score <= s.HighScore {
		return false
	}
	s.HighScore = score
	_ = s.store.SetInt(keyHighScore, score)
	return true
}

// ReachLevel raises the last reached level to n if it is further.
func (s *Settings) ReachLevel(n int) bool {
	if n <= s.LastLevel {
		return false
	}
	s.LastLevel = n
	_ = s.store.SetInt(keyLastLevel, n)
	return true
}

// ResetRecords clears the high score and the level milestone.
func (s *Settings) ResetRecords() {
	s.HighScore = 0
	s.LastLevel = 1
	_ = s.store.SetInt(keyHighScore, 0)
	_ = s.store.SetInt(keyLastLevel, 1)
}
