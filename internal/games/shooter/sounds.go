package shooter

import (
	"time"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

// Sound cues triggered by gameplay events.
var (
	CueShot          = core.SoundCue{Name: "shot", Pitch: 800, Duration: 100 * time.Millisecond, Volume: 0.2, Wave: core.WaveSquare}
	CueHit           = core.SoundCue{Name: "hit", Pitch: 300, Duration: 120 * time.Millisecond, Volume: 0.3, Wave: core.WaveSquare}
	CueKill          = core.SoundCue{Name: "kill", Pitch: 150, Duration: 400 * time.Millisecond, Volume: 0.5, Wave: core.WaveSawtooth}
	CueShield        = core.SoundCue{Name: "shield", Pitch: 600, Duration: 150 * time.Millisecond, Volume: 0.4, Wave: core.WaveSine}
	CuePowerUp       = core.SoundCue{Name: "powerup", Pitch: 1000, Duration: 200 * time.Millisecond, Volume: 0.4, Wave: core.WaveSine}
	CueGold          = core.SoundCue{Name: "gold", Pitch: 1200, Duration: 80 * time.Millisecond, Volume: 0.3, Wave: core.WaveTriangle}
	CueSpecial       = core.SoundCue{Name: "special", Pitch: 200, Duration: 400 * time.Millisecond, Volume: 0.6, Wave: core.WaveNoise}
	CueLevelComplete = core.SoundCue{Name: "level_complete", Pitch: 880, Duration: 600 * time.Millisecond, Volume: 0.5, Wave: core.WaveSine}
	CueDeath         = core.SoundCue{Name: "death", Pitch: 100, Duration: 800 * time.Millisecond, Volume: 0.6, Wave: core.WaveSawtooth}
)

// play scales cue by the volume settings and hands it to the sound player.
func (g *Game) play(cue core.SoundCue) {
	gain := g.settings.Gain()
	if gain <= 0 {
		return
	}
	g.sound.Play(cue.WithVolume(gain))
}
