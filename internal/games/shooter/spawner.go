package shooter

import (
	"github.com/vovakirdan/galaxy-shooter/internal/config"
	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

const formationStagger = 30

// Spawner introduces enemies and power-ups according to the current level.
type Spawner struct {
	cfg       config.ShooterSpawner
	powerUps  config.ShooterPowerUps
	fireScale float64
	dm        *config.DifficultyManager
	rng       RNG
	worldW    float64
	timer     float64 // Frames since the last spawn event
}

// NewSpawner creates a spawner for a worldW wide playfield.
func NewSpawner(cfg config.ShooterConfig, dm *config.DifficultyManager, rng RNG, worldW float64) *Spawner {
	return &Spawner{
		cfg:       cfg.Spawner,
		powerUps:  cfg.PowerUps,
		fireScale: cfg.Enemies.FireChanceScale,
		dm:        dm,
		rng:       rng,
		worldW:    worldW,
	}
}

// Reset restarts the spawn timer.
func (s *Spawner) Reset() {
	s.timer = 0
}

// Tick advances the timer by frames and returns whatever spawned. The
// level quota is decremented by the number of enemies returned.
func (s *Spawner) Tick(frames float64, lvl *Level) ([]*Enemy, *PowerUp) {
	var enemies []*Enemy
	s.timer += frames
	if s.timer >= lvl.SpawnDelay && lvl.Remaining > 0 {
		// Keep the overshoot so long frames do not slow the cadence.
		s.timer -= lvl.SpawnDelay
		enemies = s.spawnEnemies(lvl)
		lvl.Remaining -= len(enemies)
	}

	var pu *PowerUp
	if s.rng.Float64() < lvl.PowerUpRate*frames {
		pu = s.SpawnPowerUp(s.rng.Float64()*(s.worldW-powerUpSize), -powerUpSize)
	}
	return enemies, pu
}

func (s *Spawner) spawnEnemies(lvl *Level) []*Enemy {
	if lvl.Has(FeatureBoss) && lvl.Remaining == 1 {
		st := EnemyDreadnought.Stats()
		return []*Enemy{s.newEnemy(EnemyDreadnought, (s.worldW-st.Width)/2, -st.Height, lvl.Number)}
	}

	// Boss levels keep one slot for the dreadnought.
	need := s.cfg.FormationSize
	if lvl.Has(FeatureBoss) {
		need++
	}
	if lvl.Has(FeatureFormations) && s.cfg.FormationSize > 1 && lvl.Remaining >= need &&
		s.rng.Float64() < s.cfg.FormationChance {
		return s.formation(lvl)
	}

	t := s.pick(lvl)
	st := t.Stats()
	return []*Enemy{s.newEnemy(t, s.rng.Float64()*(s.worldW-st.Width), -st.Height, lvl.Number)}
}

// formation spawns a vertical column of one type with alternating
// horizontal offsets.
func (s *Spawner) formation(lvl *Level) []*Enemy {
	t := s.pick(lvl)
	st := t.Stats()
	column := Range(s.rng, formationStagger, s.worldW-st.Width-formationStagger)

	enemies := make([]*Enemy, 0, s.cfg.FormationSize)
	for i := range s.cfg.FormationSize {
		offset := float64((i+1)/2) * formationStagger
		if i%2 == 1 {
			offset = -offset
		}
		x := core.ClampF(column+offset, 0, s.worldW-st.Width)
		y := -st.Height - float64(i)*s.cfg.FormationGap
		enemies = append(enemies, s.newEnemy(t, x, y, lvl.Number))
	}
	return enemies
}

func (s *Spawner) pick(lvl *Level) EnemyType {
	if len(lvl.Pool) == 0 {
		return EnemyScout
	}
	return lvl.Pool[s.rng.Intn(len(lvl.Pool))]
}

func (s *Spawner) newEnemy(t EnemyType, x, y float64, level int) *Enemy {
	return NewEnemy(t, x, y, level, s.dm, s.fireScale)
}

// SpawnPowerUp creates a power-up at (x, y) with a weighted random type.
func (s *Spawner) SpawnPowerUp(x, y float64) *PowerUp {
	return &PowerUp{
		Type:  rollPowerUpType(s.rng, s.powerUps.Weights),
		X:     x,
		Y:     y,
		Speed: s.powerUps.FallSpeed,
	}
}
