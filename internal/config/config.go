// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ShooterConfig contains all tunable configuration for the shooter.
type ShooterConfig struct {
	Player     ShooterPlayer    `yaml:"player"`
	Enemies    ShooterEnemies   `yaml:"enemies"`
	Drops      ShooterDrops     `yaml:"drops"`
	PowerUps   ShooterPowerUps  `yaml:"powerups"`
	Spawner    ShooterSpawner   `yaml:"spawner"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterPlayer defines ship handling and timers.
type ShooterPlayer struct {
	Acceleration      float64 `yaml:"acceleration"`  // Speed gained per frame while steering
	Friction          float64 `yaml:"friction"`      // Velocity multiplier per frame when idle
	MaxSpeed          float64 `yaml:"max_speed"`     // Units per frame
	ShootDelayMS      int     `yaml:"shoot_delay_ms"`
	SpecialCooldownMS int     `yaml:"special_cooldown_ms"`
	InvulnerableMS    int     `yaml:"invulnerable_ms"`
	ExtraLives        int     `yaml:"extra_lives"` // Added on top of the health upgrade table
}

// ShooterEnemies defines global enemy tuning.
type ShooterEnemies struct {
	FireChanceScale float64 `yaml:"fire_chance_scale"` // Multiplier on per-type shoot chance
	BulletSpeed     float64 `yaml:"bullet_speed"`
	RamDamage       int     `yaml:"ram_damage"` // Damage an enemy takes when rammed into a shield
}

// ShooterDrops defines what destroyed enemies leave behind.
type ShooterDrops struct {
	PowerUpChance float64 `yaml:"powerup_chance"`
	GoldChance    float64 `yaml:"gold_chance"`   // Rolled only if the power-up roll failed
	PickupRadius  float64 `yaml:"pickup_radius"` // Gold magnet radius as a multiple of ship width
}

// ShooterPowerUps defines power-up durations and spawn weights.
type ShooterPowerUps struct {
	DurationMS       int            `yaml:"duration_ms"`
	ShieldDurationMS int            `yaml:"shield_duration_ms"`
	FallSpeed        float64        `yaml:"fall_speed"`
	BombDamage       int            `yaml:"bomb_damage"`
	Weights          PowerUpWeights `yaml:"weights"`
}

// PowerUpWeights are relative draw weights per power-up type.
type PowerUpWeights struct {
	RapidFire int `yaml:"rapid_fire"`
	Spread    int `yaml:"spread"`
	Laser     int `yaml:"laser"`
	Shield    int `yaml:"shield"`
	Health    int `yaml:"health"`
	Bomb      int `yaml:"bomb"`
	MultiShot int `yaml:"multi_shot"`
	Piercing  int `yaml:"piercing"`
}

// ShooterSpawner defines spawn pattern tuning.
type ShooterSpawner struct {
	FormationChance float64 `yaml:"formation_chance"`
	FormationSize   int     `yaml:"formation_size"`
	FormationGap    float64 `yaml:"formation_gap"` // Vertical distance between formation ships
}

// DifficultyConfig defines level-based stat scaling.
type DifficultyConfig struct {
	Enabled       bool                `yaml:"enabled"`
	Coefficients  CoefficientConfig   `yaml:"coefficients"`
	Extrapolation ExtrapolationConfig `yaml:"extrapolation"`
}

// CoefficientConfig holds per-attribute difficulty coefficients.
// A stat at level n is (1 + (n-1)*coefficient) * base.
type CoefficientConfig struct {
	Speed       float64 `yaml:"speed"`
	Health      float64 `yaml:"health"`
	Score       float64 `yaml:"score"`
	ShootChance float64 `yaml:"shoot_chance"`
}

// ExtrapolationConfig defines how levels past the catalog grow.
type ExtrapolationConfig struct {
	QuotaPerLevel   int     `yaml:"quota_per_level"`
	SpawnDelayStep  float64 `yaml:"spawn_delay_step"`  // Frames removed per extra level
	SpawnDelayFloor float64 `yaml:"spawn_delay_floor"` // Minimum spawn delay in frames
	PowerUpRateStep float64 `yaml:"powerup_rate_step"`
	PowerUpRateCap  float64 `yaml:"powerup_rate_cap"`
	BossEvery       int     `yaml:"boss_every"` // Boss level period past the catalog
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a CLI value to a preset. An empty string is valid and
// means "leave the loaded config untouched".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
}

// IsFixedPreset returns true if the preset disables scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
