package shooter

import (
	"math"
	"time"

	"github.com/vovakirdan/galaxy-shooter/internal/config"
	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

// EnemyType is the closed set of enemy ship classes.
type EnemyType int

const (
	EnemyScout EnemyType = iota
	EnemyFighter
	EnemyBomber
	EnemyInterceptor
	EnemyDestroyer
	EnemyDreadnought
	EnemyTypeCount // Sentinel for counting types
)

// String returns the lowercase class name.
func (t EnemyType) String() string {
	switch t {
	case EnemyScout:
		return "scout"
	case EnemyFighter:
		return "fighter"
	case EnemyBomber:
		return "bomber"
	case EnemyInterceptor:
		return "interceptor"
	case EnemyDestroyer:
		return "destroyer"
	case EnemyDreadnought:
		return "dreadnought"
	default:
		return "unknown"
	}
}

// AllEnemyTypes returns every enemy type in definition order.
func AllEnemyTypes() []EnemyType {
	types := make([]EnemyType, 0, EnemyTypeCount)
	for t := EnemyScout; t < EnemyTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// EnemyStats are the level-1 base values of an enemy class.
type EnemyStats struct {
	Width, Height float64
	Speed         float64 // Units per frame
	Health        int
	Score         int
	ShootChance   float64 // Probability per frame once the cooldown is over
	ShootDelay    time.Duration
	Color         core.Color
	Explosion     ExplosionKind
}

var enemyStats = [EnemyTypeCount]EnemyStats{
	EnemyScout:       {28, 28, 1.5, 1, 10, 0.004, 2500 * time.Millisecond, core.ColorBrightRed, ExplosionSmall},
	EnemyFighter:     {32, 32, 1.2, 2, 20, 0.006, 2000 * time.Millisecond, core.ColorOrange, ExplosionSmall},
	EnemyBomber:      {38, 38, 0.8, 3, 30, 0.008, 1800 * time.Millisecond, core.ColorYellow, ExplosionSmall},
	EnemyInterceptor: {30, 34, 2.0, 2, 25, 0.007, 1500 * time.Millisecond, core.ColorBrightMagenta, ExplosionSmall},
	EnemyDestroyer:   {48, 42, 0.6, 5, 50, 0.010, 1200 * time.Millisecond, core.ColorMagenta, ExplosionSmall},
	EnemyDreadnought: {65, 55, 0.4, 8, 80, 0.012, 1000 * time.Millisecond, core.ColorRed, ExplosionBoss},
}

// Stats returns the base stats of the type.
func (t EnemyType) Stats() EnemyStats {
	if t < 0 || t >= EnemyTypeCount {
		return enemyStats[EnemyScout]
	}
	return enemyStats[t]
}

const (
	damageFlashFrames = 10
	bossHoldY         = 100
)

// Enemy is a live enemy ship.
type Enemy struct {
	Type        EnemyType
	X, Y        float64
	W, H        float64
	Speed       float64
	Health      int
	MaxHealth   int
	Score       int
	ShootChance float64
	ShootDelay  time.Duration
	Phase       float64 // Movement phase in frames

	shootTimer time.Duration
	flash      float64
	removed    bool
}

// NewEnemy creates an enemy of type t at (x, y) with stats scaled for level.
// fireScale multiplies the per-type shoot chance before level scaling.
func NewEnemy(t EnemyType, x, y float64, level int, dm *config.DifficultyManager, fireScale float64) *Enemy {
	st := t.Stats()
	return &Enemy{
		Type:        t,
		X:           x,
		Y:           y,
		W:           st.Width,
		H:           st.Height,
		Speed:       dm.Speed(st.Speed, level),
		Health:      dm.Health(st.Health, level),
		MaxHealth:   dm.Health(st.Health, level),
		Score:       dm.Score(st.Score, level),
		ShootChance: dm.ShootChance(st.ShootChance*fireScale, level),
		ShootDelay:  st.ShootDelay,
	}
}

// Bounds returns the enemy hitbox.
func (e *Enemy) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Update advances movement and timers.
func (e *Enemy) Update(frames float64, dt time.Duration, worldW float64) {
	e.Phase += frames

	switch e.Type {
	case EnemyFighter:
		e.Y += e.Speed * frames
		e.X += math.Sin(e.Phase*0.03) * 0.8 * frames
	case EnemyInterceptor:
		e.Y += e.Speed * frames
		e.X += math.Sin(e.Phase*0.08) * 1.5 * frames
	case EnemyDestroyer:
		e.Y += e.Speed * frames
		e.X += math.Sin(e.Phase*0.02) * 0.3 * frames
	case EnemyDreadnought:
		if e.Y < bossHoldY {
			e.Y = math.Min(e.Y+e.Speed*frames, bossHoldY)
		} else {
			e.X += math.Sin(e.Phase*0.015) * 0.8 * frames
		}
	default:
		e.Y += e.Speed * frames
	}

	e.X = core.ClampF(e.X, 0, worldW-e.W)

	if e.flash > 0 {
		e.flash -= frames
	}
	if e.shootTimer > 0 {
		e.shootTimer -= dt
	}
}

// TryShoot rolls the fire chance once the cooldown has elapsed and returns
// the fired bullet, or nil.
func (e *Enemy) TryShoot(frames float64, rng RNG, bulletSpeed float64) *Bullet {
	if e.shootTimer > 0 || e.Y < 0 {
		return nil
	}
	if rng.Float64() >= e.ShootChance*frames {
		return nil
	}
	e.shootTimer = e.ShootDelay
	return NewEnemyBullet(e.X+e.W/2-enemyBulletWidth/2, e.Bottom(), bulletSpeed)
}

// TakeDamage subtracts d hit points and reports whether the enemy died.
// Non-positive damage is ignored so health never increases.
func (e *Enemy) TakeDamage(d int) bool {
	if d > 0 {
		e.Health -= d
		e.flash = damageFlashFrames
	}
	return e.Dead()
}

// Dead reports whether health has reached zero.
func (e *Enemy) Dead() bool {
	return e.Health <= 0
}

// Remove takes the enemy out of play without it counting as a kill.
func (e *Enemy) Remove() {
	e.removed = true
}

// Gone reports whether the enemy must be filtered out of the active set.
func (e *Enemy) Gone() bool {
	return e.removed || e.Dead()
}

// Flashing reports whether the damage flash is visible.
func (e *Enemy) Flashing() bool {
	return e.flash > 0
}

// Bottom returns the y-coordinate of the lower edge.
func (e *Enemy) Bottom() float64 {
	return e.Y + e.H
}

// OnScreen reports whether any part of the enemy is inside the playfield.
func (e *Enemy) OnScreen(worldH float64) bool {
	return e.Bottom() > 0 && e.Y < worldH
}

// Center returns the hitbox center.
func (e *Enemy) Center() (float64, float64) {
	return e.X + e.W/2, e.Y + e.H/2
}
