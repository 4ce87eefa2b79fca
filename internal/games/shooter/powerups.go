package shooter

import (
	"time"

	"github.com/vovakirdan/galaxy-shooter/internal/config"
	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

// PowerUpType represents different types of power-up pickups.
type PowerUpType int

const (
	PowerUpRapidFire PowerUpType = iota
	PowerUpSpread
	PowerUpLaser
	PowerUpShield
	PowerUpHealth
	PowerUpBomb
	PowerUpMultiShot
	PowerUpPiercing
	PowerUpTypeCount // Sentinel for counting types
)

// Glyph returns the display character for a power-up type.
func (p PowerUpType) Glyph() rune {
	switch p {
	case PowerUpRapidFire:
		return 'R'
	case PowerUpSpread:
		return 'S'
	case PowerUpLaser:
		return 'L'
	case PowerUpShield:
		return '◊'
	case PowerUpHealth:
		return '♥'
	case PowerUpBomb:
		return 'B'
	case PowerUpMultiShot:
		return 'M'
	case PowerUpPiercing:
		return 'P'
	default:
		return '?'
	}
}

// String returns the name of the power-up type.
func (p PowerUpType) String() string {
	switch p {
	case PowerUpRapidFire:
		return "Rapid Fire"
	case PowerUpSpread:
		return "Spread"
	case PowerUpLaser:
		return "Laser"
	case PowerUpShield:
		return "Shield"
	case PowerUpHealth:
		return "Health"
	case PowerUpBomb:
		return "Bomb"
	case PowerUpMultiShot:
		return "Multi"
	case PowerUpPiercing:
		return "Piercing"
	default:
		return "?"
	}
}

// Color returns the pickup color.
func (p PowerUpType) Color() core.Color {
	switch p {
	case PowerUpRapidFire:
		return core.ColorBrightYellow
	case PowerUpSpread:
		return core.ColorBrightGreen
	case PowerUpLaser:
		return core.ColorBrightMagenta
	case PowerUpShield:
		return core.ColorBrightCyan
	case PowerUpHealth:
		return core.ColorBrightRed
	case PowerUpBomb:
		return core.ColorOrange
	case PowerUpMultiShot:
		return core.ColorBrightBlue
	default:
		return core.ColorYellow
	}
}

// Timed reports whether collecting the type starts a buff.
func (p PowerUpType) Timed() bool {
	return p != PowerUpHealth && p != PowerUpBomb
}

const powerUpSize = 30

// PowerUp is a falling pickup.
type PowerUp struct {
	Type  PowerUpType
	X, Y  float64
	Speed float64 // Fall speed in units per frame
	Pulse float64 // Animation phase only
}

// Update moves the pickup down.
func (p *PowerUp) Update(frames float64) {
	p.Y += p.Speed * frames
	p.Pulse += 0.1 * frames
}

// Bounds returns the pickup hitbox.
func (p *PowerUp) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, powerUpSize, powerUpSize)
}

// rollPowerUpType selects a random power-up type based on weights.
func rollPowerUpType(rng RNG, w config.PowerUpWeights) PowerUpType {
	weights := []struct {
		Type   PowerUpType
		Weight int
	}{
		{PowerUpRapidFire, w.RapidFire},
		{PowerUpSpread, w.Spread},
		{PowerUpLaser, w.Laser},
		{PowerUpShield, w.Shield},
		{PowerUpHealth, w.Health},
		{PowerUpBomb, w.Bomb},
		{PowerUpMultiShot, w.MultiShot},
		{PowerUpPiercing, w.Piercing},
	}

	totalWeight := 0
	for _, e := range weights {
		if e.Weight > 0 {
			totalWeight += e.Weight
		}
	}
	if totalWeight <= 0 {
		return PowerUpRapidFire
	}

	roll := rng.Intn(totalWeight)
	cumulative := 0
	for _, e := range weights {
		if e.Weight <= 0 {
			continue
		}
		cumulative += e.Weight
		if roll < cumulative {
			return e.Type
		}
	}

	return PowerUpRapidFire
}

// Buff is an active time-boxed power-up effect.
type Buff struct {
	Type     PowerUpType
	Start    time.Duration // Simulation clock at collection
	Duration time.Duration
}

// Expired reports whether now - Start > Duration.
func (b Buff) Expired(now time.Duration) bool {
	return now-b.Start > b.Duration
}

// Remaining returns how long the buff still lasts.
func (b Buff) Remaining(now time.Duration) time.Duration {
	left := b.Duration - (now - b.Start)
	if left < 0 {
		return 0
	}
	return left
}
