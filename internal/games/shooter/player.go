package shooter

import (
	"math"
	"time"

	"github.com/vovakirdan/galaxy-shooter/internal/config"
	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

const (
	playerWidth   = 45
	playerHeight  = 60
	playerMarginY = 20

	rapidFireSpeedBoost = 1.2
	empDamage           = 2
)

// Player is the ship controlled by the user.
type Player struct {
	X, Y float64
	W, H float64
	VX   float64

	Lives    int
	MaxLives int

	HasShield     bool
	ShieldHits    int
	MaxShieldHits int

	Buffs []Buff

	cfg              config.ShooterPlayer
	fireDivisor      float64
	shootCooldown    time.Duration
	specialCooldown  time.Duration
	invulnerableLeft time.Duration
}

// NewPlayer places a ship at the bottom center with stats derived from the
// persisted upgrades.
func NewPlayer(cfg config.ShooterPlayer, prog *Progression, worldW, worldH float64) *Player {
	p := &Player{
		X:   worldW/2 - playerWidth/2,
		Y:   worldH - playerHeight - playerMarginY,
		W:   playerWidth,
		H:   playerHeight,
		cfg: cfg,
	}
	p.ApplyUpgrades(prog)
	p.Lives = p.MaxLives
	return p
}

// ApplyUpgrades recomputes derived stats from progression. Lives above the
// new cap are trimmed.
func (p *Player) ApplyUpgrades(prog *Progression) {
	p.fireDivisor = prog.FireDelayDivisor()
	p.MaxShieldHits = prog.ShieldHitCap()
	p.MaxLives = prog.MaxLives() + core.Max(p.cfg.ExtraLives, 0)
	p.Lives = core.Min(p.Lives, p.MaxLives)
}

// Bounds returns the ship hitbox.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Center returns the hitbox center.
func (p *Player) Center() (float64, float64) {
	return p.X + p.W/2, p.Y + p.H/2
}

// Update applies steering and counts timers down.
func (p *Player) Update(left, right bool, frames float64, dt time.Duration, worldW float64) {
	maxSpeed := p.cfg.MaxSpeed
	if p.Has(PowerUpRapidFire) {
		maxSpeed *= rapidFireSpeedBoost
	}

	switch {
	case left && !right:
		p.VX -= p.cfg.Acceleration * frames
	case right && !left:
		p.VX += p.cfg.Acceleration * frames
	default:
		p.VX *= math.Pow(p.cfg.Friction, frames)
	}
	p.VX = core.ClampF(p.VX, -maxSpeed, maxSpeed)
	p.X += p.VX * frames

	if p.X < 0 {
		p.X, p.VX = 0, 0
	}
	if p.X > worldW-p.W {
		p.X, p.VX = worldW-p.W, 0
	}

	p.shootCooldown = countDown(p.shootCooldown, dt)
	p.specialCooldown = countDown(p.specialCooldown, dt)
	p.invulnerableLeft = countDown(p.invulnerableLeft, dt)
}

func countDown(left, dt time.Duration) time.Duration {
	if left <= dt {
		return 0
	}
	return left - dt
}

// Has reports whether a buff of type t is active.
func (p *Player) Has(t PowerUpType) bool {
	for _, b := range p.Buffs {
		if b.Type == t {
			return true
		}
	}
	return false
}

// AddBuff starts a buff, replacing any active buff of the same type.
func (p *Player) AddBuff(t PowerUpType, now, duration time.Duration) {
	p.removeBuff(t)
	p.Buffs = append(p.Buffs, Buff{Type: t, Start: now, Duration: duration})
}

func (p *Player) removeBuff(t PowerUpType) {
	active := p.Buffs[:0]
	for _, b := range p.Buffs {
		if b.Type != t {
			active = append(active, b)
		}
	}
	p.Buffs = active
}

// ExpireBuffs drops buffs whose time is up.
func (p *Player) ExpireBuffs(now time.Duration) {
	active := p.Buffs[:0]
	for _, b := range p.Buffs {
		if b.Expired(now) {
			if b.Type == PowerUpShield {
				p.HasShield = false
			}
			continue
		}
		active = append(active, b)
	}
	p.Buffs = active
}

// RaiseShield activates the shield with a fresh hit counter.
func (p *Player) RaiseShield(now, duration time.Duration) {
	p.HasShield = true
	p.ShieldHits = 0
	p.AddBuff(PowerUpShield, now, duration)
}

// AbsorbHit charges the shield with hits. The shield collapses at the cap.
func (p *Player) AbsorbHit(hits int) {
	p.ShieldHits += hits
	if p.ShieldHits >= p.MaxShieldHits {
		p.ShieldHits = p.MaxShieldHits
		p.HasShield = false
		p.removeBuff(PowerUpShield)
	}
}

// Heal restores one life up to the cap.
func (p *Player) Heal() {
	p.Lives = core.Min(p.Lives+1, p.MaxLives)
}

// LoseLife removes one life and starts the invulnerability window.
func (p *Player) LoseLife() {
	if p.Lives > 0 {
		p.Lives--
	}
	p.invulnerableLeft = time.Duration(p.cfg.InvulnerableMS) * time.Millisecond
}

// Invulnerable reports whether contacts are currently ignored.
func (p *Player) Invulnerable() bool {
	return p.invulnerableLeft > 0
}

// Dead reports whether no lives are left.
func (p *Player) Dead() bool {
	return p.Lives <= 0
}

// ShootDelay returns the current interval between shots.
func (p *Player) ShootDelay() time.Duration {
	delay := float64(p.cfg.ShootDelayMS) * float64(time.Millisecond) / p.fireDivisor
	if p.Has(PowerUpRapidFire) {
		delay /= 2
	}
	return time.Duration(delay)
}

// CanShoot reports whether the shot cooldown is over.
func (p *Player) CanShoot() bool {
	return p.shootCooldown <= 0
}

// Shoot fires the pattern of the highest priority active buff and starts
// the cooldown. It returns nil while cooling down.
func (p *Player) Shoot() []*Bullet {
	if !p.CanShoot() {
		return nil
	}
	p.shootCooldown = p.ShootDelay()

	cx := p.X + p.W/2
	switch {
	case p.Has(PowerUpLaser):
		return []*Bullet{NewPlayerBullet(BulletLaser, cx-laserWidth/2, p.Y, 0, -8)}
	case p.Has(PowerUpSpread):
		x := cx - bulletWidth/2
		return []*Bullet{
			NewPlayerBullet(BulletNormal, x, p.Y, 0, -7),
			NewPlayerBullet(BulletNormal, x, p.Y, -1.5, -6),
			NewPlayerBullet(BulletNormal, x, p.Y, 1.5, -6),
		}
	case p.Has(PowerUpMultiShot):
		return []*Bullet{
			NewPlayerBullet(BulletNormal, p.X+8, p.Y, 0, -7),
			NewPlayerBullet(BulletNormal, cx-bulletWidth/2, p.Y, 0, -7),
			NewPlayerBullet(BulletNormal, p.X+p.W-12, p.Y, 0, -7),
		}
	case p.Has(PowerUpPiercing):
		return []*Bullet{NewPlayerBullet(BulletPiercing, cx-bulletWidth/2, p.Y, 0, -7)}
	default:
		return []*Bullet{NewPlayerBullet(BulletNormal, cx-bulletWidth/2, p.Y, 0, -7)}
	}
}

// SpecialReady reports whether the EMP burst can be used.
func (p *Player) SpecialReady() bool {
	return p.specialCooldown <= 0
}

// SpecialCooldown returns the time until the EMP burst is ready.
func (p *Player) SpecialCooldown() time.Duration {
	return p.specialCooldown
}

// UseSpecial starts the special cooldown and reports whether it was ready.
func (p *Player) UseSpecial() bool {
	if !p.SpecialReady() {
		return false
	}
	p.specialCooldown = time.Duration(p.cfg.SpecialCooldownMS) * time.Millisecond
	return true
}
