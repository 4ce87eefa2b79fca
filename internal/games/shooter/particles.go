package shooter

import (
	"math"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

// ExplosionKind sizes an explosion.
type ExplosionKind int

const (
	ExplosionSmall ExplosionKind = iota
	ExplosionBoss
	ExplosionPlayer
)

type explosionSpec struct {
	life      float64 // Frames
	maxRadius float64
	particles int
	color     core.Color
}

var explosionSpecs = map[ExplosionKind]explosionSpec{
	ExplosionSmall:  {life: 45, maxRadius: 50, particles: 15, color: core.ColorOrange},
	ExplosionBoss:   {life: 90, maxRadius: 100, particles: 25, color: core.ColorBrightRed},
	ExplosionPlayer: {life: 75, maxRadius: 80, particles: 20, color: core.ColorBrightCyan},
}

// ParticleKind distinguishes visual particle variants.
type ParticleKind int

const (
	ParticleDebris ParticleKind = iota
	ParticleHit
	ParticleCollect
	ParticleEMP
)

const particleDecay = 0.95

// Particle is a short-lived visual fragment with no gameplay effect.
type Particle struct {
	Kind    ParticleKind
	X, Y    float64
	VX, VY  float64
	Life    float64 // Frames remaining
	MaxLife float64
	Size    float64
	Color   core.Color
}

// Update moves the particle and decays its velocity.
func (p *Particle) Update(frames float64) {
	p.X += p.VX * frames
	p.Y += p.VY * frames
	decay := math.Pow(particleDecay, frames)
	p.VX *= decay
	p.VY *= decay
	p.Life -= frames
}

// Alpha returns the fade-out intensity in [0, 1].
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

// Dead reports whether the particle has expired.
func (p *Particle) Dead() bool {
	return p.Life <= 0
}

// Explosion is an expanding ring drawn beneath the ships.
type Explosion struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Life      float64
	MaxLife   float64
	Color     core.Color
}

// Update grows the ring as it ages.
func (e *Explosion) Update(frames float64) {
	e.Life -= frames
	e.Radius = e.MaxRadius * (1 - core.ClampF(e.Life/e.MaxLife, 0, 1))
}

// Alpha returns the fade-out intensity in [0, 1].
func (e *Explosion) Alpha() float64 {
	return core.ClampF(e.Life/e.MaxLife, 0, 1)
}

// Effects owns every particle and explosion of a run.
type Effects struct {
	Particles  []*Particle
	Explosions []*Explosion
	rng        RNG
}

// NewEffects creates an empty effect system drawing randomness from rng.
func NewEffects(rng RNG) *Effects {
	return &Effects{
		Particles:  make([]*Particle, 0, 128),
		Explosions: make([]*Explosion, 0, 16),
		rng:        rng,
	}
}

// Clear removes all effects.
func (fx *Effects) Clear() {
	fx.Particles = fx.Particles[:0]
	fx.Explosions = fx.Explosions[:0]
}

// Explode spawns a ring and a debris burst at (x, y).
func (fx *Effects) Explode(x, y float64, kind ExplosionKind) {
	spec, ok := explosionSpecs[kind]
	if !ok {
		spec = explosionSpecs[ExplosionSmall]
	}
	fx.Explosions = append(fx.Explosions, &Explosion{
		X: x, Y: y,
		MaxRadius: spec.maxRadius,
		Life:      spec.life,
		MaxLife:   spec.life,
		Color:     spec.color,
	})
	for range spec.particles {
		fx.burst(ParticleDebris, x, y, Range(fx.rng, 4, 12), Range(fx.rng, 20, 50), 3, spec.color)
	}
}

// Hit spawns a few sparks where a bullet struck.
func (fx *Effects) Hit(x, y float64, c core.Color) {
	for range 5 {
		fx.burst(ParticleHit, x, y, Range(fx.rng, 1, 4), Range(fx.rng, 8, 16), 2, c)
	}
}

// Collect spawns a ring of particles where a pickup was taken.
func (fx *Effects) Collect(x, y float64, c core.Color) {
	const n = 12
	for i := range n {
		angle := float64(i) / n * 2 * math.Pi
		fx.Particles = append(fx.Particles, &Particle{
			Kind: ParticleCollect,
			X:    x, Y: y,
			VX: math.Cos(angle) * 3, VY: math.Sin(angle) * 3,
			Life: 25, MaxLife: 25,
			Size:  2,
			Color: c,
		})
	}
}

// EMP spawns the wide ring of the special ability.
func (fx *Effects) EMP(x, y float64) {
	fx.Explosions = append(fx.Explosions, &Explosion{
		X: x, Y: y,
		MaxRadius: 400,
		Life:      40,
		MaxLife:   40,
		Color:     core.ColorBrightCyan,
	})
	const n = 30
	for i := range n {
		angle := float64(i) / n * 2 * math.Pi
		fx.Particles = append(fx.Particles, &Particle{
			Kind: ParticleEMP,
			X:    x, Y: y,
			VX: math.Cos(angle) * 10, VY: math.Sin(angle) * 10,
			Life: 40, MaxLife: 40,
			Size:  3,
			Color: core.ColorCyan,
		})
	}
}

func (fx *Effects) burst(kind ParticleKind, x, y, speed, life, size float64, c core.Color) {
	angle := fx.rng.Float64() * 2 * math.Pi
	fx.Particles = append(fx.Particles, &Particle{
		Kind: kind,
		X:    x, Y: y,
		VX: math.Cos(angle) * speed, VY: math.Sin(angle) * speed,
		Life: life, MaxLife: life,
		Size:  size,
		Color: c,
	})
}

// Update advances all effects and drops expired ones.
func (fx *Effects) Update(frames float64) {
	particles := fx.Particles[:0]
	for _, p := range fx.Particles {
		p.Update(frames)
		if !p.Dead() {
			particles = append(particles, p)
		}
	}
	fx.Particles = particles

	explosions := fx.Explosions[:0]
	for _, e := range fx.Explosions {
		e.Update(frames)
		if e.Life > 0 {
			explosions = append(explosions, e)
		}
	}
	fx.Explosions = explosions
}
