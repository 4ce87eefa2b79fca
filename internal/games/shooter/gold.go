package shooter

import "github.com/vovakirdan/galaxy-shooter/internal/core"

const (
	goldSize      = 16
	goldFallSpeed = 1.5
)

// GoldPickup is falling currency collected by proximity rather than overlap.
type GoldPickup struct {
	X, Y  float64
	Value int
	Speed float64
}

// NewGoldPickup creates a pickup worth value (at least 1) centered on (cx, cy).
func NewGoldPickup(cx, cy float64, value int) *GoldPickup {
	return &GoldPickup{
		X:     cx - goldSize/2,
		Y:     cy - goldSize/2,
		Value: core.Max(value, 1),
		Speed: goldFallSpeed,
	}
}

// Update moves the pickup down.
func (g *GoldPickup) Update(frames float64) {
	g.Y += g.Speed * frames
}

// Center returns the pickup center.
func (g *GoldPickup) Center() (float64, float64) {
	return g.X + goldSize/2, g.Y + goldSize/2
}

// Within reports whether the pickup center is inside radius of (x, y).
func (g *GoldPickup) Within(x, y, radius float64) bool {
	cx, cy := g.Center()
	return core.Distance(cx, cy, x, y) < radius
}
