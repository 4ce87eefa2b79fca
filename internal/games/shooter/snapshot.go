package shooter

import "math"

// Snapshot is a flattened view of the simulation used by determinism tests
// and debugging. Positions are stored in hundredths of a unit.
type Snapshot struct {
	Tick      uint64
	Phase     string
	Score     int
	Lives     int
	Level     int
	Remaining int
	Gold      int
	PlayerX   int
	Shield    int // -1 when the shield is down

	// Each enemy is 4 ints: Type, X, Y, Health
	EnemyData []int

	BulletCount      int
	EnemyBulletCount int
	PowerUpCount     int
	GoldCount        int
	BuffCount        int

	RNGState uint64
}

func centi(v float64) int {
	return int(math.Round(v * 100))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:             uint64(g.ticks), //#nosec G115 -- tick count is always positive
		Phase:            g.phase,
		Score:            g.score,
		Level:            g.level.Number,
		Remaining:        g.level.Remaining,
		BulletCount:      len(g.bullets),
		EnemyBulletCount: len(g.enemyBullets),
		PowerUpCount:     len(g.powerUps),
		GoldCount:        len(g.gold),
		Shield:           -1,
	}
	if g.progression != nil {
		snap.Gold = g.progression.Gold()
	}
	if p := g.player; p != nil {
		snap.Lives = p.Lives
		snap.PlayerX = centi(p.X)
		snap.BuffCount = len(p.Buffs)
		if p.HasShield {
			snap.Shield = p.ShieldHits
		}
	}

	snap.EnemyData = make([]int, 0, len(g.enemies)*4)
	for _, e := range g.enemies {
		snap.EnemyData = append(snap.EnemyData, int(e.Type), centi(e.X), centi(e.Y), e.Health)
	}

	if r, ok := g.rng.(*SimpleRNG); ok {
		snap.RNGState = r.State()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Gold)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shield)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyBulletCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpCount)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GoldCount)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BuffCount)        //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
