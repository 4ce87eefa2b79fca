package shooter

import (
	"testing"

	"github.com/vovakirdan/galaxy-shooter/internal/config"
)

func newTestSpawner(rng RNG) *Spawner {
	cfg := config.DefaultShooterConfig()
	return NewSpawner(cfg, config.NewDifficultyManager(cfg.Difficulty), rng, WorldWidth)
}

func TestSpawnerWaitsForDelay(t *testing.T) {
	lvl := LevelFor(1, testDifficulty())
	s := newTestSpawner(quietRNG())

	for i := range 89 {
		if enemies, _ := s.Tick(1, &lvl); len(enemies) != 0 {
			t.Fatalf("spawned at frame %d before the 90 frame delay", i+1)
		}
	}
	enemies, _ := s.Tick(1, &lvl)
	if len(enemies) != 1 || lvl.Remaining != lvl.Quota-1 {
		t.Fatalf("got %d enemies, remaining %d", len(enemies), lvl.Remaining)
	}
	if enemies[0].Type != EnemyScout || enemies[0].Y != -enemies[0].H {
		t.Errorf("unexpected spawn %+v", enemies[0])
	}
}

func TestSpawnerFormation(t *testing.T) {
	lvl := LevelFor(3, testDifficulty())
	if !lvl.Has(FeatureFormations) {
		t.Fatal("level 3 should allow formations")
	}
	rng := &scriptedRNG{floats: []float64{0.0, 0.5}, ints: []int{1}, fallbackFloat: 0.999}
	s := newTestSpawner(rng)

	enemies, pu := s.Tick(lvl.SpawnDelay, &lvl)
	if len(enemies) != 3 {
		t.Fatalf("formation spawned %d enemies, want 3", len(enemies))
	}
	if lvl.Remaining != lvl.Quota-3 {
		t.Errorf("remaining = %d, want %d", lvl.Remaining, lvl.Quota-3)
	}
	if pu != nil {
		t.Error("unexpected power-up")
	}
	h := enemies[0].H
	for i, e := range enemies {
		if e.Type != EnemyFighter {
			t.Errorf("enemy %d type = %v, want fighter", i, e.Type)
		}
		if want := -h - float64(i)*60; e.Y != want {
			t.Errorf("enemy %d Y = %v, want %v", i, e.Y, want)
		}
	}
	if enemies[1].X != enemies[0].X-30 || enemies[2].X != enemies[0].X+30 {
		t.Errorf("formation not staggered: %v %v %v", enemies[0].X, enemies[1].X, enemies[2].X)
	}
}

func TestSpawnerFormationNeedsQuota(t *testing.T) {
	lvl := LevelFor(3, testDifficulty())
	lvl.Remaining = 2
	s := newTestSpawner(&scriptedRNG{fallbackFloat: 0})

	enemies, _ := s.Tick(lvl.SpawnDelay, &lvl)
	if len(enemies) != 1 || lvl.Remaining != 1 {
		t.Errorf("got %d enemies, remaining %d", len(enemies), lvl.Remaining)
	}
}

func TestSpawnerNoFormationWithoutFeature(t *testing.T) {
	lvl := LevelFor(1, testDifficulty())
	s := newTestSpawner(&scriptedRNG{fallbackFloat: 0})

	enemies, _ := s.Tick(lvl.SpawnDelay, &lvl)
	if len(enemies) != 1 {
		t.Errorf("got %d enemies without the formation feature", len(enemies))
	}
}

func TestSpawnerBossIsLast(t *testing.T) {
	lvl := LevelFor(5, testDifficulty())
	s := newTestSpawner(&scriptedRNG{fallbackFloat: 0.999})

	var last []*Enemy
	for !lvl.Done() {
		enemies, _ := s.Tick(lvl.SpawnDelay, &lvl)
		for _, e := range enemies {
			if e.Type == EnemyDreadnought && !lvl.Done() {
				t.Fatal("dreadnought spawned before the final slot")
			}
		}
		last = enemies
	}
	if len(last) != 1 || last[0].Type != EnemyDreadnought {
		t.Fatalf("final spawn = %v, want one dreadnought", last)
	}
	if lvl.Remaining != 0 {
		t.Errorf("remaining = %d", lvl.Remaining)
	}
}

func TestSpawnerBossKeepsSlotFromFormation(t *testing.T) {
	lvl := LevelFor(5, testDifficulty())
	lvl.Remaining = 3
	s := newTestSpawner(&scriptedRNG{fallbackFloat: 0})

	enemies, _ := s.Tick(lvl.SpawnDelay, &lvl)
	if len(enemies) != 1 || lvl.Remaining != 2 {
		t.Errorf("got %d enemies, remaining %d", len(enemies), lvl.Remaining)
	}
}

func TestSpawnerStopsAtZeroQuota(t *testing.T) {
	lvl := LevelFor(2, testDifficulty())
	lvl.Remaining = 0
	s := newTestSpawner(&scriptedRNG{fallbackFloat: 0.999})

	if enemies, _ := s.Tick(1000, &lvl); len(enemies) != 0 {
		t.Errorf("spawned %d enemies with no quota left", len(enemies))
	}
}

func TestSpawnerPowerUp(t *testing.T) {
	lvl := LevelFor(1, testDifficulty())
	rng := &scriptedRNG{floats: []float64{0.0, 0.5}, ints: []int{40}, fallbackFloat: 0.999}
	s := newTestSpawner(rng)

	_, pu := s.Tick(1, &lvl)
	if pu == nil {
		t.Fatal("expected a power-up")
	}
	if pu.Type != PowerUpLaser || pu.Speed != 2 || pu.X != 0.5*(WorldWidth-powerUpSize) {
		t.Errorf("unexpected power-up %+v", pu)
	}
}

func TestLevelCatalog(t *testing.T) {
	dm := testDifficulty()
	if CatalogSize() != 10 {
		t.Fatalf("catalog size = %d", CatalogSize())
	}
	quotas := []int{10, 14, 18, 20, 22, 26, 28, 30, 34, 36}
	for i, q := range quotas {
		l := LevelFor(i+1, dm)
		if l.Number != i+1 || l.Quota != q || l.Remaining != q {
			t.Errorf("level %d = number %d quota %d remaining %d", i+1, l.Number, l.Quota, l.Remaining)
		}
		if len(l.Pool) == 0 {
			t.Errorf("level %d has an empty pool", i+1)
		}
	}

	if !LevelFor(5, dm).Has(FeatureBoss) || !LevelFor(10, dm).Has(FeatureBoss) {
		t.Error("levels 5 and 10 should be boss levels")
	}
	if LevelFor(0, dm).Number != 1 {
		t.Error("level 0 should clamp to level 1")
	}
}

func TestLevelCopiesAreIndependent(t *testing.T) {
	dm := testDifficulty()
	a := LevelFor(2, dm)
	a.Pool[0] = EnemyDreadnought
	a.Remaining = 0
	b := LevelFor(2, dm)
	if b.Pool[0] != EnemyScout || b.Remaining != b.Quota {
		t.Error("LevelFor returned shared state")
	}
}

func TestLevelExtrapolation(t *testing.T) {
	dm := testDifficulty()
	tests := []struct {
		n     int
		quota int
		delay float64
		boss  bool
	}{
		{11, 40, 38, false},
		{15, 56, 30, true},
		{20, 76, 20, true},
		{30, 116, 20, true},
	}
	for _, tt := range tests {
		l := LevelFor(tt.n, dm)
		if l.Quota != tt.quota || l.SpawnDelay != tt.delay || l.Has(FeatureBoss) != tt.boss {
			t.Errorf("level %d = quota %d delay %v boss %v", tt.n, l.Quota, l.SpawnDelay, l.Has(FeatureBoss))
		}
		if len(l.Pool) != int(EnemyTypeCount) || !l.Has(FeatureFormations) {
			t.Errorf("level %d should use the full pool with formations", tt.n)
		}
		if l.PowerUpRate > 0.006 {
			t.Errorf("level %d power-up rate %v above cap", tt.n, l.PowerUpRate)
		}
	}
}

func TestSpawnerKeepsTimerOvershoot(t *testing.T) {
	lvl := LevelFor(1, testDifficulty())
	s := newTestSpawner(quietRNG())

	// Uneven frames as a wall-clock shell produces them.
	steps := []struct {
		frames float64
		spawns int
	}{
		{60, 0},
		{60, 1}, // 120 accumulated, 30 carried over
		{59, 0}, // 89
		{1, 1},  // 90
		{45, 0},
		{50, 1}, // 95, 5 carried over
		{85, 1},
	}
	for i, st := range steps {
		enemies, _ := s.Tick(st.frames, &lvl)
		if len(enemies) != st.spawns {
			t.Fatalf("step %d (%v frames): got %d spawns, want %d", i, st.frames, len(enemies), st.spawns)
		}
	}
	if lvl.Remaining != lvl.Quota-4 {
		t.Errorf("remaining = %d, want %d", lvl.Remaining, lvl.Quota-4)
	}
}

func TestLevelHasOnValues(t *testing.T) {
	dm := testDifficulty()
	tests := []struct {
		n       int
		feature Feature
		want    bool
	}{
		{1, FeatureFormations, false},
		{3, FeatureFormations, true},
		{4, FeatureNebula, true},
		{5, FeatureBoss, true},
		{6, FeatureBoss, false},
		{15, FeatureBoss, true},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.n, dm).Has(tt.feature); got != tt.want {
			t.Errorf("LevelFor(%d).Has(%v) = %v, want %v", tt.n, tt.feature, got, tt.want)
		}
	}
}
