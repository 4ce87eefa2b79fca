package shooter

import (
	"testing"
	"time"

	"github.com/vovakirdan/galaxy-shooter/internal/config"
)

func testDifficulty() *config.DifficultyManager {
	return config.NewDifficultyManager(config.DefaultShooterConfig().Difficulty)
}

func TestEnemyTakeDamageOnlyDecreases(t *testing.T) {
	e := NewEnemy(EnemyDestroyer, 0, 0, 1, testDifficulty(), 1)
	prev := e.Health
	for _, d := range []int{1, 0, -3, 2, 1, 5} {
		e.TakeDamage(d)
		if e.Health > prev {
			t.Fatalf("health increased from %d to %d after damage %d", prev, e.Health, d)
		}
		prev = e.Health
	}
	if !e.Dead() {
		t.Errorf("destroyer should be dead, health %d", e.Health)
	}
}

func TestEnemyScaling(t *testing.T) {
	dm := testDifficulty()
	tests := []struct {
		name   string
		typ    EnemyType
		level  int
		health int
		score  int
	}{
		{"scout level 1", EnemyScout, 1, 1, 10},
		{"scout level 3", EnemyScout, 3, 1, 13},
		{"destroyer level 3", EnemyDestroyer, 3, 6, 65},
		{"dreadnought level 5", EnemyDreadnought, 5, 12, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnemy(tt.typ, 0, 0, tt.level, dm, 1)
			if e.Health != tt.health || e.MaxHealth != tt.health {
				t.Errorf("health = %d/%d, want %d", e.Health, e.MaxHealth, tt.health)
			}
			if e.Score != tt.score {
				t.Errorf("score = %d, want %d", e.Score, tt.score)
			}
		})
	}
}

func TestEnemyFixedDifficulty(t *testing.T) {
	cfg := config.DefaultShooterConfig().Difficulty
	cfg.Enabled = false
	dm := config.NewDifficultyManager(cfg)

	e := NewEnemy(EnemyFighter, 0, 0, 9, dm, 1)
	if e.Health != 2 || e.Score != 20 || e.Speed != 1.2 {
		t.Errorf("fixed difficulty scaled stats: %+v", e)
	}
}

func TestDreadnoughtHolds(t *testing.T) {
	e := NewEnemy(EnemyDreadnought, 400, 0, 1, testDifficulty(), 1)
	for range 1000 {
		e.Update(1, time.Second/60, WorldWidth)
	}
	if e.Y != bossHoldY {
		t.Errorf("dreadnought Y = %v, want %v", e.Y, bossHoldY)
	}
	if e.X < 0 || e.X > WorldWidth-e.W {
		t.Errorf("dreadnought left the playfield: X = %v", e.X)
	}
}

func TestEnemyShootCooldown(t *testing.T) {
	e := NewEnemy(EnemyScout, 100, 10, 1, testDifficulty(), 1)
	always := &scriptedRNG{fallbackFloat: 0}

	b := e.TryShoot(1, always, 4)
	if b == nil {
		t.Fatal("expected a shot")
	}
	if b.Owner != OwnerEnemy || b.Y != e.Bottom() || b.VY != 4 {
		t.Errorf("unexpected bullet %+v", b)
	}
	if e.TryShoot(1, always, 4) != nil {
		t.Error("enemy fired during cooldown")
	}

	e.Update(0, e.ShootDelay, WorldWidth)
	if e.TryShoot(1, always, 4) == nil {
		t.Error("enemy did not fire after cooldown")
	}
}

func TestRollPowerUpType(t *testing.T) {
	weights := config.DefaultShooterConfig().PowerUps.Weights
	tests := []struct {
		roll int
		want PowerUpType
	}{
		{0, PowerUpRapidFire},
		{19, PowerUpRapidFire},
		{20, PowerUpSpread},
		{34, PowerUpSpread},
		{35, PowerUpLaser},
		{45, PowerUpShield},
		{60, PowerUpHealth},
		{70, PowerUpBomb},
		{78, PowerUpMultiShot},
		{90, PowerUpPiercing},
		{99, PowerUpPiercing},
	}
	for _, tt := range tests {
		rng := &scriptedRNG{ints: []int{tt.roll}}
		if got := rollPowerUpType(rng, weights); got != tt.want {
			t.Errorf("roll %d = %v, want %v", tt.roll, got, tt.want)
		}
	}
}

func TestRollPowerUpTypeSkipsZeroWeights(t *testing.T) {
	w := config.PowerUpWeights{Bomb: 5}
	for roll := range 5 {
		if got := rollPowerUpType(&scriptedRNG{ints: []int{roll}}, w); got != PowerUpBomb {
			t.Errorf("roll %d = %v, want Bomb", roll, got)
		}
	}
}

func TestBuffExpiry(t *testing.T) {
	b := Buff{Type: PowerUpLaser, Start: time.Second, Duration: 10 * time.Second}
	if b.Expired(11 * time.Second) {
		t.Error("buff expired exactly at its duration")
	}
	if !b.Expired(11*time.Second + time.Millisecond) {
		t.Error("buff should expire after its duration")
	}
	if got := b.Remaining(6 * time.Second); got != 5*time.Second {
		t.Errorf("Remaining = %v, want 5s", got)
	}
}

func TestGoldPickupWithin(t *testing.T) {
	g := NewGoldPickup(100, 100, 0)
	if g.Value != 1 {
		t.Errorf("value = %d, want minimum 1", g.Value)
	}
	if !g.Within(100, 153, 54) {
		t.Error("pickup 53 units away should be inside radius 54")
	}
	if g.Within(100, 154, 54) {
		t.Error("pickup exactly at the radius should not be collected")
	}
}

func TestBulletOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		b    *Bullet
		want bool
	}{
		{"inside", NewPlayerBullet(BulletNormal, 500, 300, 0, -7), false},
		{"above", NewPlayerBullet(BulletNormal, 500, -13, 0, -7), true},
		{"below", NewEnemyBullet(500, 751, 4), true},
		{"drifted left", NewPlayerBullet(BulletNormal, -6, 300, -1.5, -6), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.OutOfBounds(WorldWidth, WorldHeight); got != tt.want {
				t.Errorf("OutOfBounds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEffectsExpire(t *testing.T) {
	fx := NewEffects(NewSimpleRNG(7))
	fx.Explode(100, 100, ExplosionSmall)
	fx.Hit(50, 50, 0)
	fx.Collect(10, 10, 0)
	if len(fx.Explosions) != 1 || len(fx.Particles) != 15+5+12 {
		t.Fatalf("got %d explosions and %d particles", len(fx.Explosions), len(fx.Particles))
	}

	fx.Update(100)
	if len(fx.Explosions) != 0 || len(fx.Particles) != 0 {
		t.Errorf("effects survived: %d explosions, %d particles", len(fx.Explosions), len(fx.Particles))
	}
}

func TestSimpleRNGDeterministic(t *testing.T) {
	a, b := NewSimpleRNG(42), NewSimpleRNG(42)
	for range 100 {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed produced different sequences")
		}
	}
	r := NewSimpleRNG(0)
	for range 1000 {
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range: %v", v)
		}
		if v := r.Intn(7); v < 0 || v >= 7 {
			t.Fatalf("Intn out of range: %v", v)
		}
	}
}
