package shooter

import (
	"time"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

// Shield charge per contact kind.
const (
	shieldBulletHits = 1
	shieldBodyHits   = 2
)

// resolveCollisions applies the interaction rules in fixed order. Each rule
// iterates its collections fully, then filters what was consumed.
func (g *Game) resolveCollisions() {
	g.resolvePlayerBullets()
	g.resolveEnemyBullets()
	g.resolveRams()
	g.resolvePowerUps()
	g.resolveGold()
}

// resolvePlayerBullets damages enemies hit by player shots. Piercing shots
// damage every enemy they overlap and stay in play.
func (g *Game) resolvePlayerBullets() {
	active := g.bullets[:0]
	for _, b := range g.bullets {
		consumed := false
		for _, e := range g.enemies {
			if e.Gone() || !b.Bounds().Intersects(e.Bounds()) {
				continue
			}
			g.fx.Hit(b.X+b.W/2, b.Y, e.Type.Stats().Color)
			g.play(CueHit)
			if e.TakeDamage(b.Damage) {
				g.killEnemy(e)
			}
			if !b.Pierces() {
				consumed = true
				break
			}
		}
		if !consumed {
			active = append(active, b)
		}
	}
	g.bullets = active
	g.pruneEnemies()
}

// resolveEnemyBullets handles enemy shots reaching the player.
func (g *Game) resolveEnemyBullets() {
	p := g.player
	active := g.enemyBullets[:0]
	for _, b := range g.enemyBullets {
		if p.Invulnerable() || !b.Bounds().Intersects(p.Bounds()) {
			active = append(active, b)
			continue
		}
		if p.HasShield {
			p.AbsorbHit(shieldBulletHits)
			g.play(CueShield)
			continue
		}
		g.playerHit()
	}
	g.enemyBullets = active
}

// resolveRams handles enemy ships flying into the player.
func (g *Game) resolveRams() {
	p := g.player
	for _, e := range g.enemies {
		if e.Gone() || p.Invulnerable() || !e.Bounds().Intersects(p.Bounds()) {
			continue
		}
		if p.HasShield {
			p.AbsorbHit(shieldBodyHits)
			g.play(CueShield)
			if e.TakeDamage(g.cfg.Enemies.RamDamage) {
				g.killEnemy(e)
			} else {
				e.Y = p.Y - e.H
			}
			continue
		}
		e.Remove()
		g.playerHit()
	}
	g.pruneEnemies()
}

func (g *Game) resolvePowerUps() {
	p := g.player
	var collected []*PowerUp
	active := g.powerUps[:0]
	for _, pu := range g.powerUps {
		if !pu.Bounds().Intersects(p.Bounds()) {
			active = append(active, pu)
			continue
		}
		collected = append(collected, pu)
	}
	g.powerUps = active

	// Effects run after filtering: a bomb kill may append new drops.
	for _, pu := range collected {
		g.applyPowerUp(pu.Type)
		cx, cy := pu.Bounds().Center()
		g.fx.Collect(cx, cy, pu.Type.Color())
		g.play(CuePowerUp)
	}
	g.pruneEnemies()
}

// resolveGold collects pickups near the ship center.
func (g *Game) resolveGold() {
	p := g.player
	px, py := p.Center()
	radius := p.W * g.cfg.Drops.PickupRadius
	active := g.gold[:0]
	for _, gp := range g.gold {
		if !gp.Within(px, py, radius) {
			active = append(active, gp)
			continue
		}
		g.progression.AddGold(gp.Value)
		cx, cy := gp.Center()
		g.fx.Collect(cx, cy, core.ColorBrightYellow)
		g.play(CueGold)
	}
	g.gold = active
}

func (g *Game) applyPowerUp(t PowerUpType) {
	p := g.player
	switch t {
	case PowerUpHealth:
		p.Heal()
	case PowerUpBomb:
		g.blast(g.cfg.PowerUps.BombDamage)
	case PowerUpShield:
		p.RaiseShield(g.clock, time.Duration(g.cfg.PowerUps.ShieldDurationMS)*time.Millisecond)
	default:
		p.AddBuff(t, g.clock, time.Duration(g.cfg.PowerUps.DurationMS)*time.Millisecond)
	}
}

// blast damages every enemy on screen.
func (g *Game) blast(damage int) {
	for _, e := range g.enemies {
		if e.Gone() || !e.OnScreen(WorldHeight) {
			continue
		}
		if e.TakeDamage(damage) {
			g.killEnemy(e)
		}
	}
}

// emp is the special ability: enemy shots vanish and on-screen enemies are
// damaged.
func (g *Game) emp() {
	g.enemyBullets = g.enemyBullets[:0]
	g.blast(empDamage)
	g.pruneEnemies()
	cx, cy := g.player.Center()
	g.fx.EMP(cx, cy)
	g.play(CueSpecial)
}

func (g *Game) playerHit() {
	g.player.LoseLife()
	cx, cy := g.player.Center()
	g.fx.Explode(cx, cy, ExplosionPlayer)
	g.play(CueDeath)
}

// killEnemy awards a destroyed enemy. The caller prunes it afterwards.
func (g *Game) killEnemy(e *Enemy) {
	cx, cy := e.Center()
	g.fx.Explode(cx, cy, e.Type.Stats().Explosion)
	g.addScore(e.Score)
	g.play(CueKill)
	g.rollDrop(e)
}

// rollDrop draws the power-up roll first and the gold roll only when it
// failed.
func (g *Game) rollDrop(e *Enemy) {
	cx, cy := e.Center()
	if g.rng.Float64() < g.cfg.Drops.PowerUpChance {
		g.powerUps = append(g.powerUps, g.spawner.SpawnPowerUp(cx-powerUpSize/2, cy))
		return
	}
	if g.rng.Float64() < g.cfg.Drops.GoldChance {
		g.gold = append(g.gold, NewGoldPickup(cx, cy, e.Score/2))
	}
}
