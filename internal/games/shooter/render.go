package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

const (
	starCount   = 60
	hudY        = 12
	lineSpacing = 40
)

// Render draws the current frame: background, explosions, player, enemies,
// bullets, power-ups, gold, particles, HUD and finally the overlay of the
// active phase. It never mutates game state.
func (g *Game) Render(dst core.Surface) {
	dst.Clear()
	g.drawBackground(dst)

	if g.inRun() {
		g.drawExplosions(dst)
		g.drawPlayer(dst)
		g.drawEnemies(dst)
		g.drawBullets(dst)
		g.drawPowerUps(dst)
		g.drawGold(dst)
		g.drawParticles(dst)
		g.drawHUD(dst)
	}

	g.drawOverlay(dst)
}

func (g *Game) inRun() bool {
	switch g.phase {
	case PhasePlaying, PhasePaused, PhaseLevelComplete, PhaseGameOver:
		return g.player != nil
	default:
		return false
	}
}

func (g *Game) drawBackground(dst core.Surface) {
	// Scroll speed depends on the star layer.
	for i := range starCount {
		layer := float64(i%3 + 1)
		x := math.Mod(float64(i*137), WorldWidth)
		y := math.Mod(float64(i*89)+float64(g.ticks)*0.3*layer, WorldHeight)
		c := core.ColorGray
		if layer == 3 {
			c = core.ColorWhite
		}
		dst.FillRect(core.NewRect(x, y, layer, layer), c, 0.2*layer)
	}

	if g.inRun() && g.level.Has(FeatureNebula) {
		drift := math.Sin(float64(g.ticks)*0.005) * 40
		dst.FillCircle(250+drift, 250, 160, core.ColorMagenta, 0.15)
		dst.FillCircle(750-drift, 500, 200, core.ColorBlue, 0.12)
	}
}

func (g *Game) drawExplosions(dst core.Surface) {
	for _, e := range g.fx.Explosions {
		dst.FillCircle(e.X, e.Y, e.Radius, e.Color, e.Alpha()*0.3)
	}
}

func (g *Game) drawPlayer(dst core.Surface) {
	p := g.player
	if p.Invulnerable() && (g.ticks/6)%2 == 0 {
		return
	}
	cx, cy := p.Center()
	dst.FillRect(core.NewRect(p.X+p.W/3, p.Y, p.W/3, p.H), core.ColorBrightCyan, 1)
	dst.FillRect(core.NewRect(p.X, p.Y+p.H/2, p.W, p.H/3), core.ColorCyan, 1)
	dst.FillRect(core.NewRect(cx-4, p.Y+p.H, 8, 6), core.ColorOrange, 0.6)
	if p.HasShield {
		strength := 1 - float64(p.ShieldHits)/float64(core.Max(p.MaxShieldHits, 1))
		dst.FillCircle(cx, cy, p.H*0.75, core.ColorBrightCyan, 0.1+0.2*strength)
	}
}

func (g *Game) drawEnemies(dst core.Surface) {
	for _, e := range g.enemies {
		c := e.Type.Stats().Color
		if e.Flashing() {
			c = core.ColorBrightWhite
		}
		dst.FillRect(e.Bounds(), c, 1)
		if e.MaxHealth > 1 {
			frac := float64(e.Health) / float64(e.MaxHealth)
			dst.FillRect(core.NewRect(e.X, e.Y-8, e.W, 4), core.ColorRed, 0.5)
			dst.FillRect(core.NewRect(e.X, e.Y-8, e.W*frac, 4), core.ColorBrightGreen, 1)
		}
	}
}

func (g *Game) drawBullets(dst core.Surface) {
	for _, b := range g.bullets {
		c := core.ColorBrightYellow
		switch b.Type {
		case BulletLaser:
			c = core.ColorBrightMagenta
		case BulletPiercing:
			c = core.ColorBrightGreen
		}
		dst.FillRect(b.Bounds(), c, 1)
	}
	for _, b := range g.enemyBullets {
		dst.FillRect(b.Bounds(), core.ColorBrightRed, 1)
	}
}

func (g *Game) drawPowerUps(dst core.Surface) {
	for _, pu := range g.powerUps {
		r := pu.Bounds()
		glow := 0.5 + 0.25*math.Sin(pu.Pulse)
		cx, cy := r.Center()
		dst.FillCircle(cx, cy, powerUpSize/2+4, pu.Type.Color(), glow*0.4)
		dst.StrokeRect(r, pu.Type.Color())
		dst.Text(cx-4, cy-6, string(pu.Type.Glyph()), core.ColorBrightWhite)
	}
}

func (g *Game) drawGold(dst core.Surface) {
	for _, gp := range g.gold {
		cx, cy := gp.Center()
		dst.FillCircle(cx, cy, goldSize/2, core.ColorBrightYellow, 1)
	}
}

func (g *Game) drawParticles(dst core.Surface) {
	for _, p := range g.fx.Particles {
		dst.FillRect(core.NewRect(p.X, p.Y, p.Size, p.Size), p.Color, p.Alpha())
	}
}

func (g *Game) drawHUD(dst core.Surface) {
	p := g.player
	dst.Text(10, hudY, fmt.Sprintf("SCORE %d", g.score), core.ColorBrightWhite)
	dst.Text(220, hudY, fmt.Sprintf("LV %d %s", g.level.Number, g.level.Name), core.ColorBrightCyan)
	dst.Text(560, hudY, fmt.Sprintf("GOLD %d", g.progression.Gold()), core.ColorBrightYellow)
	dst.Text(760, hudY, fmt.Sprintf("LIVES %d/%d", p.Lives, p.MaxLives), core.ColorBrightRed)

	status := fmt.Sprintf("LEFT %d", g.level.Remaining+len(g.enemies))
	if p.HasShield {
		status += fmt.Sprintf("  SHIELD %d/%d", p.MaxShieldHits-p.ShieldHits, p.MaxShieldHits)
	}
	if p.SpecialReady() {
		status += "  EMP READY"
	} else {
		status += fmt.Sprintf("  EMP %.1fs", p.SpecialCooldown().Seconds())
	}
	for _, b := range p.Buffs {
		status += fmt.Sprintf("  %s %.0fs", b.Type, b.Remaining(g.clock).Seconds())
	}
	dst.Text(10, WorldHeight-24, status, core.ColorGray)
}

func (g *Game) drawOverlay(dst core.Surface) {
	switch g.phase {
	case PhaseMainMenu:
		g.drawMainMenu(dst)
	case PhaseLevelSelect:
		g.drawLevelSelect(dst)
	case PhasePowerUpMenu:
		g.drawPowerUpMenu(dst)
	case PhaseSettingsMenu:
		g.drawSettingsMenu(dst)
	case PhasePaused:
		drawPanel(dst, "PAUSED", []string{"P resume", "B abandon run"})
	case PhaseLevelComplete:
		drawPanel(dst, "LEVEL COMPLETE", []string{
			fmt.Sprintf("%s cleared", g.level.Name),
			fmt.Sprintf("Score %d", g.score),
			"ENTER next level   B menu",
		})
	case PhaseGameOver:
		drawPanel(dst, "GAME OVER", []string{
			fmt.Sprintf("Score %d", g.score),
			fmt.Sprintf("High score %d", g.settings.HighScore),
			"ENTER level select   B menu",
		})
	}
}

// drawPanel draws a framed modal with a title and centered lines.
func drawPanel(dst core.Surface, title string, lines []string) {
	b := dst.Bounds()
	height := float64(len(lines)+2) * lineSpacing
	panel := core.NewRect(b.W*0.2, (b.H-height)/2, b.W*0.6, height)
	dst.FillRect(panel, core.ColorBlue, 0.2)
	dst.StrokeRect(panel, core.ColorBrightCyan)
	y := panel.Y + lineSpacing/2
	dst.TextCentered(y, title, core.ColorBrightYellow)
	for _, line := range lines {
		y += lineSpacing
		dst.TextCentered(y, line, core.ColorBrightWhite)
	}
}

func menuLine(selected bool, s string) string {
	if selected {
		return "> " + s + " <"
	}
	return s
}

func (g *Game) drawMainMenu(dst core.Surface) {
	dst.TextCentered(160, "GALAXY SHOOTER", core.ColorBrightGreen)
	dst.TextCentered(220, fmt.Sprintf("High score %d   Gold %d", g.settings.HighScore, g.progression.Gold()), core.ColorBrightWhite)
	for i, item := range mainMenuItems {
		c := core.ColorGray
		if i == g.cursor {
			c = core.ColorBrightYellow
		}
		dst.TextCentered(320+float64(i)*lineSpacing, menuLine(i == g.cursor, item), c)
	}
	dst.TextCentered(600, "A/D move  SPACE fire  X special  P pause", core.ColorGray)
}

func (g *Game) drawLevelSelect(dst core.Surface) {
	l := LevelFor(g.levelPick, g.difficulty)
	lines := []string{
		fmt.Sprintf("< Level %d / %d >", g.levelPick, g.settings.LastLevel),
		l.Name,
		l.Description,
		fmt.Sprintf("Enemies %d   Features %s", l.Quota, l.Features),
		"ENTER start   B back",
	}
	drawPanel(dst, "SELECT LEVEL", lines)
}

func (g *Game) drawPowerUpMenu(dst core.Surface) {
	lines := []string{fmt.Sprintf("Gold %d", g.progression.Gold())}
	for t := TrackDamage; t < TrackCount; t++ {
		price := "MAX"
		if cost, ok := g.progression.Cost(t); ok {
			price = fmt.Sprintf("%d gold", cost)
		}
		row := fmt.Sprintf("%s %d/%d  %s  (%s)", t, g.progression.Level(t), MaxUpgradeLevel, price, t.Effect())
		lines = append(lines, menuLine(int(t) == g.cursor, row))
	}
	if g.message != "" {
		lines = append(lines, g.message)
	}
	lines = append(lines, "ENTER buy   B back")
	drawPanel(dst, "UPGRADES", lines)
}

func (g *Game) drawSettingsMenu(dst core.Surface) {
	lines := []string{
		menuLine(g.cursor == 0, fmt.Sprintf("Master volume %3.0f%%", g.settings.Master*100)),
		menuLine(g.cursor == 1, fmt.Sprintf("Effects volume %3.0f%%", g.settings.SFX*100)),
		"A/D adjust   B back",
	}
	drawPanel(dst, "SETTINGS", lines)
}
