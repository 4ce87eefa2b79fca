// Package shooter implements the Galaxy Shooter simulation: entities, the
// level catalog, spawning, collision resolution, the upgrade economy and the
// menu state machine. It draws through core.Surface, reads core.InputFrame,
// persists through core.KVStore and emits core.SoundCue values.
package shooter

import (
	"errors"
	"time"

	"github.com/vovakirdan/galaxy-shooter/internal/config"
	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

// World dimensions in simulation units.
const (
	WorldWidth  = 1000
	WorldHeight = 750
)

const effectsSeedMask = 0x5eed

// referenceFrame is the frame length all per-frame constants are tuned for.
const referenceFrame = time.Second / 60

// Phases of the state machine.
const (
	PhaseMainMenu      = "main_menu"
	PhaseLevelSelect   = "level_select"
	PhasePowerUpMenu   = "powerup_menu"
	PhaseSettingsMenu  = "settings_menu"
	PhasePlaying       = "playing"
	PhasePaused        = "paused"
	PhaseLevelComplete = "level_complete"
	PhaseGameOver      = "game_over"
)

var mainMenuItems = []string{"Play", "Upgrades", "Settings"}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game is the shooter state machine and the simulation it drives.
type Game struct {
	store core.KVStore
	sound core.SoundPlayer
	rng   RNG

	runtime    core.RuntimeConfig
	cfg        config.ShooterConfig
	difficulty *config.DifficultyManager

	progression *Progression
	settings    *Settings

	// State machine
	phase     string
	prevInput core.InputFrame
	cursor    int // Selected row of the active menu
	levelPick int // Level shown in level select
	message   string

	// Run
	player       *Player
	enemies      []*Enemy
	bullets      []*Bullet
	enemyBullets []*Bullet
	powerUps     []*PowerUp
	gold         []*GoldPickup
	fx           *Effects
	level        Level
	spawner      *Spawner
	score        int
	clock        time.Duration // Simulation time of the current run
	ticks        int           // Updates since Reset, drives background animation
}

// New creates a game persisting to store and emitting cues to sound.
// A nil store keeps progression in memory, a nil sound player is silent.
func New(store core.KVStore, sound core.SoundPlayer) *Game {
	if store == nil {
		store = core.NewMemoryStore()
	}
	if sound == nil {
		sound = core.NopSound{}
	}
	return &Game{store: store, sound: sound}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "galaxy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Galaxy Shooter"
}

// Reset loads configuration and persisted progression and returns to the
// main menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}

	g.rng = NewSimpleRNG(runtime.Seed)
	// Effects draw from their own stream so visuals never shift gameplay rolls.
	g.fx = NewEffects(NewSimpleRNG(runtime.Seed ^ effectsSeedMask))
	g.applyConfig(cfg)

	g.progression = LoadProgression(g.store)
	g.settings = LoadSettings(g.store)
	g.prevInput = core.NewInputFrame()
	g.enterMainMenu()
}

func (g *Game) applyConfig(cfg config.ShooterConfig) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.spawner = NewSpawner(cfg, g.difficulty, g.rng, WorldWidth)
}

// setRNG replaces the gameplay randomness source.
func (g *Game) setRNG(rng RNG) {
	g.rng = rng
	g.spawner.rng = rng
}

// Step advances one tick of the configured frame duration.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Update(in, g.runtime.FrameDuration())
}

// Update advances the game by dt of simulation time.
func (g *Game) Update(in core.InputFrame, dt time.Duration) core.StepResult {
	pressed := func(a core.Action) bool {
		return in.Has(a) && !g.prevInput.Has(a)
	}

	switch g.phase {
	case PhaseMainMenu:
		g.updateMainMenu(pressed)
	case PhaseLevelSelect:
		g.updateLevelSelect(pressed)
	case PhasePowerUpMenu:
		g.updatePowerUpMenu(pressed)
	case PhaseSettingsMenu:
		g.updateSettingsMenu(pressed)
	case PhasePlaying:
		if pressed(core.ActionPause) {
			g.phase = PhasePaused
			break
		}
		g.updatePlaying(in, pressed, dt)
	case PhasePaused:
		switch {
		case pressed(core.ActionPause), pressed(core.ActionConfirm):
			g.phase = PhasePlaying
		case pressed(core.ActionBack):
			g.enterMainMenu()
		}
	case PhaseLevelComplete:
		switch {
		case pressed(core.ActionConfirm):
			g.nextLevel()
		case pressed(core.ActionBack):
			g.enterMainMenu()
		}
	case PhaseGameOver:
		switch {
		case pressed(core.ActionConfirm):
			g.enterLevelSelect()
		case pressed(core.ActionBack):
			g.enterMainMenu()
		}
	}

	g.ticks++
	g.prevInput = in.Clone()
	return core.StepResult{State: g.State()}
}

// menuStep returns -1, +1 or 0 for an Up/Down (or Left/Right) press.
func menuStep(pressed func(core.Action) bool, back, forward core.Action) int {
	switch {
	case pressed(back):
		return -1
	case pressed(forward):
		return 1
	default:
		return 0
	}
}

func (g *Game) enterMainMenu() {
	g.phase = PhaseMainMenu
	g.cursor = 0
	g.message = ""
}

func (g *Game) enterLevelSelect() {
	g.phase = PhaseLevelSelect
	g.levelPick = g.settings.LastLevel
	g.message = ""
}

func (g *Game) updateMainMenu(pressed func(core.Action) bool) {
	g.cursor = wrap(g.cursor+menuStep(pressed, core.ActionUp, core.ActionDown), len(mainMenuItems))
	if !pressed(core.ActionConfirm) {
		return
	}
	switch g.cursor {
	case 0:
		g.enterLevelSelect()
	case 1:
		g.phase = PhasePowerUpMenu
		g.cursor = 0
	case 2:
		g.phase = PhaseSettingsMenu
		g.cursor = 0
	}
}

func (g *Game) updateLevelSelect(pressed func(core.Action) bool) {
	step := menuStep(pressed, core.ActionLeft, core.ActionRight) +
		menuStep(pressed, core.ActionUp, core.ActionDown)
	g.levelPick = core.Clamp(g.levelPick+step, 1, g.settings.LastLevel)

	switch {
	case pressed(core.ActionConfirm):
		g.StartLevel(g.levelPick)
	case pressed(core.ActionBack):
		g.enterMainMenu()
	}
}

func (g *Game) updatePowerUpMenu(pressed func(core.Action) bool) {
	g.cursor = wrap(g.cursor+menuStep(pressed, core.ActionUp, core.ActionDown), int(TrackCount))

	switch {
	case pressed(core.ActionConfirm):
		t := Track(g.cursor)
		if err := g.progression.Upgrade(t); err != nil {
			g.message = upgradeMessage(err)
			return
		}
		if g.player != nil {
			g.player.ApplyUpgrades(g.progression)
		}
		g.message = t.String() + " upgraded"
		g.play(CuePowerUp)
	case pressed(core.ActionBack):
		g.enterMainMenu()
	}
}

func upgradeMessage(err error) string {
	switch {
	case errors.Is(err, ErrMaxLevel):
		return "Already at max level"
	case errors.Is(err, ErrInsufficientGold):
		return "Not enough gold"
	default:
		return err.Error()
	}
}

func (g *Game) updateSettingsMenu(pressed func(core.Action) bool) {
	g.cursor = wrap(g.cursor+menuStep(pressed, core.ActionUp, core.ActionDown), 2)

	if delta := menuStep(pressed, core.ActionLeft, core.ActionRight); delta != 0 {
		if g.cursor == 0 {
			g.settings.AdjustMaster(delta)
		} else {
			g.settings.AdjustSFX(delta)
		}
		g.play(CueShot)
	}
	if pressed(core.ActionBack) || pressed(core.ActionConfirm) {
		g.enterMainMenu()
	}
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// StartLevel begins a fresh run at level n keeping gold and upgrades.
func (g *Game) StartLevel(n int) {
	g.score = 0
	g.player = NewPlayer(g.cfg.Player, g.progression, WorldWidth, WorldHeight)
	g.loadLevel(n)
}

func (g *Game) nextLevel() {
	g.player.Buffs = g.player.Buffs[:0]
	g.player.HasShield = false
	g.loadLevel(g.level.Number + 1)
}

func (g *Game) loadLevel(n int) {
	g.level = LevelFor(n, g.difficulty)
	g.enemies = g.enemies[:0]
	g.bullets = g.bullets[:0]
	g.enemyBullets = g.enemyBullets[:0]
	g.powerUps = g.powerUps[:0]
	g.gold = g.gold[:0]
	g.fx.Clear()
	g.spawner.Reset()
	g.clock = 0
	g.message = ""
	g.phase = PhasePlaying
}

func (g *Game) updatePlaying(in core.InputFrame, pressed func(core.Action) bool, dt time.Duration) {
	if dt <= 0 {
		return
	}
	frames := float64(dt) / float64(referenceFrame)
	g.clock += dt
	p := g.player

	p.Update(in.Has(core.ActionLeft), in.Has(core.ActionRight), frames, dt, WorldWidth)
	p.ExpireBuffs(g.clock)

	if in.Has(core.ActionFire) {
		if shots := p.Shoot(); shots != nil {
			g.bullets = append(g.bullets, shots...)
			g.play(CueShot)
		}
	}
	if pressed(core.ActionSpecial) && p.UseSpecial() {
		g.emp()
	}

	spawned, pu := g.spawner.Tick(frames, &g.level)
	g.enemies = append(g.enemies, spawned...)
	if pu != nil {
		g.powerUps = append(g.powerUps, pu)
	}

	g.updateEntities(frames, dt)
	g.resolveCollisions()
	g.checkOutcome()
}

// updateEntities moves every collection, then filters out what left the
// playfield or expired.
func (g *Game) updateEntities(frames float64, dt time.Duration) {
	for _, e := range g.enemies {
		e.Update(frames, dt, WorldWidth)
		if b := e.TryShoot(frames, g.rng, g.cfg.Enemies.BulletSpeed); b != nil {
			g.enemyBullets = append(g.enemyBullets, b)
		}
		if e.Y > WorldHeight {
			e.Remove()
		}
	}
	g.pruneEnemies()

	g.bullets = moveBullets(g.bullets, frames)
	g.enemyBullets = moveBullets(g.enemyBullets, frames)

	powerUps := g.powerUps[:0]
	for _, pu := range g.powerUps {
		pu.Update(frames)
		if pu.Y <= WorldHeight {
			powerUps = append(powerUps, pu)
		}
	}
	g.powerUps = powerUps

	gold := g.gold[:0]
	for _, gp := range g.gold {
		gp.Update(frames)
		if gp.Y <= WorldHeight {
			gold = append(gold, gp)
		}
	}
	g.gold = gold

	g.fx.Update(frames)
}

func moveBullets(bullets []*Bullet, frames float64) []*Bullet {
	active := bullets[:0]
	for _, b := range bullets {
		b.Update(frames)
		if !b.OutOfBounds(WorldWidth, WorldHeight) {
			active = append(active, b)
		}
	}
	return active
}

func (g *Game) pruneEnemies() {
	active := g.enemies[:0]
	for _, e := range g.enemies {
		if !e.Gone() {
			active = append(active, e)
		}
	}
	g.enemies = active
}

// checkOutcome moves to game over or level complete.
func (g *Game) checkOutcome() {
	if g.player.Dead() {
		g.settings.RecordScore(g.score)
		g.phase = PhaseGameOver
		g.play(CueDeath)
		return
	}
	if g.level.Done() && len(g.enemies) == 0 {
		g.settings.ReachLevel(g.level.Number + 1)
		g.phase = PhaseLevelComplete
		g.play(CueLevelComplete)
	}
}

func (g *Game) addScore(n int) {
	g.score += n
	g.settings.RecordScore(g.score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	lives := 0
	if g.player != nil {
		lives = g.player.Lives
	}
	return core.GameState{
		Score:    g.score,
		Level:    g.level.Number,
		Lives:    lives,
		Phase:    g.phase,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the active state machine phase.
func (g *Game) Phase() string {
	return g.phase
}

// Progression exposes gold and upgrade levels.
func (g *Game) Progression() *Progression {
	return g.progression
}

// Settings exposes volumes and records.
func (g *Game) Settings() *Settings {
	return g.settings
}

// Level returns a copy of the level being played.
func (g *Game) Level() Level {
	return g.level
}
