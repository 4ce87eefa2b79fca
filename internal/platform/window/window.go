package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
	"github.com/vovakirdan/galaxy-shooter/internal/games/shooter"
	"github.com/vovakirdan/galaxy-shooter/internal/storage"
)

// ScoreSaver records finished runs.
type ScoreSaver interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
}

// Options configures the window shell.
type Options struct {
	Runtime core.RuntimeConfig
	Scores  ScoreSaver // nil disables score saving
	Logger  *log.Logger
	Scale   float64 // window size multiplier; 0 means 1
}

// bindings maps actions to the keys that hold them.
var bindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace, ebiten.KeyK}},
	{core.ActionSpecial, []ebiten.Key{ebiten.KeyX, ebiten.KeyE}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyB, ebiten.KeyEscape}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// App implements ebiten.Game around a shooter.Game.
type App struct {
	game       *shooter.Game
	canvas     *Canvas
	opts       Options
	pressed    func(ebiten.Key) bool
	scoreSaved bool
}

var _ ebiten.Game = (*App)(nil)

// NewApp creates the window shell and resets the game.
func NewApp(game *shooter.Game, opts Options) *App {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	game.Reset(opts.Runtime)
	return &App{
		game:    game,
		canvas:  NewCanvas(shooter.WorldWidth, shooter.WorldHeight),
		opts:    opts,
		pressed: ebiten.IsKeyPressed,
	}
}

// input polls the keyboard into an input frame.
func (a *App) input() core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if a.pressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	return frame
}

// Update advances the simulation by one tick.
func (a *App) Update() error {
	in := a.input()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	state := a.game.Update(in, a.opts.Runtime.FrameDuration()).State
	a.recordScore(state)
	return nil
}

func (a *App) recordScore(state core.GameState) {
	if !state.GameOver {
		a.scoreSaved = false
		return
	}
	if a.scoreSaved {
		return
	}
	a.scoreSaved = true
	if a.opts.Scores == nil || state.Score <= 0 {
		return
	}
	_, err := a.opts.Scores.SaveScore(storage.ScoreEntry{
		GameID: a.game.ID(),
		Score:  state.Score,
		Level:  state.Level,
	})
	if err != nil {
		a.opts.Logger.Warn("could not save score", "score", state.Score, "err", err)
	}
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.Target(screen)
	a.game.Render(a.canvas)
}

// Layout fixes the logical screen to the world size.
func (a *App) Layout(_, _ int) (int, int) {
	return shooter.WorldWidth, shooter.WorldHeight
}

// Run opens the window and blocks until it is closed.
func Run(game *shooter.Game, opts Options) error {
	app := NewApp(game, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(shooter.WorldWidth*scale), int(shooter.WorldHeight*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.opts.Runtime.TickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
