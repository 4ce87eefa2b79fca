package window

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
	"github.com/vovakirdan/galaxy-shooter/internal/games/shooter"
	"github.com/vovakirdan/galaxy-shooter/internal/storage"
)

type fakeScores struct{ saved []storage.ScoreEntry }

func (f *fakeScores) SaveScore(e storage.ScoreEntry) (int64, error) {
	f.saved = append(f.saved, e)
	return int64(len(f.saved)), nil
}

func newTestApp(t *testing.T, scores ScoreSaver, held ...ebiten.Key) *App {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	game := shooter.New(core.NewMemoryStore(), core.NopSound{})
	app := NewApp(game, Options{
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 3},
		Scores:  scores,
		Logger:  log.New(io.Discard),
	})
	app.pressed = keySet(held...)
	return app
}

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestInputBindings(t *testing.T) {
	tests := []struct {
		key    ebiten.Key
		action core.Action
	}{
		{ebiten.KeyA, core.ActionLeft},
		{ebiten.KeyArrowLeft, core.ActionLeft},
		{ebiten.KeyD, core.ActionRight},
		{ebiten.KeySpace, core.ActionFire},
		{ebiten.KeyK, core.ActionFire},
		{ebiten.KeyE, core.ActionSpecial},
		{ebiten.KeyEnter, core.ActionConfirm},
		{ebiten.KeyEscape, core.ActionBack},
		{ebiten.KeyP, core.ActionPause},
	}
	app := newTestApp(t, nil)
	for _, tt := range tests {
		app.pressed = keySet(tt.key)
		in := app.input()
		if !in.Has(tt.action) || len(in.Actions) != 1 {
			t.Errorf("key %v -> %v, want only %v", tt.key, in.Actions, tt.action)
		}
	}
}

func TestUpdateDrivesGame(t *testing.T) {
	app := newTestApp(t, nil, ebiten.KeyEnter)
	if err := app.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if app.game.Phase() != shooter.PhaseLevelSelect {
		t.Errorf("phase = %q, want level select", app.game.Phase())
	}
}

func TestQuitTerminates(t *testing.T) {
	app := newTestApp(t, nil, ebiten.KeyQ)
	if err := app.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, want ebiten.Termination", err)
	}
}

func TestRecordScoreOnce(t *testing.T) {
	scores := &fakeScores{}
	app := newTestApp(t, scores)

	over := core.GameState{GameOver: true, Score: 90, Level: 2}
	app.recordScore(over)
	app.recordScore(over)
	app.recordScore(core.GameState{})
	app.recordScore(over)
	if len(scores.saved) != 2 {
		t.Fatalf("saved %d, want 2", len(scores.saved))
	}
	if scores.saved[0].GameID != "galaxy" || scores.saved[0].Level != 2 {
		t.Errorf("saved %+v", scores.saved[0])
	}
}

func TestLayoutIsWorldSize(t *testing.T) {
	app := newTestApp(t, nil)
	w, h := app.Layout(300, 200)
	if w != shooter.WorldWidth || h != shooter.WorldHeight {
		t.Errorf("Layout = %dx%d", w, h)
	}
}

func TestTextPlacement(t *testing.T) {
	if x, y := textOrigin(10.7, 20, 11); x != 10 || y != 31 {
		t.Errorf("textOrigin = %d,%d", x, y)
	}
	if got := centeredX(1000, 140); got != 430 {
		t.Errorf("centeredX = %v", got)
	}
}

func TestCanvasWithoutTargetIsNoop(t *testing.T) {
	c := NewCanvas(shooter.WorldWidth, shooter.WorldHeight)
	if b := c.Bounds(); b.W != shooter.WorldWidth || b.H != shooter.WorldHeight {
		t.Errorf("Bounds = %+v", b)
	}
	c.Clear()
	c.FillRect(core.NewRect(0, 0, 10, 10), core.ColorRed, 1)
	c.StrokeRect(core.NewRect(0, 0, 10, 10), core.ColorRed)
	c.FillCircle(5, 5, 3, core.ColorRed, 1)
	c.Text(0, 0, "x", core.ColorRed)
	c.TextCentered(10, "x", core.ColorRed)
}
