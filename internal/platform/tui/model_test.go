package tui

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
	"github.com/vovakirdan/galaxy-shooter/internal/games/shooter"
	"github.com/vovakirdan/galaxy-shooter/internal/storage"
)

type fakeScores struct {
	saved []storage.ScoreEntry
	err   error
}

func (f *fakeScores) SaveScore(e storage.ScoreEntry) (int64, error) {
	f.saved = append(f.saved, e)
	return int64(len(f.saved)), f.err
}

func newTestModel(t *testing.T, scores ScoreSaver) Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	game := shooter.New(core.NewMemoryStore(), core.NopSound{})
	m := NewModel(game, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 7},
		Scores:  scores,
		Player:  "ann",
		Logger:  log.New(io.Discard),
	})
	m.Init()
	return m
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	scores := &fakeScores{}
	m := newTestModel(t, scores)

	m.gameState = core.GameState{GameOver: true, Score: 120, Level: 3}
	m.recordScore()
	m.recordScore()
	if len(scores.saved) != 1 {
		t.Fatalf("saved %d times, want 1", len(scores.saved))
	}
	got := scores.saved[0]
	if got.GameID != "galaxy" || got.Player != "ann" || got.Score != 120 || got.Level != 3 {
		t.Errorf("saved %+v", got)
	}

	// A new run re-arms saving.
	m.gameState = core.GameState{Score: 10}
	m.recordScore()
	m.gameState = core.GameState{GameOver: true, Score: 30, Level: 1}
	m.recordScore()
	if len(scores.saved) != 2 {
		t.Errorf("second game over saved %d total, want 2", len(scores.saved))
	}
}

func TestModelSkipsZeroScoreAndSurvivesErrors(t *testing.T) {
	scores := &fakeScores{err: errors.New("disk full")}
	m := newTestModel(t, scores)

	m.gameState = core.GameState{GameOver: true}
	m.recordScore()
	if len(scores.saved) != 0 {
		t.Error("zero score saved")
	}

	m.gameState = core.GameState{}
	m.recordScore()
	m.gameState = core.GameState{GameOver: true, Score: 5}
	m.recordScore()
	if len(scores.saved) != 1 || !m.scoreSaved {
		t.Error("failed save should still be attempted once")
	}
}

func TestModelKeysFeedTicks(t *testing.T) {
	m := newTestModel(t, nil)
	now := time.Now()

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, now)
	m = next.(Model)
	next, cmd := m.handleTick(now.Add(16 * time.Millisecond))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	if m.State().Phase != shooter.PhaseLevelSelect {
		t.Errorf("phase = %q, want level select", m.State().Phase)
	}

	_, quitCmd := m.handleKey(runeKey('q'), now)
	if quitCmd == nil {
		t.Error("q should quit")
	}
}

func TestModelViewAndResize(t *testing.T) {
	m := newTestModel(t, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 20 {
		t.Errorf("view has %d lines, want 20", lines)
	}
	if !strings.Contains(view, "GALAXY") && !strings.Contains(view, "Play") {
		t.Error("main menu not rendered")
	}
}

func TestRenderScreenPlainCells(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hi")
	s.SetColored(4, 1, '*', core.ColorRed)

	out := RenderScreen(s)
	rows := strings.Split(out, "\n")
	if len(rows) != 2 || !strings.HasPrefix(rows[0], "hi") {
		t.Fatalf("rows = %q", rows)
	}
	if !strings.Contains(rows[1], "*") {
		t.Error("colored cell lost")
	}
}

func TestScoreboardLoadsStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore(storage.ScoreEntry{GameID: "galaxy", Player: "ann", Score: 300, Level: 4})
	store.SaveScore(storage.ScoreEntry{GameID: "galaxy", Score: 100, Level: 2})

	m := NewScoreboardModel(store, "galaxy", "Galaxy Shooter", 100, 30)
	if len(m.scores) != 2 || len(m.players) != 2 || m.stats.HighScore != 300 {
		t.Fatalf("scores %d players %d stats %+v", len(m.scores), len(m.players), m.stats)
	}
	if rows := m.table.Rows(); rows[0][1] != "300" || rows[1][3] != "local" {
		t.Errorf("rows = %v", rows)
	}
	if view := m.View(); !strings.Contains(view, "Best level") {
		t.Error("stats panel missing on a wide terminal")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewPlayers || m.table.Rows()[0][0] != "ann" {
		t.Errorf("player view rows = %v", m.table.Rows())
	}

	next, _ = m.Update(runeKey('b'))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "galaxy", "Galaxy Shooter", 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard message missing")
	}
}

func TestUserNamespace(t *testing.T) {
	tests := map[string]string{
		"ann":   "user/ann/",
		"":      "user/anonymous/",
		" bob ": "user/bob/",
		"a/b":   "user/a_b/",
	}
	for in, want := range tests {
		if got := UserNamespace(in); got != want {
			t.Errorf("UserNamespace(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSessionOptionsIsolateUsers(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	t.Setenv("HOME", t.TempDir())

	srv := &SSHServer{config: DefaultSSHServerConfig(), store: store, logger: log.New(io.Discard)}
	game, opts := srv.sessionOptions("ann", 80, 24)
	game.Reset(opts.Runtime)
	game.Progression().AddGold(40)

	if v, ok := store.GetInt("user/ann/gold"); !ok || v != 40 {
		t.Errorf("namespaced gold = %d, %v", v, ok)
	}
	if _, ok := store.GetInt("gold"); ok {
		t.Error("gold leaked into the global namespace")
	}
	if opts.Scores == nil || opts.Player != "ann" || opts.Runtime.ScreenW != 80 {
		t.Errorf("options = %+v", opts)
	}

	noStore := &SSHServer{config: DefaultSSHServerConfig(), logger: log.New(io.Discard)}
	if _, opts := noStore.sessionOptions("bob", 80, 24); opts.Scores != nil {
		t.Error("scores enabled without a store")
	}
}
