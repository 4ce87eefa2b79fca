package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/galaxy-shooter/internal/config"
	"github.com/vovakirdan/galaxy-shooter/internal/games/shooter"
	"github.com/vovakirdan/galaxy-shooter/internal/platform/tui"
	"github.com/vovakirdan/galaxy-shooter/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintLevelsMarksExtrapolated(t *testing.T) {
	var buf bytes.Buffer
	printLevels(&buf, config.NewDifficultyManager(config.DefaultShooterConfig().Difficulty), shooter.CatalogSize()+2)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header + levels + blank + footnote
	if want := 1 + shooter.CatalogSize() + 2 + 2; len(lines) != want {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), want, out)
	}
	if !strings.Contains(lines[1], "scout") {
		t.Errorf("level 1 pool missing: %q", lines[1])
	}
	if !strings.Contains(lines[shooter.CatalogSize()], "boss") {
		t.Errorf("final catalog level should list boss: %q", lines[shooter.CatalogSize()])
	}
	if !strings.Contains(out, "* extrapolated") {
		t.Error("extrapolation footnote missing")
	}
}

func TestPrintScores(t *testing.T) {
	store := openTestStore(t)

	var empty bytes.Buffer
	if err := printScores(&empty, store, 10); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(empty.String(), "No scores recorded yet.") {
		t.Errorf("empty output = %q", empty.String())
	}

	store.SaveScore(storage.ScoreEntry{GameID: gameID, Player: "ann", Score: 900, Level: 5})
	store.SaveScore(storage.ScoreEntry{GameID: gameID, Score: 100, Level: 1})

	var buf bytes.Buffer
	if err := printScores(&buf, store, 10); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"ann", "local", "Best: 900", "level 5", "2 games"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintProgressSeparatesUsers(t *testing.T) {
	store := openTestStore(t)
	shooter.LoadProgression(store).AddGold(120)
	shooter.LoadProgression(store.Namespace(tui.UserNamespace("bob"))).AddGold(30)

	var local bytes.Buffer
	if err := printProgress(&local, store, ""); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(local.String(), "Gold: 120") || strings.Contains(local.String(), "user/") {
		t.Errorf("local output = %s", local.String())
	}

	var bob bytes.Buffer
	if err := printProgress(&bob, store, "bob"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(bob.String(), "Gold: 30") {
		t.Errorf("bob output = %s", bob.String())
	}

	var nobody bytes.Buffer
	if err := printProgress(&nobody, store, "carol"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(nobody.String(), "No progress saved yet.") {
		t.Errorf("carol output = %s", nobody.String())
	}
}

func TestResetProgressKeepsVolumes(t *testing.T) {
	store := openTestStore(t)
	prog := shooter.LoadProgression(store)
	prog.AddGold(500)
	if err := prog.Upgrade(shooter.TrackDamage); err != nil {
		t.Fatal(err)
	}
	settings := shooter.LoadSettings(store)
	settings.RecordScore(4000)
	settings.ReachLevel(6)
	settings.AdjustMaster(-2)
	master := settings.Master

	resetProgress(store)

	prog = shooter.LoadProgression(store)
	if prog.Gold() != 0 || prog.Level(shooter.TrackDamage) != 0 {
		t.Errorf("gold %d damage %d after reset", prog.Gold(), prog.Level(shooter.TrackDamage))
	}
	settings = shooter.LoadSettings(store)
	if settings.HighScore != 0 || settings.LastLevel != 1 {
		t.Errorf("records not reset: %+v", settings)
	}
	if settings.Master != master {
		t.Errorf("master volume %v, want %v", settings.Master, master)
	}
}
