package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
	"github.com/vovakirdan/galaxy-shooter/internal/games/shooter"
	"github.com/vovakirdan/galaxy-shooter/internal/storage"
)

// ScoreSaver records finished runs.
type ScoreSaver interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
}

// Options configures a terminal session.
type Options struct {
	Runtime core.RuntimeConfig
	Scores  ScoreSaver // nil disables score saving
	Player  string     // recorded with each score; empty for local play
	Logger  *log.Logger
	// Screenshots enables ctrl+s dumps to ~/.galaxy/screenshots.
	Screenshots bool
}

// Model is the Bubble Tea model for running the shooter.
type Model struct {
	game       *shooter.Game
	screen     *core.Screen
	surface    *core.ScreenSurface
	opts       Options
	keys       *KeyMapper
	held       *HeldKeys
	lastTick   time.Time
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *shooter.Game, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	screen := core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	return Model{
		game:    game,
		screen:  screen,
		surface: core.NewScreenSurface(screen, shooter.WorldWidth, shooter.WorldHeight),
		opts:    opts,
		keys:    NewKeyMapper(),
		held:    NewHeldKeys(DefaultHoldWindow),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" && m.opts.Screenshots {
		m.saveScreenshot()
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Press(action, now)
	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.opts.Runtime.FrameDuration())
	m.lastTick = now

	result := m.game.Update(m.held.Frame(now), dt)
	m.gameState = result.State
	m.recordScore()

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// recordScore saves the run once when it ends and re-arms for the next run.
func (m *Model) recordScore() {
	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.opts.Scores == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.opts.Scores.SaveScore(storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save score", "score", m.gameState.Score, "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.surface)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".galaxy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "err", err)
	}
}

// State returns the summary from the latest tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.surface)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game *shooter.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
