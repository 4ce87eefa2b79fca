package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/galaxy-shooter/internal/games/shooter"
	"github.com/vovakirdan/galaxy-shooter/internal/platform/tui"
	"github.com/vovakirdan/galaxy-shooter/internal/platform/window"
)

var flagScreenshots bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Galaxy Shooter in the terminal.

Controls:
  A/D, Left/Right  - Move
  Space/K          - Fire
  X/E              - EMP burst (special)
  P                - Pause
  Enter            - Confirm
  B/Esc            - Back
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Gentler scaling, fewer enemy shots, one extra life
  normal - Default tuning
  hard   - Steeper scaling, more shots and formations
  fixed  - No per-level scaling

Examples:
  galaxy play
  galaxy play --difficulty hard
  galaxy play --config ./my-shooter.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var flagWindowScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 1000x750 window and play with the same key bindings as the
terminal version.

Examples:
  galaxy window
  galaxy window --scale 0.8 --mute`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	playCmd.Flags().BoolVar(&flagScreenshots, "screenshots", false, "Enable ctrl+s screen dumps to ~/.galaxy/screenshots")
	windowCmd.Flags().Float64Var(&flagWindowScale, "scale", 1, "Window size multiplier")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size early
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore()
	sound, closeSound := newSound()

	opts := tui.Options{
		Runtime:     runtimeConfig(width, height),
		Logger:      logger,
		Screenshots: flagScreenshots,
	}
	if store != nil {
		opts.Scores = store
	}

	runErr := tui.Run(shooter.New(progressStore(store), sound), opts)

	closeSound()
	if store != nil {
		store.Close()
	}
	exitOnError("running game", runErr)
}

func runWindow(_ *cobra.Command, _ []string) {
	store := openStore()
	sound, closeSound := newSound()

	opts := window.Options{
		Runtime: runtimeConfig(1000, 750),
		Logger:  logger,
		Scale:   flagWindowScale,
	}
	if store != nil {
		opts.Scores = store
	}

	runErr := window.Run(shooter.New(progressStore(store), sound), opts)

	closeSound()
	if store != nil {
		store.Close()
	}
	exitOnError("running window", runErr)
}
