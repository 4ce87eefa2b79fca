// galaxy is a vertical arcade space shooter for the terminal, a desktop
// window or remote play over SSH.
//
// Usage:
//
//	galaxy play              - Play in the terminal
//	galaxy window            - Play in a desktop window
//	galaxy serve             - Start SSH server for remote play
//	galaxy scores            - Show high scores
//	galaxy levels            - Print the level catalog
//	galaxy progress show     - Print saved progression
//	galaxy progress reset    - Clear saved progression
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.galaxy/scores.db)
//	--config <path>       - Custom shooter config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--mute                - Disable audio
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/galaxy-shooter/internal/audio"
	"github.com/vovakirdan/galaxy-shooter/internal/config"
	"github.com/vovakirdan/galaxy-shooter/internal/core"
	"github.com/vovakirdan/galaxy-shooter/internal/games/shooter"
	"github.com/vovakirdan/galaxy-shooter/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagMute       bool
)

// logger is configured in PersistentPreRunE.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "galaxy",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galaxy",
	Short: "Galaxy Shooter - an arcade space shooter",
	Long: `Galaxy Shooter is a vertical arcade shooter. Clear each level's quota of
enemy ships, collect gold and power-ups, and spend gold on permanent upgrades.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - View high scores
  levels    - Print the level catalog
  progress  - Show or reset saved progression

Examples:
  galaxy play
  galaxy play --difficulty hard
  galaxy window --mute
  galaxy serve --ssh :2222
  galaxy scores --plain`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.galaxy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(progressCmd)
}

// setup validates global flags and hands config choices to the game package.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadShooter(flagConfig); err != nil {
			return err
		}
	}

	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(preset)
	return nil
}

// runtimeConfig builds the runtime settings for a screen of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the database, or returns nil with a warning so the game
// still runs with in-memory progression.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, progress will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// progressStore picks the persistent store when available.
func progressStore(store *storage.Store) core.KVStore {
	if store == nil {
		return core.NewMemoryStore()
	}
	return store
}

// newSound returns a speaker-backed player unless muted. The returned
// function releases the device.
func newSound() (core.SoundPlayer, func()) {
	if flagMute {
		return core.NopSound{}, func() {}
	}
	p := audio.New(logger)
	p.Open()
	return p, p.Close
}

// exitOnError prints err as the CLI does everywhere and exits.
func exitOnError(context string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}
