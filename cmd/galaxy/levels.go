package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/galaxy-shooter/internal/config"
	"github.com/vovakirdan/galaxy-shooter/internal/games/shooter"
)

var flagLevelCount int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the level catalog",
	Long: `List levels with their quota, spawn pacing, power-up rate, enemy pool and
special mechanics. Levels past the hand-authored catalog are extrapolated
using the active difficulty settings.

Examples:
  galaxy levels
  galaxy levels --count 15 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagLevelCount, "count", 10, "Number of levels to print")
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	preset, _ := config.ParsePreset(flagDifficulty)
	config.ApplyShooterPreset(&cfg, preset)

	printLevels(os.Stdout, config.NewDifficultyManager(cfg.Difficulty), flagLevelCount)
}

func printLevels(w io.Writer, dm *config.DifficultyManager, count int) {
	if count < 1 {
		count = 1
	}

	fmt.Fprintf(w, "%-3s  %-18s  %5s  %6s  %7s  %-40s  %s\n", "#", "Name", "Quota", "Delay", "PowerUp", "Pool", "Features")
	for n := 1; n <= count; n++ {
		l := shooter.LevelFor(n, dm)
		pool := make([]string, len(l.Pool))
		for i, t := range l.Pool {
			pool[i] = t.String()
		}
		marker := ""
		if n > shooter.CatalogSize() {
			marker = "*"
		}
		fmt.Fprintf(w, "%-3d  %-18s  %5d  %6.1f  %7.4f  %-40s  %s\n",
			l.Number, l.Name+marker, l.Quota, l.SpawnDelay, l.PowerUpRate, strings.Join(pool, ","), l.Features)
	}
	if count > shooter.CatalogSize() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "* extrapolated")
	}
}
