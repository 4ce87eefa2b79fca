package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
	"github.com/vovakirdan/galaxy-shooter/internal/games/shooter"
	"github.com/vovakirdan/galaxy-shooter/internal/platform/tui"
	"github.com/vovakirdan/galaxy-shooter/internal/storage"
)

var (
	flagProgressUser string
	flagResetAll     bool
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or reset saved progression",
	Long: `Inspect or clear gold, upgrade levels, volumes and records.

Without --user the local player's progression is used. SSH players are
stored under their user name.

Examples:
  galaxy progress show
  galaxy progress show --user alice
  galaxy progress reset
  galaxy progress reset --all`,
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print saved progression",
	Args:  cobra.NoArgs,
	Run:   runProgressShow,
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear gold, upgrades and records",
	Long: `Reset gold and upgrade levels to zero, the high score to zero and the
starting level to 1. Volume settings are kept. With --all every stored key,
including those of SSH players, is removed.`,
	Args: cobra.NoArgs,
	Run:  runProgressReset,
}

func init() {
	progressCmd.PersistentFlags().StringVar(&flagProgressUser, "user", "", "SSH user name")
	progressResetCmd.Flags().BoolVar(&flagResetAll, "all", false, "Remove progression for every player")

	progressCmd.AddCommand(progressShowCmd)
	progressCmd.AddCommand(progressResetCmd)
}

func runProgressShow(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := printProgress(os.Stdout, store, flagProgressUser); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading progress: %v\n", err)
		os.Exit(1)
	}
}

// printProgress lists the raw keys for one player followed by the
// upgrade summary.
func printProgress(w io.Writer, store *storage.Store, user string) error {
	prefix := ""
	var kv core.KVStore = store
	if user != "" {
		prefix = tui.UserNamespace(user)
		kv = store.Namespace(prefix)
	}

	values, err := store.Progress(prefix)
	if err != nil {
		return err
	}

	shown := 0
	for _, v := range values {
		key := strings.TrimPrefix(v.Key, prefix)
		// Local view hides SSH players.
		if user == "" && strings.HasPrefix(key, "user/") {
			continue
		}
		if shown == 0 {
			fmt.Fprintf(w, "  %-24s  %-10s  %s\n", "Key", "Value", "Updated")
			fmt.Fprintf(w, "  %-24s  %-10s  %s\n", "---", "-----", "-------")
		}
		fmt.Fprintf(w, "  %-24s  %-10s  %s\n", key, v.String(), v.Modified)
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(w, "No progress saved yet.")
		return nil
	}

	prog := shooter.LoadProgression(kv)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Gold: %d\n", prog.Gold())
	for t := shooter.TrackDamage; t < shooter.TrackCount; t++ {
		next := "maxed"
		if cost, ok := prog.Cost(t); ok {
			next = fmt.Sprintf("next %d gold", cost)
		}
		fmt.Fprintf(w, "  %-8s  level %d  (%s)\n", t, prog.Level(t), next)
	}
	return nil
}

func runProgressReset(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResetAll {
		if err := store.ClearProgress(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing progress: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All progression removed.")
		return
	}

	var kv core.KVStore = store
	who := "local player"
	if flagProgressUser != "" {
		kv = store.Namespace(tui.UserNamespace(flagProgressUser))
		who = flagProgressUser
	}
	resetProgress(kv)
	fmt.Printf("Progression reset for %s.\n", who)
}

// resetProgress clears gold, upgrades and records but keeps volumes.
func resetProgress(kv core.KVStore) {
	shooter.LoadProgression(kv).Reset()
	shooter.LoadSettings(kv).ResetRecords()
}
