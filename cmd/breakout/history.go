package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryGame  string
	flagInteractive  bool
	flagClear        bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded sessions",
	Long: `Display the most recent sessions and per-mode statistics.

Examples:
  breakout history
  breakout history --game breakout_attract --limit 20
  breakout history --interactive
  breakout history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().StringVar(&flagHistoryGame, "game", "breakout", "Mode to show: breakout or breakout_attract")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded sessions of the mode")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagHistoryGame) {
		return fmt.Errorf("unknown mode %q", flagHistoryGame)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		cfg := runtimeConfig()
		_, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	if flagClear {
		if err := store.ClearSessions(flagHistoryGame); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared history of %s.\n", flagHistoryGame)
		return nil
	}

	sessions, err := store.RecentSessions(flagHistoryGame, flagHistoryLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session History - %s\n\n", flagHistoryGame)

	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'breakout play' to record the first one!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-16s  %-9s  %-8s  %-8s  %s\n", "Date", "Layout", "Bricks", "Ticks", "Time")
	fmt.Fprintf(out, "  %-16s  %-9s  %-8s  %-8s  %s\n", "----", "------", "------", "-----", "----")

	for _, s := range sessions {
		bricks := fmt.Sprintf("%d/%d", s.BricksDestroyed, s.BricksTotal)
		if s.Cleared() {
			bricks += "*"
		}
		fmt.Fprintf(out, "  %-16s  %-9s  %-8s  %-8d  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.Layout, bricks, s.Ticks, s.Duration.Round(100*time.Millisecond))
	}

	stats, err := store.GetGameStats(flagHistoryGame)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Sessions: %d  Clears: %d  Bricks destroyed: %d\n", stats.Sessions, stats.Clears, stats.BricksDestroyed)

	best, err := store.BestClear(flagHistoryGame)
	if err != nil {
		return err
	}
	if best != nil {
		fmt.Fprintf(out, "Fastest clear: %d ticks on %s\n", best.Ticks, best.Layout)
	}
	return nil
}
