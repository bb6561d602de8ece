package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagTicks      int
	flagDT         float64
	flagUntilClear bool
	flagRecord     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless with the autopilot",
	Long: `Run the simulation without a terminal UI. The paddle follows the
ball, every tick advances by a fixed dt, and the final snapshot hash is
printed. The same flags always print the same hash.

Examples:
  breakout simulate
  breakout simulate --ticks 36000 --until-clear
  breakout simulate --dt 0.0166667 --layout checker --record`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().Float64Var(&flagDT, "dt", 1.0/60, "Seconds per tick")
	simulateCmd.Flags().BoolVar(&flagUntilClear, "until-clear", false, "Stop early once every brick is destroyed")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Store the run in session history")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger, _, err := newLogger(false)
	if err != nil {
		return err
	}
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}
	preset, _ := config.ParsePreset(flagDifficulty)
	config.ApplyBreakoutPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	layoutID := cfg.Bricks.Layout
	if flagLayout != "" {
		layoutID = flagLayout
	}
	layout, err := breakout.LayoutByID(layoutID)
	if err != nil {
		return err
	}

	world := breakout.NewWorld(breakout.ParamsFromConfig(cfg), layout)
	logger.Info("simulation started", "layout", layout.ID, "bricks", world.BricksTotal(), "ticks", flagTicks, "dt", flagDT)

	start := time.Now()
	hits := 0
	for range flagTicks {
		report := world.Tick(flagDT, breakout.AutopilotDirection(world.Store))
		hits += len(report.Hits)
		for _, id := range report.Removed {
			logger.Debug("brick removed", "id", id, "tick", world.Ticks(), "remaining", world.BricksRemaining())
		}
		if flagUntilClear && world.Cleared() {
			break
		}
	}
	elapsed := time.Since(start)

	snap := world.Snapshot()
	destroyed := world.BricksTotal() - world.BricksRemaining()
	logger.Info("simulation finished",
		"ticks", world.Ticks(),
		"hits", hits,
		"destroyed", destroyed,
		"cleared", world.Cleared(),
		"elapsed", elapsed.Round(time.Microsecond))

	if flagRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.SaveSession(storage.Session{
			GameID:          "breakout_attract",
			Layout:          layout.ID,
			Ticks:           world.Ticks(),
			Duration:        time.Duration(float64(world.Ticks()) * flagDT * float64(time.Second)),
			BricksTotal:     world.BricksTotal(),
			BricksDestroyed: destroyed,
		})
		if err != nil {
			return err
		}
		logger.Info("session recorded", "id", id)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ticks:   %d\n", world.Ticks())
	fmt.Fprintf(out, "bricks:  %d/%d destroyed\n", destroyed, world.BricksTotal())
	if ball, ok := snap.Find(breakout.KindBall); ok {
		fmt.Fprintf(out, "ball:    (%.3f, %.3f) v=(%.3f, %.3f)\n",
			ball.Center.X, ball.Center.Y, snap.BallVelocity.X, snap.BallVelocity.Y)
	}
	fmt.Fprintf(out, "hash:    %016x\n", snap.Hash())
	return nil
}
