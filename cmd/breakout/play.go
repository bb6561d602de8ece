package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var flagAttract bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a Breakout session.

Controls:
  Left/Right, A/D, H/L - Move paddle
  P/Esc                - Pause
  R                    - Restart
  I                    - Toggle entity inspector
  Ctrl+S               - Save screenshot
  B                    - Back to the menu
  Q/Ctrl+C             - Quit

Difficulty options (applied at session start):
  easy   - Wide fast paddle, slow ball
  normal - Default dimensions and speeds
  hard   - Narrow paddle, fast ball
  fixed  - Use the config file as is

Examples:
  breakout play
  breakout play --layout diamond
  breakout play --difficulty hard
  breakout play --attract
  breakout play --config ./my-breakout.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAttract, "attract", false, "Let the autopilot drive the paddle")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	game := breakout.New()
	if flagAttract {
		game = breakout.NewAttract()
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Store:  store,
		Host:   hostConfig(logger),
		Logger: logger,
	}
	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if err := game.LoadError(); err != nil {
		logger.Warn("session ran on defaults", "err", err)
	}
	return nil
}
