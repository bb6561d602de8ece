package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu to pick a mode and layout",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to pick a brick layout and
Enter to select. Leaving a session with B or Q returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change layout
  Enter/Space     - Select
  Tab             - Session history
  Q               - Quit

Examples:
  breakout menu
  breakout menu --fps 30
  breakout menu --db ./breakout.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	host := hostConfig(logger)
	layout := flagLayout
	if layout == "" {
		layout = breakout.DefaultLayoutID
	}

	// Menu loop
	for {
		result, err := tui.RunMenu(cfg, layout)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = result.Config
		layout = result.Layout

		if result.Quit {
			return nil
		}

		var gameID string
		switch result.Choice {
		case tui.MenuHistory:
			goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		case tui.MenuAttract:
			gameID = "breakout_attract"
		default:
			gameID = "breakout"
		}

		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}
		breakout.SetLayout(layout)

		opts := tui.Options{Store: store, Host: host, Logger: logger}
		if err := tui.Run(game, cfg, opts); err != nil {
			logger.Error("session failed", "game", gameID, "err", err)
		}

		// Loop back to menu
	}
}
