// breakout runs a Breakout simulation in the terminal.
//
// Usage:
//
//	breakout play              - Play a session
//	breakout menu              - Start menu to pick a mode and layout
//	breakout simulate          - Run the simulation headless and print its hash
//	breakout history           - Show recorded sessions
//	breakout layouts           - List brick layouts
//	breakout config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.arcade/breakout.db)
//	--config <path>      - Load a custom YAML or TOML config
//	--difficulty <name>  - Preset: easy, normal, hard, fixed
//	--layout <id>        - Brick layout override
//
// Defaults for --db, --config and --fps can come from ARCADE_DB,
// ARCADE_CONFIG and ARCADE_FPS, optionally set in a .env file.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const defaultDBPath = "~/.arcade/breakout.db"

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLayout     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	// Flag defaults read the environment, so .env is loaded first.
	// A missing .env is the common case.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", envInt("ARCADE_FPS", 60), "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envString("ARCADE_DB", defaultDBPath), "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", envString("ARCADE_CONFIG", ""), "Path to custom breakout config (YAML or TOML)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - a brick breaking simulation in your terminal",
	Long: `Breakout runs a deterministic brick breaking simulation and
draws it in your terminal.

Available commands:
  play      - Play a session directly
  menu      - Interactive menu with layout picker
  simulate  - Run headless with the autopilot
  history   - View recorded sessions
  layouts   - List brick layouts
  config    - Print the effective configuration

Examples:
  breakout play
  breakout play --layout pyramid --difficulty easy
  breakout menu
  breakout simulate --ticks 3600
  breakout history`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		if flagLayout != "" {
			if _, err := breakout.LayoutByID(flagLayout); err != nil {
				return err
			}
		}
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}

		breakout.SetConfigPath(flagConfig)
		breakout.SetDifficultyPreset(flagDifficulty)
		breakout.SetLayout(flagLayout)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Brick layout (see 'breakout layouts')")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs of interactive sessions to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Interactive sessions own the
// terminal, so they log to --log-file or nowhere.
func newLogger(interactive bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if interactive {
		w = io.Discard
		if flagLogFile != "" {
			f, err := os.OpenFile(expandHome(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return nil, nil, fmt.Errorf("open log file: %w", err)
			}
			w, closer = f, f
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "breakout",
		Level:           level,
	})
	return logger, closer, nil
}

// runtimeConfig reads the terminal size for the initial screen.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

// openStore opens the history database. Sessions still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// hostConfig returns the host section of the effective configuration.
func hostConfig(logger *log.Logger) config.HostConfig {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultBreakoutConfig()
	}
	return cfg.Host
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
