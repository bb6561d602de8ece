package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would start with, after the
config search path and the difficulty preset are applied. The output is
a valid config file.

Examples:
  breakout config > ~/.arcade/configs/breakout.yaml
  breakout config --format toml --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		return err
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
	if flagLayout != "" {
		cfg.Bricks.Layout = flagLayout
	}

	return config.Encode(cmd.OutOrStdout(), format, cfg)
}
