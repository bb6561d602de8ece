package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var flagShowMasks bool

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List brick layouts",
	Long:  `Shows the built-in brick layouts. Use --masks to print each mask.`,
	Args:  cobra.NoArgs,
	RunE:  runLayouts,
}

func init() {
	layoutsCmd.Flags().BoolVar(&flagShowMasks, "masks", false, "Print the mask of every layout")
}

func runLayouts(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	layouts := breakout.BuiltinLayouts()

	fmt.Fprintln(out, "Available layouts:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "----")
	for _, l := range layouts {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, l.ID, l.Name)
		if flagShowMasks {
			fmt.Fprintln(out)
			fmt.Fprintln(out, l.String())
			fmt.Fprintln(out)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'breakout play --layout <id>' to use one.")
	return nil
}
