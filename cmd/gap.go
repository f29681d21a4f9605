package cmd

import (
	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/gamesgap/gamesgap/internal/engine"
	"github.com/gamesgap/gamesgap/internal/outwriter"
	"github.com/spf13/cobra"
)

// gapCmd lists sport-games groups below the participation threshold.
var gapCmd = &cobra.Command{
	Use:   "gap [dataset-path]",
	Short: "Find sports whose female participation falls below a threshold.",
	Long: `List sport-games groups whose female participation ratio is below
the configured threshold, ordered from the widest gap to the narrowest.

Each entry reports the shortfall (threshold minus actual ratio) so the
results double as a prioritized backlog for closing the gap.

Examples:
  # Default threshold of 0.45
  gamesgap gap athlete_events.csv

  # Stricter parity bar
  gamesgap gap --threshold 0.5 --season summer

  # Full list, no limit-induced truncation
  gamesgap gap --limit 1000`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		entries, duration, err := engine.GetGapResults(cfg)
		if err != nil {
			contract.LogFatal("Cannot run gap analysis", err)
		}
		limited := engine.Limit(entries, cfg.ResultLimit)
		if err := outwriter.NewOutWriter().WriteGap(limited, cfg, duration); err != nil {
			contract.LogFatal("Cannot write gap results", err)
		}
	},
}
