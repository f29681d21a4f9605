package cmd

import (
	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/gamesgap/gamesgap/internal/engine"
	"github.com/gamesgap/gamesgap/internal/outwriter"
	"github.com/spf13/cobra"
)

// trendCmd computes the female participation trend over time.
var trendCmd = &cobra.Command{
	Use:   "trend [dataset-path]",
	Short: "Show the female participation ratio per Games edition over time.",
	Long: `Compute a chronological series of female participation ratios.

Each point aggregates every sport at one Games edition, weighted by
participation records, so large sports move the ratio more than small
ones. The series makes long-term progress (or stagnation) visible at
a glance.

Examples:
  # Trend across all editions
  gamesgap trend athlete_events.csv

  # Winter Games only
  gamesgap trend --season winter

  # Machine-readable series for plotting elsewhere
  gamesgap trend --output json --output-file trend.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		series, duration, err := engine.GetTrendResults(cfg)
		if err != nil {
			contract.LogFatal("Cannot run trend analysis", err)
		}
		if err := outwriter.NewOutWriter().WriteTrend(series, cfg, duration); err != nil {
			contract.LogFatal("Cannot write trend results", err)
		}
	},
}
