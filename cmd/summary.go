package cmd

import (
	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/gamesgap/gamesgap/internal/engine"
	"github.com/gamesgap/gamesgap/internal/outwriter"
	"github.com/spf13/cobra"
)

// summaryCmd performs per-sport participation analysis.
var summaryCmd = &cobra.Command{
	Use:   "summary [dataset-path]",
	Short: "Show per-sport participation summaries for each Games edition.",
	Long: `Summarize athlete participation by sport and Games edition.

For every sport at every edition this computes:
- Total, female and male participation record counts
- The female participation ratio with a parity label
- Distinct event counts and how many events had female entries

Use this to spot which sports drive the overall gender gap and how
each sport's balance shifts from one Games edition to the next.

Examples:
  # Summarize the bundled Kaggle dataset
  gamesgap summary athlete_events.csv

  # Focus on Summer Games only
  gamesgap summary --season summer --limit 20

  # Export findings to CSV for tracking
  gamesgap summary --output csv --output-file summaries.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		summaries, duration, err := engine.GetSummaryResults(cfg, store)
		if err != nil {
			contract.LogFatal("Cannot run summary analysis", err)
		}
		limited := engine.Limit(summaries, cfg.ResultLimit)
		if err := outwriter.NewOutWriter().WriteSummaries(limited, cfg, duration); err != nil {
			contract.LogFatal("Cannot write summary results", err)
		}
	},
}
