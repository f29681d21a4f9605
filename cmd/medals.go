package cmd

import (
	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/gamesgap/gamesgap/internal/engine"
	"github.com/gamesgap/gamesgap/internal/outwriter"
	"github.com/spf13/cobra"
)

// medalsCmd builds the per-region medal table.
var medalsCmd = &cobra.Command{
	Use:   "medals [dataset-path]",
	Short: "Show the medal table aggregated by region.",
	Long: `Build the classic medal table, aggregated by region rather than by
raw NOC code so that historical delegations (URS, GDR, etc.) roll up
into their present-day regions.

Rows are ordered by golds, then silvers, then bronzes.

Examples:
  # All-time medal table
  gamesgap medals athlete_events.csv

  # Winter Games podium
  gamesgap medals --season winter --limit 10`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		rows, duration, err := engine.GetMedalResults(cfg)
		if err != nil {
			contract.LogFatal("Cannot run medal analysis", err)
		}
		limited := engine.Limit(rows, cfg.ResultLimit)
		if err := outwriter.NewOutWriter().WriteMedals(limited, cfg, duration); err != nil {
			contract.LogFatal("Cannot write medal results", err)
		}
	},
}
