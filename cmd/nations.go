package cmd

import (
	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/gamesgap/gamesgap/internal/engine"
	"github.com/gamesgap/gamesgap/internal/outwriter"
	"github.com/spf13/cobra"
)

// nationsCmd computes per-delegation participation and medal metrics.
var nationsCmd = &cobra.Command{
	Use:   "nations [dataset-path]",
	Short: "Show per-delegation participation and medal metrics.",
	Long: `Aggregate participation and medal counts per delegation (region) at
each Games edition.

For every delegation this reports athlete counts by sex, the female
participation ratio, and total medals won. Use the correlations
subcommand to see how these metrics move together.

Examples:
  # Delegation metrics for all editions
  gamesgap nations athlete_events.csv

  # Summer Games, largest delegations first
  gamesgap nations --season summer --limit 30`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		metrics, duration, err := engine.GetNationResults(cfg)
		if err != nil {
			contract.LogFatal("Cannot run nation analysis", err)
		}
		limited := engine.Limit(metrics, cfg.ResultLimit)
		if err := outwriter.NewOutWriter().WriteNations(limited, cfg, duration); err != nil {
			contract.LogFatal("Cannot write nation results", err)
		}
	},
}

// nationsCorrelationsCmd prints the nation metric correlation matrix.
var nationsCorrelationsCmd = &cobra.Command{
	Use:   "correlations [dataset-path]",
	Short: "Show the correlation matrix across delegation metrics.",
	Long: `Compute Pearson correlations across the per-delegation metrics
(athlete counts, female ratio, medal counts).

A strong correlation between delegation size and female ratio, for
example, suggests that bigger teams tend to be closer to parity.

Examples:
  # Correlation matrix for all editions
  gamesgap nations correlations athlete_events.csv

  # Matrix as JSON
  gamesgap nations correlations --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		matrix, _, err := engine.GetCorrelationResults(cfg)
		if err != nil {
			contract.LogFatal("Cannot run correlation analysis", err)
		}
		if err := outwriter.NewOutWriter().WriteCorrelations(matrix, cfg); err != nil {
			contract.LogFatal("Cannot write correlation results", err)
		}
	},
}
