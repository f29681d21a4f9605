package cmd

import (
	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/gamesgap/gamesgap/internal/engine"
	"github.com/gamesgap/gamesgap/internal/outwriter"
	"github.com/spf13/cobra"
)

// eventsCmd compares event access by sex for each sport.
var eventsCmd = &cobra.Command{
	Use:   "events [dataset-path]",
	Short: "Compare distinct event counts by sex for each sport.",
	Long: `Count distinct events entered by female and male athletes for every
sport at every Games edition.

Participation ratios can hide structural gaps: a sport may admit women
but offer them fewer events. This view surfaces those program-level
differences directly.

Examples:
  # Event access across all editions
  gamesgap events athlete_events.csv

  # Summer Games, exported for further analysis
  gamesgap events --season summer --output csv --output-file events.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		access, duration, err := engine.GetEventResults(cfg)
		if err != nil {
			contract.LogFatal("Cannot run event analysis", err)
		}
		limited := engine.Limit(access, cfg.ResultLimit)
		if err := outwriter.NewOutWriter().WriteEvents(limited, cfg, duration); err != nil {
			contract.LogFatal("Cannot write event results", err)
		}
	},
}
