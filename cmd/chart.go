package cmd

import (
	"fmt"

	"github.com/gamesgap/gamesgap/internal/chart"
	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/gamesgap/gamesgap/internal/engine"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// chartCmd renders an HTML report with the main analysis charts.
var chartCmd = &cobra.Command{
	Use:   "chart [dataset-path]",
	Short: "Render an HTML report with trend, summary and medal charts.",
	Long: `Render a self-contained HTML page with the headline charts:

- Female participation ratio over time
- Female ratio per sport for the latest Games edition
- The medal table by region

The page embeds all data, so it can be shared or hosted as-is. With
--trend-only, only the participation trend chart is rendered.

Examples:
  # Write the default report
  gamesgap chart athlete_events.csv

  # Summer Games report to a custom path
  gamesgap chart --season summer --chart-file summer.html

  # Just the trend line
  gamesgap chart --trend-only --chart-file trend.html`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		series, _, err := engine.GetTrendResults(cfg)
		if err != nil {
			contract.LogFatal("Cannot run trend analysis", err)
		}

		if viper.GetBool("trend-only") {
			if err := chart.RenderTrendChart(series, cfg.ChartFile); err != nil {
				contract.LogFatal("Cannot render trend chart", err)
			}
			fmt.Printf("Trend chart written to %s\n", cfg.ChartFile)
			return
		}

		summaries, _, err := engine.GetSummaryResults(cfg, nil)
		if err != nil {
			contract.LogFatal("Cannot run summary analysis", err)
		}
		medals, _, err := engine.GetMedalResults(cfg)
		if err != nil {
			contract.LogFatal("Cannot run medal analysis", err)
		}

		if err := chart.RenderReport(series, summaries, medals, cfg.ChartFile); err != nil {
			contract.LogFatal("Cannot render chart report", err)
		}
		fmt.Printf("Chart report written to %s\n", cfg.ChartFile)
	},
}
