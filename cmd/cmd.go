// Package cmd defines the command-line interface for gamesgap.
package cmd

import (
	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(gapCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(medalsCmd)
	rootCmd.AddCommand(nationsCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(storeCmd)

	// Add the nations subcommands to the parent nations command
	nationsCmd.AddCommand(nationsCorrelationsCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeLastCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("regions", contract.DefaultRegionsFile, "Path to the NOC regions CSV file")
	rootCmd.PersistentFlags().StringP("season", "s", "all", "Games edition filter: summer or winter or all")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("cutoff-year", contract.DefaultCutoffYear, "Sports absent since this year are treated as retired")
	rootCmd.PersistentFlags().Bool("keep-retired", false, "Keep retired sports in the analysis")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for ratio columns")
	rootCmd.PersistentFlags().String("output", "text", "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("store-backend", "sqlite", "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of gapCmd to Viper
	gapCmd.Flags().Float64P("threshold", "t", contract.DefaultThreshold, "Female ratio threshold within [0,1]")
	if err := viper.BindPFlags(gapCmd.Flags()); err != nil {
		contract.LogFatal("Error binding gap flags", err)
	}

	// Bind all flags of chartCmd to Viper
	chartCmd.Flags().String("chart-file", "gamesgap_report.html", "Path to write the HTML chart report")
	chartCmd.Flags().Bool("trend-only", false, "Render only the participation trend chart")
	if err := viper.BindPFlags(chartCmd.Flags()); err != nil {
		contract.LogFatal("Error binding chart flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
