package cmd

import (
	"fmt"
	"time"

	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/gamesgap/gamesgap/internal/iostore"
	"github.com/gamesgap/gamesgap/internal/outwriter"
	"github.com/gamesgap/gamesgap/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as SQLite (the default tracking backend)
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.SQLiteBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export and last commands)
	outputFile := viper.GetString("output-file")
	output := schema.OutputMode(viper.GetString("output"))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", output)
	}
	precision := viper.GetInt("precision")
	season, err := schema.ParseSeasonFilter(viper.GetString("season"))
	if err != nil {
		return fmt.Errorf("invalid --season value: %w", err)
	}

	// Open the store with the loaded config
	s, err := iostore.NewStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	store = s

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = outputFile
	cfg.Output = output
	cfg.Precision = precision
	cfg.Season = season

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT open the store or create tables,
// allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.SQLiteBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetStoreDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeMigrateSetupWrapper wraps storeMigrateSetup to provide PreRunE for migrate command.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMigrateSetup()
}

// storeCmd focused on run-tracking data management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by analysis commands. This avoids dataset loading
// and complex config processing for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage historical run tracking and exports",
	Long: `Manage historical analysis data used for trend tracking and reporting.

When enabled, Gamesgap tracks every summary run, storing:
- Run metadata (timestamp, dataset, season filter, duration)
- Per-sport summaries for every Games edition

This enables longitudinal comparisons across dataset revisions and data
export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run tracking statistics
  last    - Show the summaries from the most recent run
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  gamesgap store status

  # Export for analysis in pandas/DuckDB
  gamesgap store export --output-file gamesgap-data.parquet`,
}

// storeClearCmd clears the stored run data.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical run tracking data",
	Long: `Delete all stored analysis runs and per-sport summary history.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  gamesgap store export --output-file backup.parquet
  gamesgap store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear store data", err)
		}
		fmt.Println("Store data cleared successfully.")
	},
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show detailed information about historical run tracking.

Displays:
- Backend type and connection status
- Total number of runs stored and the last run timestamp
- Database table sizes

Examples:
  # Check run tracking status
  gamesgap store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		iostore.PrintStatus(status)
	},
}

// storeExportCmd exports stored data to Parquet files.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export historical data to Parquet for BI tools and analytics",
	Long: `Export all stored run data to Parquet format for use with analytics tools.

Exports two datasets:
- Analysis runs - metadata about each summary run
- Sport summaries - per-sport participation metrics per run

Requires: --output-file parameter

Examples:
  # Export all data
  gamesgap store export --output-file gamesgap-data.parquet

  # Use with DuckDB for analysis
  gamesgap store export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.analysis_runs.parquet') LIMIT 10"`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ExecuteExport(store, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export store data", err)
		}
	},
}

// storeLastCmd replays the summaries saved by the most recent run.
var storeLastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the per-sport summaries from the most recent run",
	Long: `Render the per-sport summaries persisted by the most recent analysis
run, without reloading or re-aggregating the dataset.

Useful for re-checking the last result in a different output format, or
for inspecting what a scheduled run produced.

Examples:
  # Re-render the last run as a table
  gamesgap store last

  # Same data as JSON
  gamesgap store last --output json`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		runID, summaries, err := store.GetLatestRunSummaries()
		if err != nil {
			contract.LogFatal("Failed to load last run", err)
		}
		fmt.Printf("Replaying summaries from run %d\n", runID)
		if err := outwriter.NewOutWriter().WriteSummaries(summaries, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write output", err)
		}
	},
}

// storeMigrateCmd runs database migrations for the store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run tracking store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  gamesgap store migrate

  # Migrate to specific version
  gamesgap store migrate --target-version 1

  # Rollback to previous version
  gamesgap store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iostore.Migrate(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
