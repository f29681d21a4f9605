package iostore

import (
	"errors"
	"fmt"

	"github.com/gamesgap/gamesgap/internal/parquet"
)

// ExecuteExport performs the actual export of stored analysis data to Parquet files.
func ExecuteExport(store *Store, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no analysis data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total analysis runs: %d\n", status.TotalRuns)
	fmt.Printf("Total summary rows: %d\n", status.TableSizes[sportSummariesTable])

	// Retrieve all analysis runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve analysis runs: %w", err)
	}

	// Retrieve all summary rows
	summaries, err := store.GetAllSummaries()
	if err != nil {
		return fmt.Errorf("failed to retrieve sport summaries: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertAnalysisRunRecords(runs)
	parquetSummaries := parquet.ConvertSummaryRecords(summaries)

	// Write analysis runs to Parquet
	runsFile := outputFile + ".analysis_runs.parquet"
	if err := parquet.WriteAnalysisRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write analysis runs: %w", err)
	}
	fmt.Printf("Exported %d analysis runs to: %s\n", len(parquetRuns), runsFile)

	// Write summaries to Parquet
	summariesFile := outputFile + ".sport_summaries.parquet"
	if err := parquet.WriteSportSummariesParquet(parquetSummaries, summariesFile); err != nil {
		return fmt.Errorf("failed to write sport summaries: %w", err)
	}
	fmt.Printf("Exported %d summary rows to: %s\n", len(parquetSummaries), summariesFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
