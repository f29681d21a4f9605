// Package parquet provides data structures and functions for exporting
// analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/gamesgap/gamesgap/schema"
	"github.com/parquet-go/parquet-go"
)

// AnalysisRun represents a single analysis run with metadata.
// This struct maps to the gamesgap_analysis_runs database table.
type AnalysisRun struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// Dataset is the participation file the run was computed from
	Dataset string `parquet:"dataset,snappy"`

	// Season is the season filter applied to the run
	Season string `parquet:"season,snappy"`

	// StartTime is when the analysis began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the analysis completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the analysis run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalRecords is the number of participation records analyzed in this run
	TotalRecords int32 `parquet:"total_records,snappy"`

	// TotalSummaries is the number of sport-games summaries produced
	TotalSummaries int32 `parquet:"total_summaries,snappy"`
}

// SportSummary represents one per-sport summary row in an analysis.
// This struct maps to the gamesgap_sport_summaries database table.
type SportSummary struct {
	// RunID references the parent analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// GamesYear is the Games edition the summary covers
	GamesYear int32 `parquet:"games_year,snappy"`

	// Sport is the sport the summary covers
	Sport string `parquet:"sport,snappy"`

	// TotalParticipants is the number of participation records in the group
	TotalParticipants int32 `parquet:"total_participants,snappy"`

	// FemaleParticipants is the number of female participation records
	FemaleParticipants int32 `parquet:"female_participants,snappy"`

	// MaleParticipants is the number of male participation records
	MaleParticipants int32 `parquet:"male_participants,snappy"`

	// FemaleRatio is female participants over total participants
	FemaleRatio float64 `parquet:"female_ratio,snappy"`

	// DistinctEvents is the number of distinct events in the group
	DistinctEvents int32 `parquet:"distinct_events,snappy"`

	// FemaleEligibleEvents is the number of events with female participation
	FemaleEligibleEvents int32 `parquet:"female_eligible_events,snappy"`
}

// WriteAnalysisRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteAnalysisRunsParquet(data []AnalysisRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the AnalysisRun struct tags
	writer := parquet.NewGenericWriter[AnalysisRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteSportSummariesParquet writes a slice of SportSummary structs to a Parquet file.
func WriteSportSummariesParquet(data []SportSummary, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the SportSummary struct tags
	writer := parquet.NewGenericWriter[SportSummary](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertAnalysisRunRecords converts schema.AnalysisRunRecord to AnalysisRun for Parquet export.
func ConvertAnalysisRunRecords(records []schema.AnalysisRunRecord) []AnalysisRun {
	result := make([]AnalysisRun, len(records))
	for i, record := range records {
		result[i] = AnalysisRun{
			RunID:          record.RunID,
			Dataset:        record.Dataset,
			Season:         record.Season,
			StartTime:      record.StartTime,
			EndTime:        record.EndTime,
			RunDurationMs:  record.RunDurationMs,
			TotalRecords:   record.TotalRecords,
			TotalSummaries: record.TotalSummaries,
		}
	}
	return result
}

// ConvertSummaryRecords converts schema.SummaryRecord to SportSummary for Parquet export.
func ConvertSummaryRecords(records []schema.SummaryRecord) []SportSummary {
	result := make([]SportSummary, len(records))
	for i, record := range records {
		result[i] = SportSummary{
			RunID:                record.RunID,
			GamesYear:            record.GamesYear,
			Sport:                record.Sport,
			TotalParticipants:    record.TotalParticipants,
			FemaleParticipants:   record.FemaleParticipants,
			MaleParticipants:     record.MaleParticipants,
			FemaleRatio:          record.FemaleRatio,
			DistinctEvents:       record.DistinctEvents,
			FemaleEligibleEvents: record.FemaleEligibleEvents,
		}
	}
	return result
}
