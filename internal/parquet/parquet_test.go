package parquet

import (
	"path/filepath"
	"testing"
	"time"

	gschema "github.com/gamesgap/gamesgap/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(AnalysisRun))
	require.NotNil(t, schema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"run_id",
		"dataset",
		"season",
		"start_time",
		"end_time",
		"run_duration_ms",
		"total_records",
		"total_summaries",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestSportSummaryStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(SportSummary))
	require.NotNil(t, schema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"run_id",
		"games_year",
		"sport",
		"total_participants",
		"female_participants",
		"male_participants",
		"female_ratio",
		"distinct_events",
		"female_eligible_events",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteAnalysisRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "analysis_runs.parquet")

	now := time.Now()
	end := now.Add(2 * time.Second)
	durationMs := int32(2000)
	data := []AnalysisRun{
		{
			RunID:          1,
			Dataset:        "athlete_events.csv",
			Season:         "summer",
			StartTime:      now,
			EndTime:        &end,
			RunDurationMs:  &durationMs,
			TotalRecords:   271116,
			TotalSummaries: 600,
		},
		{
			RunID:     2,
			Dataset:   "athlete_events.csv",
			Season:    "all",
			StartTime: now,
			// EndTime and RunDurationMs nil to exercise nullable fields
		},
	}

	err := WriteAnalysisRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	rows, err := parquet.ReadFile[AnalysisRun](outputPath)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].RunID)
	assert.Equal(t, "summer", rows[0].Season)
	require.NotNil(t, rows[0].RunDurationMs)
	assert.Equal(t, int32(2000), *rows[0].RunDurationMs)
	assert.Nil(t, rows[1].EndTime)
}

func TestWriteSportSummariesParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "sport_summaries.parquet")

	data := ConvertSummaryRecords([]gschema.SummaryRecord{
		{
			RunID:                1,
			GamesYear:            1900,
			Sport:                "Golf",
			TotalParticipants:    3,
			FemaleParticipants:   1,
			MaleParticipants:     2,
			FemaleRatio:          1.0 / 3.0,
			DistinctEvents:       2,
			FemaleEligibleEvents: 1,
		},
	})

	err := WriteSportSummariesParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	rows, err := parquet.ReadFile[SportSummary](outputPath)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Golf", rows[0].Sport)
	assert.InDelta(t, 1.0/3.0, rows[0].FemaleRatio, 1e-12)
}
