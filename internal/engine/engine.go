// Package engine ties the dataset loader, the cleaning pipeline and the
// metric computations together into the operations the CLI and MCP
// surfaces expose.
package engine

import (
	"fmt"
	"time"

	"github.com/gamesgap/gamesgap/core"
	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/gamesgap/gamesgap/internal/dataset"
	"github.com/gamesgap/gamesgap/internal/iostore"
	"github.com/gamesgap/gamesgap/schema"
)

// loadPrepared loads the configured dataset and applies the cleaning
// pipeline. It returns the prepared records plus the raw record count.
func loadPrepared(cfg *contract.Config) ([]schema.ParticipationRecord, int, error) {
	records, err := dataset.LoadRecords(cfg.DatasetPath, cfg.RegionsPath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load dataset: %w", err)
	}
	total := len(records)
	prepared := dataset.Prepare(records, cfg.Season, cfg.CutoffYear, cfg.KeepRetired)
	return prepared, total, nil
}

// GetSummaryResults computes per-sport summaries for the configured dataset.
// When a store is provided the run and its summaries are persisted.
func GetSummaryResults(cfg *contract.Config, store *iostore.Store) ([]schema.SportGamesSummary, time.Duration, error) {
	start := time.Now()

	records, total, err := loadPrepared(cfg)
	if err != nil {
		return nil, 0, err
	}

	summaries, err := core.Summarize(records)
	if err != nil {
		return nil, 0, err
	}

	if store != nil && store.Backend() != schema.NoneBackend {
		runID, err := store.BeginRun(start, cfg.DatasetPath, cfg.Season)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to begin run tracking: %w", err)
		}
		if err := store.InsertSummaries(runID, summaries); err != nil {
			return nil, 0, fmt.Errorf("failed to persist summaries: %w", err)
		}
		if err := store.EndRun(runID, time.Now(), total, len(summaries)); err != nil {
			return nil, 0, fmt.Errorf("failed to end run tracking: %w", err)
		}
	}

	return summaries, time.Since(start), nil
}

// GetTrendResults computes the per-edition female participation trend.
func GetTrendResults(cfg *contract.Config) (schema.TrendSeries, time.Duration, error) {
	start := time.Now()

	records, _, err := loadPrepared(cfg)
	if err != nil {
		return schema.TrendSeries{}, 0, err
	}

	summaries, err := core.Summarize(records)
	if err != nil {
		return schema.TrendSeries{}, 0, err
	}

	series, err := core.DeficitTrend(summaries)
	if err != nil {
		return schema.TrendSeries{}, 0, err
	}

	return series, time.Since(start), nil
}

// GetGapResults computes sport-games groups below the configured threshold.
func GetGapResults(cfg *contract.Config) ([]schema.GapEntry, time.Duration, error) {
	start := time.Now()

	records, _, err := loadPrepared(cfg)
	if err != nil {
		return nil, 0, err
	}

	summaries, err := core.Summarize(records)
	if err != nil {
		return nil, 0, err
	}

	entries, err := core.SportsWithGap(summaries, cfg.Threshold)
	if err != nil {
		return nil, 0, err
	}

	return entries, time.Since(start), nil
}

// GetEventResults computes distinct event counts by sex for each
// sport-games group.
func GetEventResults(cfg *contract.Config) ([]schema.EventAccess, time.Duration, error) {
	start := time.Now()

	records, _, err := loadPrepared(cfg)
	if err != nil {
		return nil, 0, err
	}

	access, err := core.EventAccessBySport(records)
	if err != nil {
		return nil, 0, err
	}

	return access, time.Since(start), nil
}

// GetMedalResults computes the per-region medal table.
func GetMedalResults(cfg *contract.Config) ([]schema.MedalTableRow, time.Duration, error) {
	start := time.Now()

	records, _, err := loadPrepared(cfg)
	if err != nil {
		return nil, 0, err
	}

	rows, err := core.MedalTable(records)
	if err != nil {
		return nil, 0, err
	}

	return rows, time.Since(start), nil
}

// GetNationResults computes per-delegation participation and medal metrics.
func GetNationResults(cfg *contract.Config) ([]schema.NationGamesMetrics, time.Duration, error) {
	start := time.Now()

	records, _, err := loadPrepared(cfg)
	if err != nil {
		return nil, 0, err
	}

	metrics, err := core.NationMetrics(records)
	if err != nil {
		return nil, 0, err
	}

	return metrics, time.Since(start), nil
}

// GetCorrelationResults computes the nation metric correlation matrix.
func GetCorrelationResults(cfg *contract.Config) ([][]float64, time.Duration, error) {
	start := time.Now()

	metrics, _, err := GetNationResults(cfg)
	if err != nil {
		return nil, 0, err
	}

	matrix, err := core.NationCorrelationMatrix(metrics)
	if err != nil {
		return nil, 0, err
	}

	return matrix, time.Since(start), nil
}

// Limit truncates a result slice to the configured result limit.
func Limit[T any](results []T, limit int) []T {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
