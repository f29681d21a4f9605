// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/gamesgap/gamesgap/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the commands.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSummaries prints per-sport summaries using the configured output format.
func (ow *OutWriter) WriteSummaries(summaries []schema.SportGamesSummary, cfg *contract.Config, duration time.Duration) error {
	return writeSummaryResults(summaries, cfg, duration)
}

// WriteTrend prints the participation trend using the configured output format.
func (ow *OutWriter) WriteTrend(series schema.TrendSeries, cfg *contract.Config, duration time.Duration) error {
	return writeTrendResults(series, cfg, duration)
}

// WriteGap prints gap entries using the configured output format.
func (ow *OutWriter) WriteGap(entries []schema.GapEntry, cfg *contract.Config, duration time.Duration) error {
	return writeGapResults(entries, cfg, duration)
}

// WriteEvents prints event access counts using the configured output format.
func (ow *OutWriter) WriteEvents(access []schema.EventAccess, cfg *contract.Config, duration time.Duration) error {
	return writeEventResults(access, cfg, duration)
}

// WriteMedals prints the medal table using the configured output format.
func (ow *OutWriter) WriteMedals(rows []schema.MedalTableRow, cfg *contract.Config, duration time.Duration) error {
	return writeMedalResults(rows, cfg, duration)
}

// WriteNations prints per-delegation metrics using the configured output format.
func (ow *OutWriter) WriteNations(metrics []schema.NationGamesMetrics, cfg *contract.Config, duration time.Duration) error {
	return writeNationResults(metrics, cfg, duration)
}

// WriteCorrelations prints the nation metric correlation matrix using the
// configured output format.
func (ow *OutWriter) WriteCorrelations(matrix [][]float64, cfg *contract.Config) error {
	return writeCorrelationResults(matrix, cfg)
}

// GetMaxTableNameWidth calculates the maximum width for sport and event names
// in table output based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for rank, year, counts, ratio and label columns plus
	// table borders, separators and padding.
	baseWidth := 55

	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable name width
		return 12
	}
	if available > 40 {
		// Maximum name width to prevent overly wide tables
		return 40
	}
	return available
}
