package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/gamesgap/gamesgap/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeTrendResults outputs the participation trend, dispatching based on the
// output format configured.
func writeTrendResults(series schema.TrendSeries, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeTrendJSON(series, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeTrendCSV(series, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendTable(series, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeTrendJSON handles opening the file and calling the JSON writer.
func writeTrendJSON(series schema.TrendSeries, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONTrendPoint struct {
			Label string `json:"label"`
			schema.TrendPoint
		}

		output := make([]JSONTrendPoint, len(series.Points))
		for i, p := range series.Points {
			output[i] = JSONTrendPoint{
				Label:      contract.GetPlainLabel(p.FemaleRatio),
				TrendPoint: p,
			}
		}
		return writeJSON(w, output)
	}, "Wrote JSON")
}

// writeTrendCSV handles opening the file and calling the CSV writer.
func writeTrendCSV(series schema.TrendSeries, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{"games_year", "female_ratio", "label"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, p := range series.Points {
				rec := []string{
					strconv.Itoa(p.GamesYear),
					fmtFloat(p.FemaleRatio),
					contract.GetPlainLabel(p.FemaleRatio),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeTrendTable generates and writes the human-readable table.
func writeTrendTable(series schema.TrendSeries, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Year", "Ratio", "Label"})

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range series.Points {
		data = append(data, []string{
			strconv.Itoa(p.GamesYear),
			fmtFloat(p.FemaleRatio),
			ratioLabel(p.FemaleRatio, cfg.UseColors),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d Games editions\n", len(series.Points)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Season filter: %s\n", duration, cfg.Season); err != nil {
		return err
	}
	return nil
}
