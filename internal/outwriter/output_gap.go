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

// writeGapResults outputs gap entries, dispatching based on the output
// format configured.
func writeGapResults(entries []schema.GapEntry, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeGapJSON(entries, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeGapCSV(entries, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGapTable(entries, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeGapJSON handles opening the file and calling the JSON writer.
func writeGapJSON(entries []schema.GapEntry, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONGapEntry struct {
			Rank  int    `json:"rank"`
			Label string `json:"label"`
			schema.GapEntry
		}

		output := make([]JSONGapEntry, len(entries))
		for i, e := range entries {
			output[i] = JSONGapEntry{
				Rank:     i + 1,
				Label:    contract.GetPlainLabel(e.FemaleRatio),
				GapEntry: e,
			}
		}
		return writeJSON(w, output)
	}, "Wrote JSON")
}

// writeGapCSV handles opening the file and calling the CSV writer.
func writeGapCSV(entries []schema.GapEntry, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{"rank", "sport", "games_year", "female_ratio", "shortfall", "label"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for i, e := range entries {
				rec := []string{
					strconv.Itoa(i + 1),
					e.Sport,
					strconv.Itoa(e.GamesYear),
					fmtFloat(e.FemaleRatio),
					fmtFloat(e.Shortfall),
					contract.GetPlainLabel(e.FemaleRatio),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeGapTable generates and writes the human-readable table.
func writeGapTable(entries []schema.GapEntry, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Sport", "Year", "Ratio", "Shortfall", "Label"})

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)

	var data [][]string
	for i, e := range entries {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(e.Sport, nameWidth),
			strconv.Itoa(e.GamesYear),
			fmtFloat(e.FemaleRatio),
			fmtFloat(e.Shortfall),
			ratioLabel(e.FemaleRatio, cfg.UseColors),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d sport-games groups below threshold %.2f\n", len(entries), cfg.Threshold); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Season filter: %s\n", duration, cfg.Season); err != nil {
		return err
	}
	return nil
}
