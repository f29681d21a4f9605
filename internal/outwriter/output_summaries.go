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

// writeSummaryResults outputs per-sport summaries, dispatching based on the
// output format configured.
func writeSummaryResults(summaries []schema.SportGamesSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeSummaryJSON(summaries, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeSummaryCSV(summaries, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(summaries, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeSummaryJSON handles opening the file and calling the JSON writer.
func writeSummaryJSON(summaries []schema.SportGamesSummary, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONSummary struct {
			Rank  int    `json:"rank"`
			Label string `json:"label"`
			schema.SportGamesSummary
		}

		output := make([]JSONSummary, len(summaries))
		for i, s := range summaries {
			output[i] = JSONSummary{
				Rank:              i + 1,
				Label:             contract.GetPlainLabel(s.FemaleRatio),
				SportGamesSummary: s,
			}
		}
		return writeJSON(w, output)
	}, "Wrote JSON")
}

// writeSummaryCSV handles opening the file and calling the CSV writer.
func writeSummaryCSV(summaries []schema.SportGamesSummary, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"games_year",
		"sport",
		"total_participants",
		"female_participants",
		"male_participants",
		"female_ratio",
		"distinct_events",
		"female_eligible_events",
		"label",
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for i, s := range summaries {
				rec := []string{
					strconv.Itoa(i + 1),
					strconv.Itoa(s.GamesYear),
					s.Sport,
					fmt.Sprintf(intFmt, s.TotalParticipants),
					fmt.Sprintf(intFmt, s.FemaleParticipants),
					fmt.Sprintf(intFmt, s.MaleParticipants),
					fmtFloat(s.FemaleRatio),
					fmt.Sprintf(intFmt, s.DistinctEvents),
					fmt.Sprintf(intFmt, s.FemaleEligibleEvents),
					contract.GetPlainLabel(s.FemaleRatio),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeSummaryTable generates and writes the human-readable table.
func writeSummaryTable(summaries []schema.SportGamesSummary, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Year", "Sport", "Total", "Female", "Male", "Ratio", "Events", "F-Events", "Label"})

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)

	var data [][]string
	totalParticipants := 0
	for i, s := range summaries {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.GamesYear),
			contract.TruncateName(s.Sport, nameWidth),
			fmt.Sprintf(intFmt, s.TotalParticipants),
			fmt.Sprintf(intFmt, s.FemaleParticipants),
			fmt.Sprintf(intFmt, s.MaleParticipants),
			fmtFloat(s.FemaleRatio),
			fmt.Sprintf(intFmt, s.DistinctEvents),
			fmt.Sprintf(intFmt, s.FemaleEligibleEvents),
			ratioLabel(s.FemaleRatio, cfg.UseColors),
		}
		data = append(data, row)
		totalParticipants += s.TotalParticipants
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d sport-games groups (total participants: %d)\n", len(summaries), totalParticipants); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Season filter: %s\n", duration, cfg.Season); err != nil {
		return err
	}
	return nil
}
