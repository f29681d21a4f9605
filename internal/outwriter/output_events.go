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

// writeEventResults outputs event access counts, dispatching based on the
// output format configured.
func writeEventResults(access []schema.EventAccess, cfg *contract.Config, duration time.Duration) error {
	_, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeEventJSON(access, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeEventCSV(access, cfg, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEventTable(access, cfg, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeEventJSON handles opening the file and calling the JSON writer.
func writeEventJSON(access []schema.EventAccess, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, access)
	}, "Wrote JSON")
}

// writeEventCSV handles opening the file and calling the CSV writer.
func writeEventCSV(access []schema.EventAccess, cfg *contract.Config, intFmt string) error {
	header := []string{"games_year", "sport", "female_events", "male_events"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, a := range access {
				rec := []string{
					strconv.Itoa(a.GamesYear),
					a.Sport,
					fmt.Sprintf(intFmt, a.FemaleEvents),
					fmt.Sprintf(intFmt, a.MaleEvents),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeEventTable generates and writes the human-readable table.
func writeEventTable(access []schema.EventAccess, cfg *contract.Config, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Year", "Sport", "F-Events", "M-Events"})

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)

	var data [][]string
	for _, a := range access {
		data = append(data, []string{
			strconv.Itoa(a.GamesYear),
			contract.TruncateName(a.Sport, nameWidth),
			fmt.Sprintf(intFmt, a.FemaleEvents),
			fmt.Sprintf(intFmt, a.MaleEvents),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d sport-games groups\n", len(access)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Season filter: %s\n", duration, cfg.Season); err != nil {
		return err
	}
	return nil
}
