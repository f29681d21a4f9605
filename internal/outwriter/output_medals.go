package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gamesgap/gamesgap/core"
	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/gamesgap/gamesgap/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeMedalResults outputs the medal table, dispatching based on the output
// format configured.
func writeMedalResults(rows []schema.MedalTableRow, cfg *contract.Config, duration time.Duration) error {
	_, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeMedalJSON(rows, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeMedalCSV(rows, cfg, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMedalTable(rows, cfg, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeMedalJSON handles opening the file and calling the JSON writer.
func writeMedalJSON(rows []schema.MedalTableRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONMedalRow struct {
			Rank int `json:"rank"`
			schema.MedalTableRow
		}

		output := make([]JSONMedalRow, len(rows))
		for i, r := range rows {
			output[i] = JSONMedalRow{Rank: i + 1, MedalTableRow: r}
		}
		return writeJSON(w, output)
	}, "Wrote JSON")
}

// writeMedalCSV handles opening the file and calling the CSV writer.
func writeMedalCSV(rows []schema.MedalTableRow, cfg *contract.Config, intFmt string) error {
	header := []string{"rank", "region", "golds", "silvers", "bronzes"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for i, r := range rows {
				rec := []string{
					strconv.Itoa(i + 1),
					r.Region,
					fmt.Sprintf(intFmt, r.Golds),
					fmt.Sprintf(intFmt, r.Silvers),
					fmt.Sprintf(intFmt, r.Bronzes),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeMedalTable generates and writes the human-readable table.
func writeMedalTable(rows []schema.MedalTableRow, cfg *contract.Config, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Region", "Gold", "Silver", "Bronze"})

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)

	var data [][]string
	for i, r := range rows {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(r.Region, nameWidth),
			fmt.Sprintf(intFmt, r.Golds),
			fmt.Sprintf(intFmt, r.Silvers),
			fmt.Sprintf(intFmt, r.Bronzes),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing top %d regions\n", len(rows)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Season filter: %s\n", duration, cfg.Season); err != nil {
		return err
	}
	return nil
}

// writeNationResults outputs per-delegation metrics, dispatching based on the
// output format configured.
func writeNationResults(metrics []schema.NationGamesMetrics, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeNationJSON(metrics, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeNationCSV(metrics, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeNationTable(metrics, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeNationJSON handles opening the file and calling the JSON writer.
func writeNationJSON(metrics []schema.NationGamesMetrics, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONNationMetrics struct {
			Label string `json:"label"`
			schema.NationGamesMetrics
		}

		output := make([]JSONNationMetrics, len(metrics))
		for i, m := range metrics {
			output[i] = JSONNationMetrics{
				Label:              contract.GetPlainLabel(m.FemaleRatio),
				NationGamesMetrics: m,
			}
		}
		return writeJSON(w, output)
	}, "Wrote JSON")
}

// writeNationCSV handles opening the file and calling the CSV writer.
func writeNationCSV(metrics []schema.NationGamesMetrics, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"games_year",
		"region",
		"men",
		"women",
		"medals",
		"female_ratio",
		"medals_per_athlete",
		"label",
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, m := range metrics {
				rec := []string{
					strconv.Itoa(m.GamesYear),
					m.Region,
					fmt.Sprintf(intFmt, m.Men),
					fmt.Sprintf(intFmt, m.Women),
					fmt.Sprintf(intFmt, m.Medals),
					fmtFloat(m.FemaleRatio),
					fmtFloat(m.MedalsPerAthlete),
					contract.GetPlainLabel(m.FemaleRatio),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeNationTable generates and writes the human-readable table.
func writeNationTable(metrics []schema.NationGamesMetrics, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Year", "Region", "Men", "Women", "Medals", "Ratio", "Medals/Athlete", "Label"})

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)

	var data [][]string
	for _, m := range metrics {
		data = append(data, []string{
			strconv.Itoa(m.GamesYear),
			contract.TruncateName(m.Region, nameWidth),
			fmt.Sprintf(intFmt, m.Men),
			fmt.Sprintf(intFmt, m.Women),
			fmt.Sprintf(intFmt, m.Medals),
			fmtFloat(m.FemaleRatio),
			fmtFloat(m.MedalsPerAthlete),
			ratioLabel(m.FemaleRatio, cfg.UseColors),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d delegation-games groups\n", len(metrics)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Season filter: %s\n", duration, cfg.Season); err != nil {
		return err
	}
	return nil
}

// writeCorrelationResults outputs the nation metric correlation matrix,
// dispatching based on the output format configured.
func writeCorrelationResults(matrix [][]float64, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			output := struct {
				Columns []string    `json:"columns"`
				Matrix  [][]float64 `json:"matrix"`
			}{Columns: core.NationCorrelationColumns, Matrix: matrix}
			return writeJSON(w, output)
		}, "Wrote JSON")
	case schema.CSVOut:
		header := append([]string{"metric"}, core.NationCorrelationColumns...)
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for i, row := range matrix {
					rec := make([]string, 0, len(row)+1)
					rec = append(rec, core.NationCorrelationColumns[i])
					for _, v := range row {
						rec = append(rec, fmtFloat(v))
					}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCorrelationTable(matrix, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeCorrelationTable generates and writes the human-readable matrix.
func writeCorrelationTable(matrix [][]float64, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header(append([]string{"Metric"}, core.NationCorrelationColumns...))

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, row := range matrix {
		r := make([]string, 0, len(row)+1)
		r = append(r, core.NationCorrelationColumns[i])
		for _, v := range row {
			r = append(r, fmtFloat(v))
		}
		data = append(data, r)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
