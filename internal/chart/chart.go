// Package chart renders analysis results as self-contained HTML charts.
package chart

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/gamesgap/gamesgap/schema"
)

// RenderReport writes a single HTML page with the trend line, the per-sport
// ratio bars for the latest Games edition, and the medal table bars.
func RenderReport(series schema.TrendSeries, summaries []schema.SportGamesSummary, medals []schema.MedalTableRow, outputPath string) error {
	if outputPath == "" {
		return fmt.Errorf("chart output path is required")
	}

	page := components.NewPage()
	page.SetPageTitle("Games participation report")
	page.AddCharts(
		trendLine(series),
		summaryScatter(summaries),
		medalBar(medals),
	)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}

// RenderTrendChart writes only the trend line chart.
func RenderTrendChart(series schema.TrendSeries, outputPath string) error {
	if outputPath == "" {
		return fmt.Errorf("chart output path is required")
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := trendLine(series).Render(f); err != nil {
		return fmt.Errorf("failed to render trend chart: %w", err)
	}
	return nil
}

// trendLine builds the female-ratio-over-time line chart.
func trendLine(series schema.TrendSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Female participation over time",
			Subtitle: "Weighted ratio of female participation records per Games edition",
		}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 1}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	years := make([]string, 0, len(series.Points))
	values := make([]opts.LineData, 0, len(series.Points))
	for _, p := range series.Points {
		years = append(years, strconv.Itoa(p.GamesYear))
		values = append(values, opts.LineData{Value: p.FemaleRatio})
	}

	line.SetXAxis(years).AddSeries("Female ratio", values)
	return line
}

// summaryScatter builds per-sport female ratio points for the latest
// edition in the summaries.
func summaryScatter(summaries []schema.SportGamesSummary) *charts.Scatter {
	latest := 0
	for _, s := range summaries {
		if s.GamesYear > latest {
			latest = s.GamesYear
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Female ratio by sport (%d)", latest),
		}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 1}),
	)

	var sports []string
	var values []opts.ScatterData
	for _, s := range summaries {
		if s.GamesYear != latest {
			continue
		}
		sports = append(sports, s.Sport)
		values = append(values, opts.ScatterData{Value: s.FemaleRatio})
	}

	scatter.SetXAxis(sports).AddSeries("Female ratio", values)
	return scatter
}

// medalBar builds the per-region medal bars.
func medalBar(medals []schema.MedalTableRow) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Medal table"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	var regions []string
	var golds, silvers, bronzes []opts.BarData
	for _, m := range medals {
		regions = append(regions, m.Region)
		golds = append(golds, opts.BarData{Value: m.Golds})
		silvers = append(silvers, opts.BarData{Value: m.Silvers})
		bronzes = append(bronzes, opts.BarData{Value: m.Bronzes})
	}

	bar.SetXAxis(regions).
		AddSeries("Gold", golds).
		AddSeries("Silver", silvers).
		AddSeries("Bronze", bronzes)
	return bar
}
