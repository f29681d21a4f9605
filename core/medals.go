package core

import (
	"math"
	"sort"

	"github.com/gamesgap/gamesgap/schema"
)

// MedalTable aggregates medal counts per region across all Games in the
// input. Non-medallist records do not contribute. Rows are ordered by
// golds, then silvers, then bronzes descending, with region name as the
// final tiebreak.
func MedalTable(records []schema.ParticipationRecord) ([]schema.MedalTableRow, error) {
	if err := validateRecords(records); err != nil {
		return nil, err
	}

	rows := make(map[string]*schema.MedalTableRow)
	for _, r := range records {
		if r.Medal == schema.MedalNone || r.Region == "" {
			continue
		}
		row, ok := rows[r.Region]
		if !ok {
			row = &schema.MedalTableRow{Region: r.Region}
			rows[r.Region] = row
		}
		switch r.Medal {
		case schema.MedalGold:
			row.Golds++
		case schema.MedalSilver:
			row.Silvers++
		case schema.MedalBronze:
			row.Bronzes++
		}
	}

	table := make([]schema.MedalTableRow, 0, len(rows))
	for _, row := range rows {
		table = append(table, *row)
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].Golds != table[j].Golds {
			return table[i].Golds > table[j].Golds
		}
		if table[i].Silvers != table[j].Silvers {
			return table[i].Silvers > table[j].Silvers
		}
		if table[i].Bronzes != table[j].Bronzes {
			return table[i].Bronzes > table[j].Bronzes
		}
		return table[i].Region < table[j].Region
	})

	return table, nil
}

// NationMetrics derives per-(GamesYear, Region) delegation metrics: the
// sex headcounts, medals won, the female participation ratio and medals
// per athlete. Regions absent from a Games simply produce no row; there
// is no cross join against all known regions.
//
// Output is ordered by GamesYear ascending, then region name.
func NationMetrics(records []schema.ParticipationRecord) ([]schema.NationGamesMetrics, error) {
	if err := validateRecords(records); err != nil {
		return nil, err
	}

	type nationKey struct {
		gamesYear int
		region    string
	}
	type nationAccum struct {
		men    int
		women  int
		medals int
	}
	groups := make(map[nationKey]*nationAccum)
	for _, r := range records {
		if r.Region == "" {
			continue
		}
		key := nationKey{gamesYear: r.GamesYear, region: r.Region}
		acc, ok := groups[key]
		if !ok {
			acc = &nationAccum{}
			groups[key] = acc
		}
		switch r.Sex {
		case schema.Female:
			acc.women++
		case schema.Male:
			acc.men++
		}
		if r.Medal != schema.MedalNone {
			acc.medals++
		}
	}

	metrics := make([]schema.NationGamesMetrics, 0, len(groups))
	for key, acc := range groups {
		athletes := acc.men + acc.women
		if athletes == 0 {
			continue
		}
		metrics = append(metrics, schema.NationGamesMetrics{
			GamesYear:        key.gamesYear,
			Region:           key.region,
			Men:              acc.men,
			Women:            acc.women,
			Medals:           acc.medals,
			FemaleRatio:      float64(acc.women) / float64(athletes),
			MedalsPerAthlete: float64(acc.medals) / float64(athletes),
		})
	}
	sort.Slice(metrics, func(i, j int) bool {
		if metrics[i].GamesYear != metrics[j].GamesYear {
			return metrics[i].GamesYear < metrics[j].GamesYear
		}
		return metrics[i].Region < metrics[j].Region
	})

	return metrics, nil
}

// NationCorrelationColumns names the numeric columns of the nation
// metrics in the order NationCorrelationMatrix emits them.
var NationCorrelationColumns = []string{
	"games_year", "men", "women", "medals", "female_ratio", "medals_per_athlete",
}

// NationCorrelationMatrix computes the Pearson correlation matrix over the
// numeric columns of the nation metrics. The matrix is symmetric with a
// unit diagonal; NaN appears where a column has zero variance.
// An empty metrics slice yields ErrEmptyInput.
func NationCorrelationMatrix(metrics []schema.NationGamesMetrics) ([][]float64, error) {
	if len(metrics) == 0 {
		return nil, ErrEmptyInput
	}

	cols := make([][]float64, len(NationCorrelationColumns))
	for i := range cols {
		cols[i] = make([]float64, len(metrics))
	}
	for i, m := range metrics {
		cols[0][i] = float64(m.GamesYear)
		cols[1][i] = float64(m.Men)
		cols[2][i] = float64(m.Women)
		cols[3][i] = float64(m.Medals)
		cols[4][i] = m.FemaleRatio
		cols[5][i] = m.MedalsPerAthlete
	}

	n := len(cols)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			matrix[i][j] = pearson(cols[i], cols[j])
		}
	}
	return matrix, nil
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series. Zero-variance input yields NaN.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	return cov / math.Sqrt(varX*varY)
}
