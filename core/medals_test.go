package core

import (
	"math"
	"testing"

	"github.com/gamesgap/gamesgap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// regionRec builds a record attributed to a region for medal tests.
func regionRec(year int, region string, sex schema.Sex, medal schema.Medal) schema.ParticipationRecord {
	r := rec(year, "Athletics", "100m", sex, medal)
	r.Region = region
	return r
}

// TestMedalTable tests aggregation and ordering of the medal table.
func TestMedalTable(t *testing.T) {
	records := []schema.ParticipationRecord{
		regionRec(2012, "USA", schema.Male, schema.MedalGold),
		regionRec(2012, "USA", schema.Female, schema.MedalGold),
		regionRec(2012, "UK", schema.Male, schema.MedalGold),
		regionRec(2012, "UK", schema.Female, schema.MedalSilver),
		regionRec(2012, "France", schema.Male, schema.MedalBronze),
		regionRec(2012, "France", schema.Female, schema.MedalNone),
	}

	table, err := MedalTable(records)
	require.NoError(t, err)
	require.Len(t, table, 3)

	assert.Equal(t, schema.MedalTableRow{Region: "USA", Golds: 2}, table[0])
	assert.Equal(t, schema.MedalTableRow{Region: "UK", Golds: 1, Silvers: 1}, table[1])
	assert.Equal(t, schema.MedalTableRow{Region: "France", Bronzes: 1}, table[2])
}

// TestNationMetrics tests per-delegation derived metrics.
func TestNationMetrics(t *testing.T) {
	records := []schema.ParticipationRecord{
		regionRec(2012, "USA", schema.Male, schema.MedalGold),
		regionRec(2012, "USA", schema.Female, schema.MedalNone),
		regionRec(2012, "USA", schema.Female, schema.MedalSilver),
		regionRec(2016, "USA", schema.Male, schema.MedalNone),
	}

	metrics, err := NationMetrics(records)
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	first := metrics[0]
	assert.Equal(t, 2012, first.GamesYear)
	assert.Equal(t, 1, first.Men)
	assert.Equal(t, 2, first.Women)
	assert.Equal(t, 2, first.Medals)
	assert.InDelta(t, 2.0/3.0, first.FemaleRatio, 1e-12)
	assert.InDelta(t, 2.0/3.0, first.MedalsPerAthlete, 1e-12)

	second := metrics[1]
	assert.Equal(t, 2016, second.GamesYear)
	assert.Equal(t, 0.0, second.FemaleRatio)
	assert.Equal(t, 0.0, second.MedalsPerAthlete)
}

// TestNationCorrelationMatrix tests shape and symmetry of the matrix.
func TestNationCorrelationMatrix(t *testing.T) {
	metrics := []schema.NationGamesMetrics{
		{GamesYear: 2000, Men: 100, Women: 40, Medals: 20, FemaleRatio: 40.0 / 140.0, MedalsPerAthlete: 20.0 / 140.0},
		{GamesYear: 2008, Men: 90, Women: 60, Medals: 30, FemaleRatio: 0.4, MedalsPerAthlete: 0.2},
		{GamesYear: 2016, Men: 80, Women: 80, Medals: 25, FemaleRatio: 0.5, MedalsPerAthlete: 25.0 / 160.0},
	}

	matrix, err := NationCorrelationMatrix(metrics)
	require.NoError(t, err)
	require.Len(t, matrix, len(NationCorrelationColumns))

	for i := range matrix {
		require.Len(t, matrix[i], len(NationCorrelationColumns))
		assert.InDelta(t, 1.0, matrix[i][i], 1e-12)
		for j := range matrix[i] {
			assert.InDelta(t, matrix[j][i], matrix[i][j], 1e-12)
			if !math.IsNaN(matrix[i][j]) {
				assert.GreaterOrEqual(t, matrix[i][j], -1.0-1e-12)
				assert.LessOrEqual(t, matrix[i][j], 1.0+1e-12)
			}
		}
	}

	// Female ratio rises with the year in this fixture.
	assert.Greater(t, matrix[0][4], 0.9)
}

// TestNationCorrelationMatrixEmptyInput tests the empty-input failure mode.
func TestNationCorrelationMatrixEmptyInput(t *testing.T) {
	_, err := NationCorrelationMatrix(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
