package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseSex tests parsing of raw sex cells.
func TestParseSex(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		for raw, want := range map[string]Sex{
			"F": Female, "M": Male, "f": Female, "m": Male, " F ": Female,
		} {
			got, err := ParseSex(raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, raw := range []string{"", "X", "female", "NA"} {
			_, err := ParseSex(raw)
			assert.Error(t, err, "raw=%q", raw)
		}
	})
}

// TestParseMedal tests parsing of raw medal cells.
func TestParseMedal(t *testing.T) {
	t.Run("medals", func(t *testing.T) {
		for raw, want := range map[string]Medal{
			"Gold": MedalGold, "Silver": MedalSilver, "Bronze": MedalBronze,
		} {
			got, err := ParseMedal(raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("non-medallists map to none", func(t *testing.T) {
		for _, raw := range []string{"", "NA", "na", "None"} {
			got, err := ParseMedal(raw)
			require.NoError(t, err)
			assert.Equal(t, MedalNone, got)
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ParseMedal("platinum")
		assert.Error(t, err)
	})
}

// TestParseSeason tests parsing of raw season cells.
func TestParseSeason(t *testing.T) {
	got, err := ParseSeason("Summer")
	require.NoError(t, err)
	assert.Equal(t, SummerSeason, got)

	got, err = ParseSeason("winter")
	require.NoError(t, err)
	assert.Equal(t, WinterSeason, got)

	_, err = ParseSeason("spring")
	assert.Error(t, err)
}

// TestSummaryRecordRoundTrip tests the store record conversions.
func TestSummaryRecordRoundTrip(t *testing.T) {
	s := SportGamesSummary{
		GamesYear:            2016,
		Sport:                "Golf",
		TotalParticipants:    120,
		FemaleParticipants:   60,
		MaleParticipants:     60,
		FemaleRatio:          0.5,
		DistinctEvents:       2,
		FemaleEligibleEvents: 1,
	}
	rec := RecordFromSummary(42, s)
	assert.Equal(t, int64(42), rec.RunID)
	assert.Equal(t, s, SummaryFromRecord(rec))
}
