package core

import (
	"testing"

	"github.com/gamesgap/gamesgap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seasonRec builds a record with an explicit season for filter tests.
func seasonRec(year int, sport string, season schema.Season) schema.ParticipationRecord {
	r := rec(year, sport, "E1", schema.Male, schema.MedalNone)
	r.Season = season
	return r
}

// TestFilterSeason tests season filtering.
func TestFilterSeason(t *testing.T) {
	records := []schema.ParticipationRecord{
		seasonRec(2014, "Luge", schema.WinterSeason),
		seasonRec(2016, "Golf", schema.SummerSeason),
		seasonRec(2018, "Curling", schema.WinterSeason),
	}

	winter := FilterSeason(records, schema.WinterSeason)
	require.Len(t, winter, 2)
	assert.Equal(t, "Luge", winter[0].Sport)
	assert.Equal(t, "Curling", winter[1].Sport)

	all := FilterSeason(records, schema.AllSeasons)
	assert.Len(t, all, 3)
}

// TestRetiredSports tests last-inclusion cutoff detection.
func TestRetiredSports(t *testing.T) {
	records := []schema.ParticipationRecord{
		seasonRec(1900, "Croquet", schema.SummerSeason),
		seasonRec(1920, "Tug-Of-War", schema.SummerSeason),
		seasonRec(1904, "Golf", schema.SummerSeason),
		seasonRec(2016, "Golf", schema.SummerSeason),
	}

	retired := RetiredSports(records, 2000)
	assert.Equal(t, []string{"Croquet", "Tug-Of-War"}, retired)

	kept := DropRetiredSports(records, 2000)
	require.Len(t, kept, 2)
	for _, r := range kept {
		assert.Equal(t, "Golf", r.Sport)
	}
}

// TestDropRetiredSportsNoop tests the fast path with nothing retired.
func TestDropRetiredSportsNoop(t *testing.T) {
	records := []schema.ParticipationRecord{
		seasonRec(2016, "Golf", schema.SummerSeason),
	}
	kept := DropRetiredSports(records, 2000)
	assert.Len(t, kept, 1)
}
