package dataset

import (
	"strings"
	"testing"

	"github.com/gamesgap/gamesgap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEvents = `ID,Name,Sex,Age,Height,Weight,Team,NOC,Games,Year,Season,City,Sport,Event,Medal
1,A Dijiang,M,24,180,80,China,CHN,1992 Summer,1992,Summer,Barcelona,Basketball,Basketball Men's Basketball,NA
2,Christine Jacoba Aaftink,F,21,185,82,Netherlands,NED,1988 Winter,1988,Winter,Calgary,Speed Skating,Speed Skating Women's 500 metres,NA
3,Edgar Lindenau Aabye,M,34,NA,NA,Denmark/Sweden,DEN,1900 Summer,1900,Summer,Paris,Tug-Of-War,Tug-Of-War Men's Tug-Of-War,Gold
`

const sampleRegions = `NOC,region,notes
CHN,China,
NED,Netherlands,
DEN,Denmark,
TUV,,
`

// TestReadRecords tests parsing of the participation CSV.
func TestReadRecords(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(sampleEvents))
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, 1, first.AthleteID)
	assert.Equal(t, "A Dijiang", first.Name)
	assert.Equal(t, schema.Male, first.Sex)
	assert.Equal(t, 24, first.Age)
	assert.Equal(t, "CHN", first.NOC)
	assert.Equal(t, 1992, first.GamesYear)
	assert.Equal(t, schema.SummerSeason, first.Season)
	assert.Equal(t, "Basketball", first.Sport)
	assert.Equal(t, schema.MedalNone, first.Medal)

	third := records[2]
	assert.Equal(t, 0, third.Age, "NA age should parse to zero")
	assert.Equal(t, schema.MedalGold, third.Medal)
	assert.Equal(t, schema.WinterSeason, records[1].Season)
}

// TestReadRecordsErrors tests header and row failure modes.
func TestReadRecordsErrors(t *testing.T) {
	t.Run("missing column", func(t *testing.T) {
		_, err := ReadRecords(strings.NewReader("ID,Name,Sex\n1,X,M\n"))
		assert.ErrorContains(t, err, "missing required column")
	})

	t.Run("bad year", func(t *testing.T) {
		bad := strings.Replace(sampleEvents, "1992 Summer,1992", "1992 Summer,not-a-year", 1)
		_, err := ReadRecords(strings.NewReader(bad))
		assert.ErrorContains(t, err, "invalid year")
	})

	t.Run("bad sex", func(t *testing.T) {
		bad := strings.Replace(sampleEvents, "A Dijiang,M", "A Dijiang,X", 1)
		_, err := ReadRecords(strings.NewReader(bad))
		assert.ErrorContains(t, err, "unrecognized sex")
	})
}

// TestReadRegions tests parsing of the NOC mapping.
func TestReadRegions(t *testing.T) {
	regions, err := ReadRegions(strings.NewReader(sampleRegions))
	require.NoError(t, err)
	assert.Equal(t, "China", regions["CHN"])
	assert.Equal(t, "Denmark", regions["DEN"])
	assert.Equal(t, "", regions["TUV"], "blank region survives the parse")
}

// TestJoinRegions tests NOC resolution including fallback fills.
func TestJoinRegions(t *testing.T) {
	records := []schema.ParticipationRecord{
		{NOC: "CHN"},
		{NOC: "TUV"},
		{NOC: "ROT"},
		{NOC: "ZZZ"},
	}
	regions := map[string]string{"CHN": "China", "TUV": ""}

	JoinRegions(records, regions)

	assert.Equal(t, "China", records[0].Region)
	assert.Equal(t, "Tuvalu", records[1].Region, "blank mapping uses the fill table")
	assert.Equal(t, "Refugee Olympic Team", records[2].Region)
	assert.Equal(t, "ZZZ", records[3].Region, "unknown code falls back to itself")
}

// TestPrepare tests the combined season filter and retired-sport drop.
func TestPrepare(t *testing.T) {
	records := []schema.ParticipationRecord{
		{GamesYear: 1900, Season: schema.SummerSeason, Sport: "Tug-Of-War"},
		{GamesYear: 2016, Season: schema.SummerSeason, Sport: "Golf"},
		{GamesYear: 2014, Season: schema.WinterSeason, Sport: "Luge"},
	}

	t.Run("summer with retired dropped", func(t *testing.T) {
		out := Prepare(records, schema.SummerSeason, 2000, false)
		require.Len(t, out, 1)
		assert.Equal(t, "Golf", out[0].Sport)
	})

	t.Run("summer keeping retired", func(t *testing.T) {
		out := Prepare(records, schema.SummerSeason, 2000, true)
		assert.Len(t, out, 2)
	})

	t.Run("all seasons", func(t *testing.T) {
		out := Prepare(records, schema.AllSeasons, 2000, false)
		assert.Len(t, out, 2)
	})
}
