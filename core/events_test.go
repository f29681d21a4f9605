package core

import (
	"testing"

	"github.com/gamesgap/gamesgap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEventAccessBySport tests distinct-event counting per sex.
func TestEventAccessBySport(t *testing.T) {
	records := []schema.ParticipationRecord{
		rec(2012, "Swimming", "100m Freestyle", schema.Female, schema.MedalNone),
		rec(2012, "Swimming", "100m Freestyle", schema.Female, schema.MedalGold),
		rec(2012, "Swimming", "100m Freestyle", schema.Male, schema.MedalNone),
		rec(2012, "Swimming", "1500m Freestyle", schema.Male, schema.MedalNone),
		rec(2012, "Boxing", "Flyweight", schema.Male, schema.MedalNone),
	}

	access, err := EventAccessBySport(records)
	require.NoError(t, err)
	require.Len(t, access, 2)

	assert.Equal(t, schema.EventAccess{GamesYear: 2012, Sport: "Boxing", FemaleEvents: 0, MaleEvents: 1}, access[0])
	assert.Equal(t, schema.EventAccess{GamesYear: 2012, Sport: "Swimming", FemaleEvents: 1, MaleEvents: 2}, access[1])
}

// TestEventAccessBySportValidation tests that schema violations propagate.
func TestEventAccessBySportValidation(t *testing.T) {
	bad := rec(2012, "Swimming", "100m Freestyle", "unknown", schema.MedalNone)
	_, err := EventAccessBySport([]schema.ParticipationRecord{bad})
	var sve *SchemaViolationError
	assert.ErrorAs(t, err, &sve)
}
