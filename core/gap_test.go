package core

import (
	"testing"

	"github.com/gamesgap/gamesgap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSportsWithGap tests threshold filtering of the summaries.
func TestSportsWithGap(t *testing.T) {
	summaries := []schema.SportGamesSummary{
		summary(2014, "Bobsleigh", 40, 130),       // ratio ~0.235
		summary(2014, "Figure Skating", 74, 74),   // ratio 0.5
		summary(2014, "Nordic Combined", 0, 55),   // ratio 0
		summary(2014, "Synchronized Swim", 104, 0), // ratio 1
	}

	t.Run("typical threshold", func(t *testing.T) {
		entries, err := SportsWithGap(summaries, 0.45)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Nordic Combined", entries[0].Sport)
		assert.InDelta(t, 0.45, entries[0].Shortfall, 1e-9)
		assert.Equal(t, "Bobsleigh", entries[1].Sport)
		assert.InDelta(t, 0.45-40.0/170.0, entries[1].Shortfall, 1e-9)
	})

	t.Run("zero threshold matches nothing", func(t *testing.T) {
		entries, err := SportsWithGap(summaries, 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("unit threshold matches every mixed or male field", func(t *testing.T) {
		entries, err := SportsWithGap(summaries, 1)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for _, e := range entries {
			assert.Less(t, e.FemaleRatio, 1.0)
		}
	})
}

// TestSportsWithGapOrdering tests that entries come out widest gap first,
// regardless of the order the summaries arrive in.
func TestSportsWithGapOrdering(t *testing.T) {
	summaries := []schema.SportGamesSummary{
		summary(2014, "Biathlon", 40, 60), // ratio 0.40
		summary(2014, "Boxing", 0, 50),    // ratio 0.00
		summary(2014, "Rowing", 20, 80),   // ratio 0.20
	}

	entries, err := SportsWithGap(summaries, 0.45)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Boxing", entries[0].Sport)
	assert.Equal(t, "Rowing", entries[1].Sport)
	assert.Equal(t, "Biathlon", entries[2].Sport)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Shortfall, entries[i].Shortfall)
	}
}

// TestSportsWithGapInvalidThreshold tests the threshold bounds check.
func TestSportsWithGapInvalidThreshold(t *testing.T) {
	summaries := []schema.SportGamesSummary{summary(2014, "Luge", 30, 80)}

	_, err := SportsWithGap(summaries, -0.1)
	assert.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = SportsWithGap(summaries, 1.1)
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

// TestSportsWithGapEmptyInput tests the empty-input failure mode.
func TestSportsWithGapEmptyInput(t *testing.T) {
	_, err := SportsWithGap(nil, 0.45)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
