package core

import (
	"sort"

	"github.com/gamesgap/gamesgap/schema"
)

// SportsWithGap filters the summaries down to sports whose female
// participation ratio fell strictly below the threshold at a given Games.
// A threshold of 0.45 surfaces the male-dominated sports per Games; a
// threshold of 0 matches nothing since no ratio is negative.
//
// The threshold must lie in [0,1] or ErrInvalidThreshold is returned.
// An empty summary sequence yields ErrEmptyInput. Each entry carries its
// shortfall (threshold minus the actual ratio), and the result is ordered
// from the widest gap to the narrowest, with ties broken by GamesYear
// ascending then sport name.
func SportsWithGap(summaries []schema.SportGamesSummary, threshold float64) ([]schema.GapEntry, error) {
	if threshold < 0 || threshold > 1 {
		return nil, ErrInvalidThreshold
	}
	if len(summaries) == 0 {
		return nil, ErrEmptyInput
	}

	entries := make([]schema.GapEntry, 0)
	for _, s := range summaries {
		if s.TotalParticipants == 0 {
			continue // ratio undefined, excluded from ratio-based output
		}
		if s.FemaleRatio < threshold {
			entries = append(entries, schema.GapEntry{
				Sport:       s.Sport,
				GamesYear:   s.GamesYear,
				FemaleRatio: s.FemaleRatio,
				Shortfall:   threshold - s.FemaleRatio,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Shortfall != entries[j].Shortfall {
			return entries[i].Shortfall > entries[j].Shortfall
		}
		if entries[i].GamesYear != entries[j].GamesYear {
			return entries[i].GamesYear < entries[j].GamesYear
		}
		return entries[i].Sport < entries[j].Sport
	})
	return entries, nil
}
