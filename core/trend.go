package core

import (
	"sort"

	"github.com/gamesgap/gamesgap/schema"
)

// DeficitTrend aggregates the per-sport summaries into one participation
// ratio per Games. The ratio is weighted by participant counts,
// sum(female)/sum(total) per year, so a small-field sport cannot distort
// the aggregate the way an unweighted mean of per-sport ratios would.
//
// The series is ordered by GamesYear ascending with one point per Games
// present in the summaries; missing Games are not gap-filled. An empty
// summary sequence yields ErrEmptyInput.
func DeficitTrend(summaries []schema.SportGamesSummary) (schema.TrendSeries, error) {
	if len(summaries) == 0 {
		return schema.TrendSeries{}, ErrEmptyInput
	}

	type yearAccum struct {
		female int
		total  int
	}
	years := make(map[int]*yearAccum)
	for _, s := range summaries {
		acc, ok := years[s.GamesYear]
		if !ok {
			acc = &yearAccum{}
			years[s.GamesYear] = acc
		}
		acc.female += s.FemaleParticipants
		acc.total += s.TotalParticipants
	}

	points := make([]schema.TrendPoint, 0, len(years))
	for year, acc := range years {
		if acc.total == 0 {
			continue // ratio undefined, excluded from the series
		}
		points = append(points, schema.TrendPoint{
			GamesYear:   year,
			FemaleRatio: float64(acc.female) / float64(acc.total),
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].GamesYear < points[j].GamesYear
	})

	return schema.TrendSeries{Points: points}, nil
}
