package core

import (
	"sort"

	"github.com/gamesgap/gamesgap/schema"
)

// FilterSeason returns the records belonging to the given season.
// AllSeasons returns the input unchanged.
func FilterSeason(records []schema.ParticipationRecord, season schema.Season) []schema.ParticipationRecord {
	if season == schema.AllSeasons {
		return records
	}
	filtered := make([]schema.ParticipationRecord, 0, len(records))
	for _, r := range records {
		if r.Season == season {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// LastInclusion computes the final GamesYear in which each sport appears.
func LastInclusion(records []schema.ParticipationRecord) map[string]int {
	last := make(map[string]int)
	for _, r := range records {
		if r.GamesYear > last[r.Sport] {
			last[r.Sport] = r.GamesYear
		}
	}
	return last
}

// RetiredSports lists the sports whose final appearance predates the
// cutoff year, sorted by name. With the default cutoff of 2000 this
// matches the fifteen discontinued sports in the historical dataset
// (Tug-Of-War, Croquet, and so on).
func RetiredSports(records []schema.ParticipationRecord, cutoffYear int) []string {
	last := LastInclusion(records)
	retired := make([]string, 0)
	for sport, year := range last {
		if year < cutoffYear {
			retired = append(retired, sport)
		}
	}
	sort.Strings(retired)
	return retired
}

// DropRetiredSports removes all records belonging to sports no longer
// competed in, as determined by RetiredSports.
func DropRetiredSports(records []schema.ParticipationRecord, cutoffYear int) []schema.ParticipationRecord {
	retired := make(map[string]struct{})
	for _, sport := range RetiredSports(records, cutoffYear) {
		retired[sport] = struct{}{}
	}
	if len(retired) == 0 {
		return records
	}
	kept := make([]schema.ParticipationRecord, 0, len(records))
	for _, r := range records {
		if _, ok := retired[r.Sport]; ok {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
