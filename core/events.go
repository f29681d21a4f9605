package core

import (
	"sort"

	"github.com/gamesgap/gamesgap/schema"
)

// EventAccessBySport counts, per (GamesYear, Sport), the distinct events
// in which each sex has at least one participation record. Comparing the
// two counts reveals sports where women had fewer events to enter, which
// raw headcounts alone cannot show.
//
// Output is ordered by GamesYear ascending, then sport name. Records are
// validated the same way Summarize validates them.
func EventAccessBySport(records []schema.ParticipationRecord) ([]schema.EventAccess, error) {
	if err := validateRecords(records); err != nil {
		return nil, err
	}

	type eventSets struct {
		female map[string]struct{}
		male   map[string]struct{}
	}
	groups := make(map[sportGamesKey]*eventSets)
	for _, r := range records {
		key := sportGamesKey{gamesYear: r.GamesYear, sport: r.Sport}
		set, ok := groups[key]
		if !ok {
			set = &eventSets{
				female: make(map[string]struct{}),
				male:   make(map[string]struct{}),
			}
			groups[key] = set
		}
		switch r.Sex {
		case schema.Female:
			set.female[r.Event] = struct{}{}
		case schema.Male:
			set.male[r.Event] = struct{}{}
		}
	}

	access := make([]schema.EventAccess, 0, len(groups))
	for key, set := range groups {
		access = append(access, schema.EventAccess{
			GamesYear:    key.gamesYear,
			Sport:        key.sport,
			FemaleEvents: len(set.female),
			MaleEvents:   len(set.male),
		})
	}
	sort.Slice(access, func(i, j int) bool {
		if access[i].GamesYear != access[j].GamesYear {
			return access[i].GamesYear < access[j].GamesYear
		}
		return access[i].Sport < access[j].Sport
	})

	return access, nil
}
