package core

import (
	"sort"

	"github.com/gamesgap/gamesgap/schema"
)

// sportGamesKey identifies one aggregation group: a sport at one Games.
type sportGamesKey struct {
	gamesYear int
	sport     string
}

// sportGamesAccum accumulates per-group counts during the single pass
// over the input records.
type sportGamesAccum struct {
	total        int
	female       int
	male         int
	events       map[string]struct{}
	femaleEvents map[string]struct{}
}

// Summarize groups participation records by (GamesYear, Sport) and derives
// one SportGamesSummary per group. An event counts as female-eligible when
// at least one female participation record exists for it; the historical
// data carries no explicit eligibility flags, so observed participation is
// the proxy.
//
// The result is ordered by GamesYear ascending, then by sport name with
// case-sensitive lexical comparison, so repeated calls over the same input
// yield identical output. An empty input yields an empty result, not an
// error. Records that violate the schema yield a *SchemaViolationError.
func Summarize(records []schema.ParticipationRecord) ([]schema.SportGamesSummary, error) {
	if err := validateRecords(records); err != nil {
		return nil, err
	}

	// 1. Accumulate counts in a single pass.
	groups := make(map[sportGamesKey]*sportGamesAccum)
	for _, r := range records {
		key := sportGamesKey{gamesYear: r.GamesYear, sport: r.Sport}
		acc, ok := groups[key]
		if !ok {
			acc = &sportGamesAccum{
				events:       make(map[string]struct{}),
				femaleEvents: make(map[string]struct{}),
			}
			groups[key] = acc
		}

		acc.total++
		acc.events[r.Event] = struct{}{}
		switch r.Sex {
		case schema.Female:
			acc.female++
			acc.femaleEvents[r.Event] = struct{}{}
		case schema.Male:
			acc.male++
		}
	}

	// 2. Finalize summaries. Groups with zero participants cannot occur
	// for non-empty input, but the ratio is undefined for them, so they
	// are excluded rather than risking a division error.
	summaries := make([]schema.SportGamesSummary, 0, len(groups))
	for key, acc := range groups {
		if acc.total == 0 {
			continue
		}
		summaries = append(summaries, schema.SportGamesSummary{
			GamesYear:            key.gamesYear,
			Sport:                key.sport,
			TotalParticipants:    acc.total,
			FemaleParticipants:   acc.female,
			MaleParticipants:     acc.male,
			FemaleRatio:          float64(acc.female) / float64(acc.total),
			DistinctEvents:       len(acc.events),
			FemaleEligibleEvents: len(acc.femaleEvents),
		})
	}

	// 3. Deterministic ordering for stable output and plotting.
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].GamesYear != summaries[j].GamesYear {
			return summaries[i].GamesYear < summaries[j].GamesYear
		}
		return summaries[i].Sport < summaries[j].Sport
	})

	return summaries, nil
}

// validateRecords checks every record against the schema before any
// aggregation runs, so no partial result can be produced from bad input.
func validateRecords(records []schema.ParticipationRecord) error {
	for i, r := range records {
		if r.Sport == "" {
			return &SchemaViolationError{Index: i, Field: "Sport", Reason: "required field is empty"}
		}
		if r.Event == "" {
			return &SchemaViolationError{Index: i, Field: "Event", Reason: "required field is empty"}
		}
		if r.GamesYear <= 0 {
			return &SchemaViolationError{Index: i, Field: "GamesYear", Reason: "must be a positive year"}
		}
		if _, ok := schema.ValidSexes[r.Sex]; !ok {
			return &SchemaViolationError{Index: i, Field: "Sex", Reason: "value outside the binary category set"}
		}
		if _, ok := schema.ValidMedals[r.Medal]; !ok {
			return &SchemaViolationError{Index: i, Field: "Medal", Reason: "unrecognized medal outcome"}
		}
	}
	return nil
}
