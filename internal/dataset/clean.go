package dataset

import (
	"github.com/gamesgap/gamesgap/core"
	"github.com/gamesgap/gamesgap/schema"
)

// regionFills covers NOC codes the regions file leaves blank.
var regionFills = map[string]string{
	"TUV": "Tuvalu",
	"ROT": "Refugee Olympic Team",
	"UNK": "Unknown",
}

// JoinRegions resolves each record's NOC code to a region name in place.
// Codes missing from the mapping fall back to regionFills and finally to
// the raw NOC code itself.
func JoinRegions(records []schema.ParticipationRecord, regions map[string]string) {
	for i := range records {
		noc := records[i].NOC
		region, ok := regions[noc]
		if !ok || region == "" {
			region, ok = regionFills[noc]
			if !ok {
				region = noc
			}
		}
		records[i].Region = region
	}
}

// Prepare applies the standard cleaning pipeline: season filtering and,
// unless keepRetired is set, dropping sports whose last inclusion predates
// the cutoff year.
func Prepare(records []schema.ParticipationRecord, season schema.Season, cutoffYear int, keepRetired bool) []schema.ParticipationRecord {
	out := core.FilterSeason(records, season)
	if !keepRetired {
		out = core.DropRetiredSports(out, cutoffYear)
	}
	return out
}
