package schema

import "time"

// AnalysisRunRecord represents a single analysis run persisted in the
// store. It maps to the gamesgap_analysis_runs table.
type AnalysisRunRecord struct {
	RunID          int64
	Dataset        string
	Season         string
	StartTime      time.Time
	EndTime        *time.Time
	RunDurationMs  *int32
	TotalRecords   int32
	TotalSummaries int32
}

// SummaryRecord is one persisted SportGamesSummary row, keyed back to the
// run that produced it. It maps to the gamesgap_sport_summaries table.
type SummaryRecord struct {
	RunID                int64
	GamesYear            int32
	Sport                string
	TotalParticipants    int32
	FemaleParticipants   int32
	MaleParticipants     int32
	FemaleRatio          float64
	DistinctEvents       int32
	FemaleEligibleEvents int32
}

// StoreStatus holds status information about the analysis store.
type StoreStatus struct {
	Backend     string
	Connected   bool
	TotalRuns   int
	TableSizes  map[string]int64
	LastRunTime time.Time
}

// SummaryFromRecord converts a persisted SummaryRecord back into the
// engine's SportGamesSummary shape.
func SummaryFromRecord(r SummaryRecord) SportGamesSummary {
	return SportGamesSummary{
		GamesYear:            int(r.GamesYear),
		Sport:                r.Sport,
		TotalParticipants:    int(r.TotalParticipants),
		FemaleParticipants:   int(r.FemaleParticipants),
		MaleParticipants:     int(r.MaleParticipants),
		FemaleRatio:          r.FemaleRatio,
		DistinctEvents:       int(r.DistinctEvents),
		FemaleEligibleEvents: int(r.FemaleEligibleEvents),
	}
}

// RecordFromSummary converts an engine summary into its persisted shape.
func RecordFromSummary(runID int64, s SportGamesSummary) SummaryRecord {
	return SummaryRecord{
		RunID:                runID,
		GamesYear:            int32(s.GamesYear),
		Sport:                s.Sport,
		TotalParticipants:    int32(s.TotalParticipants),
		FemaleParticipants:   int32(s.FemaleParticipants),
		MaleParticipants:     int32(s.MaleParticipants),
		FemaleRatio:          s.FemaleRatio,
		DistinctEvents:       int32(s.DistinctEvents),
		FemaleEligibleEvents: int32(s.FemaleEligibleEvents),
	}
}
