// Package schema has configs, models and shared constants for all parts of gamesgap.
package schema

// ParticipationRecord represents a single athlete-event participation row
// from the Olympic results dataset. One athlete competing in one event at
// one Games produces one record. Records are immutable once loaded; every
// analysis is a pure projection over a slice of them.
type ParticipationRecord struct {
	AthleteID int    // Numeric athlete identifier from the source dataset
	Name      string // Athlete name
	Sex       Sex    // Binary sex category as recorded by the IOC data
	Age       int    // Age at the Games, 0 when unknown
	NOC       string // Three-letter National Olympic Committee code
	Region    string // Region resolved from the NOC lookup table
	GamesYear int    // Year of the Games edition
	Season    Season // Summer or winter Games
	City      string // Host city
	Sport     string // Sport label, e.g. "Swimming"
	Event     string // Event label scoped within the sport
	Medal     Medal  // Medal outcome, MedalNone for non-medallists
}

// SportGamesSummary aggregates participation for one sport at one Games.
// FemaleRatio is female participants over total participants and always
// lies in [0,1]; FemaleParticipants+MaleParticipants == TotalParticipants.
type SportGamesSummary struct {
	GamesYear            int     `json:"games_year"`
	Sport                string  `json:"sport"`
	TotalParticipants    int     `json:"total_participants"`
	FemaleParticipants   int     `json:"female_participants"`
	MaleParticipants     int     `json:"male_participants"`
	FemaleRatio          float64 `json:"female_ratio"`
	DistinctEvents       int     `json:"distinct_events"`
	FemaleEligibleEvents int     `json:"female_eligible_events"`
}

// TrendPoint is one Games edition in the participation deficit trend.
// FemaleRatio is the participation-weighted aggregate across all sports
// held that year, not an unweighted mean of per-sport ratios.
type TrendPoint struct {
	GamesYear   int     `json:"games_year"`
	FemaleRatio float64 `json:"female_ratio"`
}

// TrendSeries is the historical deficit trend, ordered by GamesYear
// ascending with one point per Games present in the source data.
type TrendSeries struct {
	Points []TrendPoint `json:"points"`
}

// GapEntry identifies a sport at a Games whose female participation ratio
// fell below a caller-supplied threshold. Shortfall is the distance from
// the threshold (threshold minus the actual ratio), so a larger shortfall
// means a wider gap.
type GapEntry struct {
	Sport       string  `json:"sport"`
	GamesYear   int     `json:"games_year"`
	FemaleRatio float64 `json:"female_ratio"`
	Shortfall   float64 `json:"shortfall"`
}

// EventAccess counts the distinct events open to each sex for one sport
// at one Games. An event counts for a sex when at least one participation
// record of that sex exists for it.
type EventAccess struct {
	GamesYear    int    `json:"games_year"`
	Sport        string `json:"sport"`
	FemaleEvents int    `json:"female_events"`
	MaleEvents   int    `json:"male_events"`
}

// MedalTableRow is one region's all-time medal haul.
type MedalTableRow struct {
	Region  string `json:"region"`
	Golds   int    `json:"golds"`
	Silvers int    `json:"silvers"`
	Bronzes int    `json:"bronzes"`
}

// NationGamesMetrics captures one region's delegation at one Games:
// raw headcounts by sex, medals won, and the two derived metrics the
// equality analysis correlates against each other.
type NationGamesMetrics struct {
	GamesYear        int     `json:"games_year"`
	Region           string  `json:"region"`
	Men              int     `json:"men"`
	Women            int     `json:"women"`
	Medals           int     `json:"medals"`
	FemaleRatio      float64 `json:"female_ratio"`
	MedalsPerAthlete float64 `json:"medals_per_athlete"`
}
