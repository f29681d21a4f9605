package schema

import (
	"fmt"
	"strings"
)

// Custom string types for type safety.
type (
	// Sex is the binary sex category recorded in the source dataset.
	Sex string

	// Medal is the medal outcome of a participation record.
	Medal string

	// Season distinguishes summer and winter Games editions.
	Season string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the analysis store.
	DatabaseBackend string
)

// Sex categories recognized by the engine.
const (
	Female Sex = "F"
	Male   Sex = "M"
)

// Medal outcomes. MedalNone replaces the blank cells the raw dataset
// uses for non-medallists.
const (
	MedalGold   Medal = "gold"
	MedalSilver Medal = "silver"
	MedalBronze Medal = "bronze"
	MedalNone   Medal = "none"
)

// Season values. AllSeasons is a filter value only and never appears on
// a record.
const (
	SummerSeason Season = "summer"
	WinterSeason Season = "winter"
	AllSeasons   Season = "all"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidSeasonFilters lists all valid season filter values.
var ValidSeasonFilters = map[Season]struct{}{
	SummerSeason: {},
	WinterSeason: {},
	AllSeasons:   {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidSexes lists the binary category set the engine recognizes.
var ValidSexes = map[Sex]struct{}{
	Female: {},
	Male:   {},
}

// ValidMedals lists all medal outcomes.
var ValidMedals = map[Medal]struct{}{
	MedalGold:   {},
	MedalSilver: {},
	MedalBronze: {},
	MedalNone:   {},
}

// ParseSex converts a raw dataset cell ("F", "M", case-insensitive) into
// a Sex value.
func ParseSex(s string) (Sex, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "F":
		return Female, nil
	case "M":
		return Male, nil
	default:
		return "", fmt.Errorf("unrecognized sex value %q", s)
	}
}

// ParseMedal converts a raw dataset cell into a Medal value. The raw
// dataset writes "NA" or an empty cell for non-medallists; both map to
// MedalNone.
func ParseMedal(s string) (Medal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gold":
		return MedalGold, nil
	case "silver":
		return MedalSilver, nil
	case "bronze":
		return MedalBronze, nil
	case "", "na", "none":
		return MedalNone, nil
	default:
		return "", fmt.Errorf("unrecognized medal value %q", s)
	}
}

// ParseSeason converts a raw dataset cell ("Summer", "Winter") into a
// Season value.
func ParseSeason(s string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "summer":
		return SummerSeason, nil
	case "winter":
		return WinterSeason, nil
	default:
		return "", fmt.Errorf("unrecognized season value %q", s)
	}
}

// ParseSeasonFilter converts a user-facing filter value into a Season.
// Unlike ParseSeason it accepts "all", which selects both editions.
func ParseSeasonFilter(s string) (Season, error) {
	if strings.ToLower(strings.TrimSpace(s)) == string(AllSeasons) {
		return AllSeasons, nil
	}
	return ParseSeason(s)
}
