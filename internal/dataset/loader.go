// Package dataset loads the historical Games participation CSV files and
// joins delegation codes against their region names.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gamesgap/gamesgap/schema"
)

// Expected header columns for the participation file.
var participationColumns = []string{
	"ID", "Name", "Sex", "Age", "Height", "Weight", "Team", "NOC",
	"Games", "Year", "Season", "City", "Sport", "Event", "Medal",
}

// Expected header columns for the regions file.
var regionColumns = []string{"NOC", "region", "notes"}

// LoadRecords reads participation records from a CSV file and joins each
// record's NOC against the regions file. Records keep their raw medal and
// season values normalized into schema constants.
func LoadRecords(dataPath, regionsPath string) ([]schema.ParticipationRecord, error) {
	regions, err := LoadRegions(regionsPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(dataPath)
	if err != nil {
		return nil, fmt.Errorf("open participation file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, err
	}

	JoinRegions(records, regions)
	return records, nil
}

// ReadRecords parses participation rows from r. The first row must be the
// canonical header.
func ReadRecords(r io.Reader) ([]schema.ParticipationRecord, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read participation header: %w", err)
	}
	cols, err := columnIndex(header, participationColumns)
	if err != nil {
		return nil, err
	}

	var records []schema.ParticipationRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read participation row: %w", err)
		}
		line++

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadRegions reads the NOC to region mapping from a CSV file.
func LoadRegions(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open regions file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadRegions(f)
}

// ReadRegions parses the NOC to region mapping from r.
func ReadRegions(r io.Reader) (map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read regions header: %w", err)
	}
	cols, err := columnIndex(header, regionColumns[:2])
	if err != nil {
		return nil, err
	}

	regions := make(map[string]string)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read regions row: %w", err)
		}
		noc := strings.TrimSpace(row[cols["NOC"]])
		region := strings.TrimSpace(row[cols["region"]])
		if noc != "" {
			regions[noc] = region
		}
	}
	return regions, nil
}

// columnIndex maps required column names to their positions in the header.
func columnIndex(header, required []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return cols, nil
}

// parseRow converts one CSV row into a ParticipationRecord.
func parseRow(row []string, cols map[string]int) (schema.ParticipationRecord, error) {
	var rec schema.ParticipationRecord

	id, err := strconv.Atoi(row[cols["ID"]])
	if err != nil {
		return rec, fmt.Errorf("invalid athlete id %q: %w", row[cols["ID"]], err)
	}
	year, err := strconv.Atoi(row[cols["Year"]])
	if err != nil {
		return rec, fmt.Errorf("invalid year %q: %w", row[cols["Year"]], err)
	}

	sex, err := schema.ParseSex(row[cols["Sex"]])
	if err != nil {
		return rec, err
	}
	medal, err := schema.ParseMedal(row[cols["Medal"]])
	if err != nil {
		return rec, err
	}
	season, err := schema.ParseSeason(row[cols["Season"]])
	if err != nil {
		return rec, err
	}

	// Age is "NA" for many early records.
	age := 0
	if raw := row[cols["Age"]]; raw != "" && raw != "NA" {
		age, err = strconv.Atoi(raw)
		if err != nil {
			return rec, fmt.Errorf("invalid age %q: %w", raw, err)
		}
	}

	rec = schema.ParticipationRecord{
		AthleteID: id,
		Name:      row[cols["Name"]],
		Sex:       sex,
		Age:       age,
		NOC:       strings.TrimSpace(row[cols["NOC"]]),
		GamesYear: year,
		Season:    season,
		City:      row[cols["City"]],
		Sport:     row[cols["Sport"]],
		Event:     row[cols["Event"]],
		Medal:     medal,
	}
	return rec, nil
}
