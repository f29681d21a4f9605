// Package contract holds the runtime configuration contract between the CLI
// surface and the analysis engine, plus the validation that turns raw flag,
// env and config-file inputs into a usable Config.
package contract

import (
	"fmt"
	"strings"

	"github.com/gamesgap/gamesgap/schema"
)

// Default values for configuration.
const (
	DefaultThreshold   = 0.45
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 3
	DefaultCutoffYear  = 2000
	DefaultDatasetFile = "athlete_events.csv"
	DefaultRegionsFile = "noc_regions.csv"
)

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	DatasetPath string
	RegionsPath string

	Season      schema.Season
	Threshold   float64
	ResultLimit int
	CutoffYear  int
	KeepRetired bool

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	ChartFile  string
	Width      int // Terminal width override (0 = auto-detect)

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DatasetPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Regions        string `mapstructure:"regions"`
	Season         string `mapstructure:"season"`
	Limit          int    `mapstructure:"limit"`
	CutoffYear     int    `mapstructure:"cutoff-year"`
	KeepRetired    bool   `mapstructure:"keep-retired"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	// --- Fields from gapCmd.Flags() ---
	Threshold float64 `mapstructure:"threshold"`

	// --- Fields from chartCmd.Flags() ---
	ChartFile string `mapstructure:"chart-file"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processThreshold(cfg, input); err != nil {
		return err
	}
	if err := resolveDatasetPaths(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfig validates the result store backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.ChartFile = input.ChartFile
	cfg.KeepRetired = input.KeepRetired
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Season Validation ---
	season, err := schema.ParseSeasonFilter(input.Season)
	if err != nil {
		return fmt.Errorf("invalid --season value: %w", err)
	}
	cfg.Season = season

	// --- 3. Cutoff Year Validation ---
	if input.CutoffYear < 1896 {
		return fmt.Errorf("cutoff-year must be 1896 or later (received %d)", input.CutoffYear)
	}
	cfg.CutoffYear = input.CutoffYear

	// --- 4. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 6 {
		return fmt.Errorf("precision must be between 1 and 6 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	// --- 5. Backend Validation ---
	return validateBackendConfig(cfg, input)
}

// processThreshold validates the participation gap threshold.
func processThreshold(cfg *Config, input *ConfigRawInput) error {
	if input.Threshold < 0 || input.Threshold > 1 {
		return fmt.Errorf("threshold must be within [0,1] (received %g)", input.Threshold)
	}
	cfg.Threshold = input.Threshold
	return nil
}

// resolveDatasetPaths resolves the dataset and regions file paths.
func resolveDatasetPaths(cfg *Config, input *ConfigRawInput) error {
	dataset := strings.TrimSpace(input.DatasetPathStr)
	if dataset == "" {
		dataset = DefaultDatasetFile
	}
	cfg.DatasetPath = dataset

	regions := strings.TrimSpace(input.Regions)
	if regions == "" {
		regions = DefaultRegionsFile
	}
	cfg.RegionsPath = regions

	return nil
}
