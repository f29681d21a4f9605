package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Parity label constants.
const (
	BalancedValue = "Balanced" // Ratio at or near parity
	NarrowValue   = "Narrow"   // Modest deficit below parity
	WideValue     = "Wide"     // Large deficit below parity
	SevereValue   = "Severe"   // Near-total exclusion
)

// Color variables for console output.
var (
	BalancedColor = color.New(color.FgGreen)           // balancedColor represents parity reached.
	NarrowColor   = color.New(color.FgCyan)            // narrowColor represents a mild shortfall.
	WideColor     = color.New(color.FgYellow)          // wideColor represents standard caution, not bold.
	SevereColor   = color.New(color.FgRed, color.Bold) // severeColor represents standard danger.
)

// GetPlainLabel returns a plain text label classifying a female participation
// ratio into a parity band. This is the core logic used for CSV, JSON, and
// table printing.
func GetPlainLabel(ratio float64) string {
	switch {
	case ratio >= 0.45:
		return BalancedValue
	case ratio >= 0.30:
		return NarrowValue
	case ratio >= 0.10:
		return WideValue
	default:
		return SevereValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(ratio float64) string {
	text := GetPlainLabel(ratio)

	switch text {
	case BalancedValue:
		return BalancedColor.Sprint(text)
	case NarrowValue:
		return NarrowColor.Sprint(text)
	case WideValue:
		return WideColor.Sprint(text)
	default: // "Severe"
		return SevereColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for result storage.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gamesgap.db"
	}
	return filepath.Join(homeDir, ".gamesgap.db")
}

// TruncateName truncates a sport or event name to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for the "..." and
// at least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
