// Package core has the metric engine for gender-participation analysis.
// Every operation is a pure function over an immutable record slice; the
// engine holds no state and performs no I/O.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the derived aggregations.
var (
	// ErrEmptyInput is returned when an aggregation is attempted over an
	// empty summary sequence. No partial result is emitted alongside it.
	ErrEmptyInput = errors.New("aggregation attempted over empty input")

	// ErrInvalidThreshold is returned when a caller supplies a filter
	// threshold outside [0,1].
	ErrInvalidThreshold = errors.New("threshold must be within [0,1]")
)

// SchemaViolationError reports a ParticipationRecord that is missing a
// required field or carries a value outside the category sets the engine
// recognizes. The engine rejects the whole input rather than skipping the
// offending record.
type SchemaViolationError struct {
	Index  int    // Position of the record in the input slice
	Field  string // Name of the offending field
	Reason string // Human-readable description of the violation
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("record %d: field %s: %s", e.Index, e.Field, e.Reason)
}
