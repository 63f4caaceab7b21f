package networth

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable is returned when the reference rate source cannot be reached or decoded.
	ErrUnavailable = errors.New("rate source unavailable")
	// ErrNoRateFound is returned when no rate interval covers a date.
	ErrNoRateFound = errors.New("no rate found")
	// ErrNoPriorData is returned when a goal starts before the first ledger date.
	ErrNoPriorData = errors.New("no ledger data on or before the goal start date")
)

// ParseError reports a malformed ledger row.
type ParseError struct {
	Line   int    // 1-based line in the source, the header being line 1.
	Column string // Column name, empty when the whole row is at fault.
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: column %s: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
