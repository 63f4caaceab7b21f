package networth

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/networth/date"
	"github.com/shopspring/decimal"
)

// RateInterval is an annual reference rate, in percent, valid over a half-open range of dates.
type RateInterval struct {
	date.Range
	Rate decimal.Decimal
}

// RateLookup returns the annual reference rate, in percent, applicable on a date.
type RateLookup interface {
	Lookup(on date.Date) (decimal.Decimal, error)
}

// RateSchedule is an ordered set of non-overlapping RateInterval.
type RateSchedule struct {
	intervals []RateInterval
}

// NewRateSchedule returns a schedule sorted by start date.
//
// It fails if an interval is empty or if two intervals overlap.
func NewRateSchedule(intervals ...RateInterval) (*RateSchedule, error) {
	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, func(a, b RateInterval) int { return a.From.Compare(b.From) })

	var errs error
	for i, r := range sorted {
		if r.IsEmpty() {
			errs = errors.Join(errs, fmt.Errorf("empty rate interval %v", r.Range))
		}
		if i > 0 && sorted[i-1].Overlaps(r.Range) {
			errs = errors.Join(errs, fmt.Errorf("rate interval %v overlaps %v", r.Range, sorted[i-1].Range))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return &RateSchedule{intervals: sorted}, nil
}

// Intervals returns a copy of the intervals, sorted by start date.
func (s *RateSchedule) Intervals() []RateInterval { return slices.Clone(s.intervals) }

// Len returns the number of intervals.
func (s *RateSchedule) Len() int { return len(s.intervals) }

// Latest returns the interval with the most recent start date.
func (s *RateSchedule) Latest() (RateInterval, bool) {
	if len(s.intervals) == 0 {
		return RateInterval{}, false
	}
	return s.intervals[len(s.intervals)-1], true
}

// Lookup returns the rate of the interval containing 'on'.
//
// An interval includes its start date and excludes its end date.
func (s *RateSchedule) Lookup(on date.Date) (decimal.Decimal, error) {
	if s == nil {
		return decimal.Decimal{}, fmt.Errorf("%w on %s: empty schedule", ErrNoRateFound, on)
	}
	// last interval starting on or before 'on'.
	i, found := slices.BinarySearchFunc(s.intervals, on, func(r RateInterval, on date.Date) int { return r.From.Compare(on) })
	if !found {
		i--
	}
	if i < 0 || !s.intervals[i].Contains(on) {
		return decimal.Decimal{}, fmt.Errorf("%w on %s", ErrNoRateFound, on)
	}
	return s.intervals[i].Rate, nil
}
