package networth

import (
	"time"

	"github.com/etnz/networth/date"
)

// Windows are the rolling window sizes computed for every DailyAggregate.
var Windows = [...]int{6, 12, 24}

// WindowStats holds the rolling statistics of a DailyAggregate for one window size.
type WindowStats struct {
	Size              int
	MovingAverageDiff Value // mean of the Size trailing MonthlyDifference.
	TotalGrowth       Value // Amount minus the Amount Size-1 rows earlier.
	TotalGrowthPct    Value // relative change over the same rows.
}

// DailyAggregate is the sum of all ledger rows of a date, with derived lag and rolling columns.
type DailyAggregate struct {
	Date                 date.Date
	Amount               Value
	Lag1                 Value // Amount of the previous row.
	MonthlyDifference    Value
	MonthlyDifferencePct Value
	Windows              [len(Windows)]WindowStats
}

// Window returns the rolling statistics for a window size.
func (a DailyAggregate) Window(size int) (WindowStats, bool) {
	for _, w := range a.Windows {
		if w.Size == size {
			return w, true
		}
	}
	return WindowStats{}, false
}

// Statistics is the date indexed table of DailyAggregate, strictly sorted by date.
type Statistics struct {
	rows date.History[DailyAggregate]
}

// ComputeStatistics aggregates the ledger by date and derives the rolling statistics.
//
// Each date's Amount is the sum of that date's rows, not a running total.
// Quantities that need unavailable history are left undefined.
func ComputeStatistics(l *Ledger) *Statistics {
	var sums date.History[Value]
	for _, tx := range l.transactions {
		sums.Merge(tx.Date, V(tx.Amount), Value.Add)
	}

	rows := make([]DailyAggregate, 0, sums.Len())
	for on, amount := range sums.Values() {
		rows = append(rows, DailyAggregate{Date: on, Amount: amount})
	}

	for i := range rows {
		row := &rows[i]
		if i > 0 {
			row.Lag1 = rows[i-1].Amount
		}
		row.MonthlyDifference = row.Amount.Sub(row.Lag1)
		row.MonthlyDifferencePct = row.Amount.Ratio(row.Lag1)

		for k, size := range Windows {
			w := WindowStats{Size: size}
			// MonthlyDifference is defined from row 1, so a full window of
			// differences ends at row size at the earliest.
			if i >= size {
				diffs := make([]Value, 0, size)
				for _, r := range rows[i-size+1 : i+1] {
					diffs = append(diffs, r.MonthlyDifference)
				}
				w.MovingAverageDiff = mean(diffs)
			}
			if first := i - size + 1; first >= 0 {
				w.TotalGrowth = row.Amount.Sub(rows[first].Amount)
				w.TotalGrowthPct = row.Amount.Ratio(rows[first].Amount)
			}
			row.Windows[k] = w
		}
	}
	s := new(Statistics)
	for _, row := range rows {
		s.rows.Append(row.Date, row)
	}
	return s
}

// Len returns the number of rows.
func (s *Statistics) Len() int { return s.rows.Len() }

// Rows returns a copy of the rows in chronological order.
func (s *Statistics) Rows() []DailyAggregate {
	rows := make([]DailyAggregate, 0, s.rows.Len())
	for _, row := range s.rows.Values() {
		rows = append(rows, row)
	}
	return rows
}

// Last returns the most recent row, false if there is none.
func (s *Statistics) Last() (DailyAggregate, bool) {
	if s.rows.Len() == 0 {
		return DailyAggregate{}, false
	}
	_, row := s.rows.Latest()
	return row, true
}

// AsOf returns the last row whose date is on or before 'on'.
func (s *Statistics) AsOf(on date.Date) (DailyAggregate, bool) { return s.rows.ValueAsOf(on) }

// MonthClose returns the last row within a calendar month.
func (s *Statistics) MonthClose(year int, month time.Month) (DailyAggregate, bool) {
	row, ok := s.AsOf(date.New(year, month+1, 0))
	if !ok || row.Date.Year() != year || row.Date.Month() != month {
		return DailyAggregate{}, false
	}
	return row, true
}
