package networth

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/etnz/networth/date"
)

func TestComputeStatistics_TwoDates(t *testing.T) {
	s := ComputeStatistics(NewLedger(
		tx("2024-02-01", 150, "A"),
		tx("2024-01-01", 100, "A"),
	))
	rows := s.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	assertUndefined(t, "Lag1[0]", rows[0].Lag1)
	assertUndefined(t, "MonthlyDifference[0]", rows[0].MonthlyDifference)
	assertUndefined(t, "MonthlyDifferencePct[0]", rows[0].MonthlyDifferencePct)
	assertValue(t, "Lag1[1]", rows[1].Lag1, 100)
	assertValue(t, "MonthlyDifference[1]", rows[1].MonthlyDifference, 50)
	assertValue(t, "MonthlyDifferencePct[1]", rows[1].MonthlyDifferencePct, 0.5)
}

func TestComputeStatistics_SumsSameDate(t *testing.T) {
	s := ComputeStatistics(NewLedger(
		tx("2024-01-01", 100, "A"),
		tx("2024-01-01", 50, "B"),
		tx("2024-01-01", 50, "B"),
		tx("2023-12-01", 10, "A"),
	))
	rows := s.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Date != date.New(2023, 12, 1) || rows[1].Date != date.New(2024, 1, 1) {
		t.Errorf("rows are not sorted: %v, %v", rows[0].Date, rows[1].Date)
	}
	assertValue(t, "Amount[1]", rows[1].Amount, 200)
}

func TestComputeStatistics_ZeroDenominator(t *testing.T) {
	s := ComputeStatistics(NewLedger(
		tx("2024-01-01", 0, "A"),
		tx("2024-02-01", 10, "A"),
	))
	rows := s.Rows()
	assertValue(t, "MonthlyDifference[1]", rows[1].MonthlyDifference, 10)
	assertUndefined(t, "MonthlyDifferencePct[1]", rows[1].MonthlyDifferencePct)
}

// monthlyLedger returns a ledger with one transaction per month, with amounts.
func monthlyLedger(amounts ...float64) *Ledger {
	var txs []Transaction
	for i, a := range amounts {
		txs = append(txs, NewTransaction(date.New(2020, time.January+time.Month(i), 1), a, "A"))
	}
	return NewLedger(txs...)
}

func TestComputeStatistics_Windows(t *testing.T) {
	// Amount[i] = i*i, so that differences are 1, 3, 5, 7...
	var amounts []float64
	for i := range 30 {
		amounts = append(amounts, float64(i*i))
	}
	rows := ComputeStatistics(monthlyLedger(amounts...)).Rows()

	for _, size := range Windows {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			for i, row := range rows {
				w, ok := row.Window(size)
				if !ok {
					t.Fatalf("row %d has no window %d", i, size)
				}

				if i < size {
					assertUndefined(t, fmt.Sprintf("MovingAverageDiff[%d]", i), w.MovingAverageDiff)
				} else {
					// mean of the size differences 2k-1 for k in i-size+1..i
					var sum int
					for k := i - size + 1; k <= i; k++ {
						sum += 2*k - 1
					}
					want := float64(sum) / float64(size)
					if got, _ := w.MovingAverageDiff.Float64(); got != want {
						t.Errorf("MovingAverageDiff[%d] = %v want %v", i, got, want)
					}
				}

				if i < size-1 {
					assertUndefined(t, fmt.Sprintf("TotalGrowth[%d]", i), w.TotalGrowth)
					assertUndefined(t, fmt.Sprintf("TotalGrowthPct[%d]", i), w.TotalGrowthPct)
					continue
				}
				first := i - size + 1
				assertValue(t, fmt.Sprintf("TotalGrowth[%d]", i), w.TotalGrowth, amounts[i]-amounts[first])
				if first == 0 {
					// Amount[0] is 0.
					assertUndefined(t, fmt.Sprintf("TotalGrowthPct[%d]", i), w.TotalGrowthPct)
				} else {
					got, _ := w.TotalGrowthPct.Float64()
					want := amounts[i]/amounts[first] - 1
					if diff := got - want; diff > 1e-9 || diff < -1e-9 {
						t.Errorf("TotalGrowthPct[%d] = %v want %v", i, got, want)
					}
				}
			}
		})
	}
}

func TestComputeStatistics_Pure(t *testing.T) {
	ledger := monthlyLedger(1, 4, 2, 8, 16, 3, 7, 9)
	a := ComputeStatistics(ledger).Rows()
	b := ComputeStatistics(ledger).Rows()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("ComputeStatistics is not deterministic")
	}
}

func TestStatistics_AsOf(t *testing.T) {
	s := ComputeStatistics(NewLedger(
		tx("2024-01-10", 100, "A"),
		tx("2024-01-20", 110, "A"),
		tx("2024-03-05", 130, "A"),
	))

	testCases := []struct {
		on     string
		want   string
		wantOk bool
	}{
		{"2024-01-09", "", false},
		{"2024-01-10", "2024-01-10", true},
		{"2024-02-15", "2024-01-20", true},
		{"2025-01-01", "2024-03-05", true},
	}
	for _, tc := range testCases {
		row, ok := s.AsOf(date.MustParse(tc.on))
		if ok != tc.wantOk || (ok && row.Date.String() != tc.want) {
			t.Errorf("AsOf(%s) = %v, %v want %s, %v", tc.on, row.Date, ok, tc.want, tc.wantOk)
		}
	}

	if row, ok := s.MonthClose(2024, time.January); !ok || row.Date != date.New(2024, 1, 20) {
		t.Errorf("MonthClose(2024, January) = %v, %v want 2024-01-20, true", row.Date, ok)
	}
	if _, ok := s.MonthClose(2024, time.February); ok {
		t.Errorf("MonthClose(2024, February) must not find a row")
	}
}
