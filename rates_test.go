package networth

import (
	"errors"
	"testing"

	"github.com/etnz/networth/date"
	"github.com/shopspring/decimal"
)

func interval(from, to string, rate float64) RateInterval {
	return RateInterval{
		Range: date.Range{From: date.MustParse(from), To: date.MustParse(to)},
		Rate:  decimal.NewFromFloat(rate),
	}
}

func TestRateSchedule_Lookup(t *testing.T) {
	s, err := NewRateSchedule(
		interval("2024-03-21", "2024-05-09", 10.75),
		interval("2024-01-01", "2024-03-21", 11.25),
	)
	if err != nil {
		t.Fatalf("NewRateSchedule() failed: %v", err)
	}

	testCases := []struct {
		on      string
		want    float64
		wantErr bool
	}{
		{on: "2023-12-31", wantErr: true},
		{on: "2024-01-01", want: 11.25}, // start is included
		{on: "2024-03-20", want: 11.25},
		{on: "2024-03-21", want: 10.75}, // end is excluded
		{on: "2024-05-08", want: 10.75},
		{on: "2024-05-09", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := s.Lookup(date.MustParse(tc.on))
		if tc.wantErr {
			if !errors.Is(err, ErrNoRateFound) {
				t.Errorf("Lookup(%s) error = %v want ErrNoRateFound", tc.on, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Lookup(%s) failed: %v", tc.on, err)
			continue
		}
		if !got.Equal(decimal.NewFromFloat(tc.want)) {
			t.Errorf("Lookup(%s) = %v want %v", tc.on, got, tc.want)
		}
	}

	if latest, ok := s.Latest(); !ok || !latest.Rate.Equal(decimal.NewFromFloat(10.75)) {
		t.Errorf("Latest() = %v, %v want 10.75", latest, ok)
	}
}

func TestRateSchedule_Gap(t *testing.T) {
	s, err := NewRateSchedule(
		interval("2024-01-01", "2024-02-01", 1),
		interval("2024-03-01", "2024-04-01", 2),
	)
	if err != nil {
		t.Fatalf("NewRateSchedule() failed: %v", err)
	}
	if _, err := s.Lookup(date.MustParse("2024-02-15")); !errors.Is(err, ErrNoRateFound) {
		t.Errorf("Lookup in a gap: error = %v want ErrNoRateFound", err)
	}
}

func TestNewRateSchedule_Errors(t *testing.T) {
	if _, err := NewRateSchedule(
		interval("2024-01-01", "2024-02-01", 1),
		interval("2024-01-15", "2024-03-01", 2),
	); err == nil {
		t.Error("overlapping intervals: expected an error")
	}
	if _, err := NewRateSchedule(interval("2024-01-01", "2024-01-01", 1)); err == nil {
		t.Error("empty interval: expected an error")
	}
}

func TestRateSchedule_NilLookup(t *testing.T) {
	var s *RateSchedule
	if _, err := s.Lookup(date.New(2024, 1, 1)); !errors.Is(err, ErrNoRateFound) {
		t.Errorf("nil schedule: error = %v want ErrNoRateFound", err)
	}
}
