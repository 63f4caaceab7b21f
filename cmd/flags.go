package cmd

import (
	"fmt"

	"github.com/etnz/networth"
	"github.com/etnz/networth/date"
	"github.com/shopspring/decimal"
)

// decimalFlag is a flag.Value for amounts, zero by default.
type decimalFlag struct{ decimal.Decimal }

func (f *decimalFlag) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	f.Decimal = d
	return nil
}

// valueFlag is a flag.Value for optional amounts, undefined unless set.
type valueFlag struct{ networth.Value }

func (f *valueFlag) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	f.Value = networth.V(d)
	return nil
}

// dateFlag is a flag.Value for an optional date.
type dateFlag struct{ date.Date }

func (f *dateFlag) Set(s string) error {
	d, err := date.Parse(s)
	if err != nil {
		return err
	}
	f.Date = d
	return nil
}

func (f *dateFlag) String() string {
	if f.IsZero() {
		return ""
	}
	return f.Date.String()
}
