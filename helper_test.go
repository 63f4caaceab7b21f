package networth

import (
	"testing"

	"github.com/etnz/networth/date"
	"github.com/shopspring/decimal"
)

// tx is a helper for tests to create a transaction from const.
func tx(on string, amount float64, institution string) Transaction {
	return NewTransaction(date.MustParse(on), amount, institution)
}

// assertValue fails if got is not the defined value want.
func assertValue(t *testing.T, name string, got Value, want float64) {
	t.Helper()
	if !got.Equal(V(want)) {
		t.Errorf("%s = %q want %v", name, got, want)
	}
}

// assertUndefined fails if got is defined.
func assertUndefined(t *testing.T, name string, got Value) {
	t.Helper()
	if got.IsDefined() {
		t.Errorf("%s = %q want undefined", name, got)
	}
}

// fixedRate is a RateLookup returning the same rate, in percent, for every date.
type fixedRate float64

func (r fixedRate) Lookup(date.Date) (decimal.Decimal, error) { return newDecimal(float64(r)), nil }
