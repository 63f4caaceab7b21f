package networth

import (
	"github.com/Rhymond/go-money"
)

// Money is a Value expressed in a currency, for display.
type Money struct {
	value Value
	cur   string
}

// M returns a Money in the given ISO currency code.
func M(value Value, currency string) Money { return Money{value: value, cur: currency} }

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

// Value returns the amount.
func (m Money) Value() Value { return m.value }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted in its currency, or "" if undefined.
func (m Money) String() string {
	d, ok := m.value.Decimal()
	if !ok {
		return ""
	}
	cur := m.currency()
	return cur.Formatter().Format(d.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction)).IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	d, ok := m.value.Decimal()
	switch {
	case !ok:
		return ""
	case d.IsZero():
		return "-"
	case d.IsPositive():
		return "+" + m.String()
	}
	return m.String()
}
