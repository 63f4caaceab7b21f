package networth

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Value is a decimal that may be undefined.
//
// The zero Value is undefined. Undefined means "no value yet" (missing
// history, empty join, zero denominator) and is never the same as zero:
// every operation involving an undefined operand is undefined too.
type Value struct {
	d     decimal.Decimal
	valid bool
}

// Undefined returns an undefined Value.
func Undefined() Value { return Value{} }

// V returns a defined Value.
func V[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Value {
	return Value{d: newDecimal(value), valid: true}
}

// IsDefined reports whether v holds a value.
func (v Value) IsDefined() bool { return v.valid }

// Decimal returns the underlying decimal and whether it is defined.
func (v Value) Decimal() (decimal.Decimal, bool) { return v.d, v.valid }

// Float64 returns v as a float and whether it is defined.
func (v Value) Float64() (float64, bool) { return v.d.InexactFloat64(), v.valid }

func (v Value) Add(w Value) Value {
	if !v.valid || !w.valid {
		return Value{}
	}
	return Value{d: v.d.Add(w.d), valid: true}
}

func (v Value) Sub(w Value) Value {
	if !v.valid || !w.valid {
		return Value{}
	}
	return Value{d: v.d.Sub(w.d), valid: true}
}

func (v Value) Mul(w Value) Value {
	if !v.valid || !w.valid {
		return Value{}
	}
	return Value{d: v.d.Mul(w.d), valid: true}
}

// Div returns v/w, undefined if w is zero.
func (v Value) Div(w Value) Value {
	if !v.valid || !w.valid || w.d.IsZero() {
		return Value{}
	}
	return Value{d: v.d.Div(w.d), valid: true}
}

// Ratio returns v/w - 1, the relative change from w to v.
func (v Value) Ratio(w Value) Value { return v.Div(w).Sub(V(1)) }

// Equal reports whether both values are undefined, or both defined and equal.
func (v Value) Equal(w Value) bool {
	if !v.valid || !w.valid {
		return v.valid == w.valid
	}
	return v.d.Equal(w.d)
}

// String returns the decimal representation, or "" when undefined.
func (v Value) String() string {
	if !v.valid {
		return ""
	}
	return v.d.String()
}

// StringFixed returns v rounded to places decimals, or "" when undefined.
func (v Value) StringFixed(places int32) string {
	if !v.valid {
		return ""
	}
	return v.d.StringFixed(places)
}

// Percent formats a ratio as a percentage, or "" when undefined.
func (v Value) Percent() string {
	if !v.valid {
		return ""
	}
	return v.d.Shift(2).StringFixed(2) + "%"
}

// MarshalJSON writes undefined values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return []byte("null"), nil
	}
	return v.d.MarshalJSON()
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*v = Value{d: d, valid: true}
	return nil
}

// mean returns the arithmetic mean of values, undefined if any is undefined or if there is none.
func mean(values []Value) Value {
	if len(values) == 0 {
		return Value{}
	}
	sum := V(0)
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.Div(V(len(values)))
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}
