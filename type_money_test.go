package networth

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m      Money
		want   string
		signed string
	}{
		{M(V(1234.567), "USD"), "$1,234.57", "+$1,234.57"},
		{M(V(-20), "EUR"), "-20.00 €", "-20.00 €"},
		{M(V(0), "USD"), "$0.00", "-"},
		{M(Undefined(), "USD"), "", ""},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q want %q", got, tc.want)
		}
		if got := tc.m.SignedString(); got != tc.signed {
			t.Errorf("SignedString() = %q want %q", got, tc.signed)
		}
	}
}
