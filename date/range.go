package date

import "fmt"

// Range represents the half-open range of dates [From, To).
type Range struct{ From, To Date }

// Contains returns true if date is in the range: From is included, To is excluded.
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && date.Before(r.To) }

// Overlaps reports whether r and x share at least one day.
func (r Range) Overlaps(x Range) bool { return r.From.Before(x.To) && x.From.Before(r.To) }

// IsEmpty reports whether the range contains no day at all.
func (r Range) IsEmpty() bool { return !r.From.Before(r.To) }

func (r Range) String() string { return fmt.Sprintf("[%s, %s)", r.From, r.To) }
