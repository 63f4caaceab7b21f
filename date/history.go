package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, each associated with a specific date.
// It ensures that dates are unique and the series is always sorted.
type History[T any] struct {
	days   []Date
	values []T
}

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero value.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T) // return zero value of T
	}
	return h.days[last], h.values[last]
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// search returns the position of day, and whether it is present.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}

// Append adds a point to the history.
//
// Existing value at that date are overwritten.
func (h *History[T]) Append(on Date, q T) *History[T] {
	return h.Merge(on, q, func(_, q T) T { return q })
}

// Merge adds a point to the history.
//
// If a value already exists at that date, it is replaced by merge(existing, q).
func (h *History[T]) Merge(on Date, q T, merge func(existing, q T) T) *History[T] {
	i, found := h.search(on)
	if found {
		h.values[i] = merge(h.values[i], q)
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, q)
	return h
}

// Values returns an iterator over all date/value pairs in the history, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// IndexAsOf returns the index of 'day' or of the most recent day before it.
// It returns -1 if the history has no day on or before 'day'.
func (h *History[T]) IndexAsOf(day Date) int {
	i, found := h.search(day)
	if found {
		return i
	}
	// Not found. `i` is the index where `day` would be inserted.
	// The value we want is at `i-1`, which is the last entry before the target date.
	return i - 1
}

// ValueAsOf returns the value on a given day, or the most recent value before it.
// It returns the value and true if found, otherwise it returns the zero value and false.
func (h *History[T]) ValueAsOf(day Date) (T, bool) {
	i := h.IndexAsOf(day)
	if i < 0 {
		var zero T
		return zero, false // No date on or before the given day.
	}
	return h.values[i], true
}
