package networth

import (
	"slices"

	"github.com/etnz/networth/date"
)

// Pivot is the date by institution matrix of a ledger.
//
// Each cell is the mean of the amounts recorded for that date and institution,
// it is undefined when the institution has no row on that date.
type Pivot struct {
	Dates        []date.Date
	Institutions []string
	Cells        [][]Value // Cells[i][j] is for Dates[i] and Institutions[j].
}

// Pivot computes the date by institution matrix.
func (l *Ledger) Pivot() *Pivot {
	p := &Pivot{
		Dates:        l.Dates(),
		Institutions: l.Institutions(),
	}
	type cell struct {
		sum   Value
		count int
	}
	acc := make([][]cell, len(p.Dates))
	for i := range acc {
		acc[i] = make([]cell, len(p.Institutions))
	}
	for _, tx := range l.transactions {
		i, _ := slices.BinarySearchFunc(p.Dates, tx.Date, date.Date.Compare)
		j, _ := slices.BinarySearch(p.Institutions, tx.Institution)
		c := &acc[i][j]
		if c.count == 0 {
			c.sum = V(0)
		}
		c.sum = c.sum.Add(V(tx.Amount))
		c.count++
	}

	p.Cells = make([][]Value, len(p.Dates))
	for i := range acc {
		p.Cells[i] = make([]Value, len(p.Institutions))
		for j, c := range acc[i] {
			if c.count > 0 {
				p.Cells[i][j] = c.sum.Div(V(c.count))
			}
		}
	}
	return p
}

// Row returns the distribution across institutions on a given date.
// It returns false if the date is not in the pivot.
func (p *Pivot) Row(on date.Date) ([]Value, bool) {
	i, found := slices.BinarySearchFunc(p.Dates, on, date.Date.Compare)
	if !found {
		return nil, false
	}
	return slices.Clone(p.Cells[i]), true
}
