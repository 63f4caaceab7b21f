// Package renderer renders ledger analytics as markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/networth"
	"github.com/etnz/networth/date"
	md "github.com/nao1215/markdown"
)

// money formats an amount, undefined values are rendered as an empty cell.
func money(v networth.Value, cur string) string { return networth.M(v, cur).String() }

// signed formats a difference with its sign.
func signed(v networth.Value, cur string) string { return networth.M(v, cur).SignedString() }

// LedgerMarkdown renders the normalized ledger.
func LedgerMarkdown(l *networth.Ledger, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ledger")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Date", "Amount", "Institution"},
		Rows:      [][]string{},
	}
	for _, tx := range l.Transactions() {
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			money(networth.V(tx.Amount), cur),
			tx.Institution,
		})
	}
	doc.Table(table)
	return doc.String()
}

// PivotMarkdown renders the date by institution matrix.
func PivotMarkdown(p *networth.Pivot, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Institutions")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    []string{"Date"},
		Rows:      [][]string{},
	}
	for _, name := range p.Institutions {
		table.Alignment = append(table.Alignment, md.AlignRight)
		table.Header = append(table.Header, name)
	}
	for i, on := range p.Dates {
		row := []string{on.String()}
		for _, v := range p.Cells[i] {
			row = append(row, money(v, cur))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	return doc.String()
}

// DistributionMarkdown renders the share of each institution on a date of the
// pivot. It returns false if the pivot has no such date.
func DistributionMarkdown(p *networth.Pivot, on date.Date, cur string) (string, bool) {
	cells, ok := p.Row(on)
	if !ok {
		return "", false
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Distribution on %s", on))

	total := networth.V(0)
	for _, v := range cells {
		if v.IsDefined() {
			total = total.Add(v)
		}
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Institution", "Amount", "Share"},
		Rows:      [][]string{},
	}
	for j, name := range p.Institutions {
		v := cells[j]
		if !v.IsDefined() {
			continue
		}
		table.Rows = append(table.Rows, []string{name, money(v, cur), v.Div(total).Percent()})
	}
	doc.Table(table)
	return doc.String(), true
}
