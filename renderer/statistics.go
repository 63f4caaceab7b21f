package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// StatisticsMarkdown renders the daily aggregates in two tables: the
// differences with their moving averages, and the growth over each window.
func StatisticsMarkdown(s *networth.Statistics, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	rows := s.Rows()

	doc.H1("Net Worth")

	diffs := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Amount", "Difference", "Difference %"},
		Rows:      [][]string{},
	}
	growth := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    []string{"Date"},
		Rows:      [][]string{},
	}
	for _, size := range networth.Windows {
		diffs.Alignment = append(diffs.Alignment, md.AlignRight)
		diffs.Header = append(diffs.Header, fmt.Sprintf("Avg. %d", size))
		growth.Alignment = append(growth.Alignment, md.AlignRight, md.AlignRight)
		growth.Header = append(growth.Header, fmt.Sprintf("Growth %d", size), fmt.Sprintf("Growth %d %%", size))
	}

	for _, r := range rows {
		d := []string{r.Date.String(), money(r.Amount, cur), signed(r.MonthlyDifference, cur), r.MonthlyDifferencePct.Percent()}
		g := []string{r.Date.String()}
		for _, w := range r.Windows {
			d = append(d, signed(w.MovingAverageDiff, cur))
			g = append(g, signed(w.TotalGrowth, cur), w.TotalGrowthPct.Percent())
		}
		diffs.Rows = append(diffs.Rows, d)
		growth.Rows = append(growth.Rows, g)
	}

	doc.H2("Differences")
	doc.Table(diffs)
	doc.H2("Growth")
	doc.Table(growth)
	return doc.String()
}

// RatesMarkdown renders a reference rate schedule.
func RatesMarkdown(s *networth.RateSchedule) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Reference Rate")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"From", "Until", "Rate"},
		Rows:      [][]string{},
	}
	for _, r := range s.Intervals() {
		// the range is half-open, show the last day it applies.
		table.Rows = append(table.Rows, []string{r.From.String(), r.To.Add(-1).String(), r.Rate.StringFixed(2) + "%"})
	}
	doc.Table(table)
	return doc.String()
}
