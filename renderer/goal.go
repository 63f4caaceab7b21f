package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// GoalMarkdown renders a goal projection and its monthly achievement table.
func GoalMarkdown(p *networth.GoalProjection, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Goal from %s", p.Inputs.GoalStartDate))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Projected Net Worth"), md.Bold(money(p.ProjectedFinalNetWorth, cur))},
		Rows: [][]string{
			{fmt.Sprintf("Start Value (%s)", p.StartDate), money(p.StartValue, cur)},
			{"Annual Rate", networth.V(p.AnnualRate).Percent()},
			{"Monthly Rate", networth.V(p.MonthlyRate).Percent()},
			{"Monthly Potential", money(p.MonthlyPotential, cur)},
			{"Annual Potential", money(p.AnnualPotential, cur)},
			{"Annual Goal", money(p.TargetAnnualGoal, cur)},
		},
	})

	doc.H2("Monthly Goals")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Goal", "Achieved", "Month %", "Year %", "Expected %"},
		Rows:   [][]string{},
	}
	for _, m := range p.Trajectory {
		table.Rows = append(table.Rows, []string{
			m.Key(),
			money(m.MonthlyGoal, cur),
			money(m.Achieved, cur),
			m.MonthlyAchievementPct.Percent(),
			m.YearAchievementPct.Percent(),
			m.ExpectedAchievementPct.Percent(),
		})
	}
	doc.Table(table)
	return doc.String()
}
