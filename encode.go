package networth

import (
	"encoding/json"
	"fmt"
	"io"
)

// Undefined values are always written as null, fields are written in table order.

func (tx Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", tx.Date)
	w.Append("amount", tx.Amount)
	w.Append("institution", tx.Institution)
	return w.MarshalJSON()
}

func (a DailyAggregate) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", a.Date)
	w.Append("amount", a.Amount)
	w.Append("lag1", a.Lag1)
	w.Append("monthlyDifference", a.MonthlyDifference)
	w.Append("monthlyDifferencePct", a.MonthlyDifferencePct)
	for _, ws := range a.Windows {
		w.Append(fmt.Sprintf("movingAverageDiff%d", ws.Size), ws.MovingAverageDiff)
	}
	for _, ws := range a.Windows {
		w.Append(fmt.Sprintf("totalGrowth%d", ws.Size), ws.TotalGrowth)
	}
	for _, ws := range a.Windows {
		w.Append(fmt.Sprintf("totalGrowthPct%d", ws.Size), ws.TotalGrowthPct)
	}
	return w.MarshalJSON()
}

func (m GoalMonth) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("month", m.Month)
	w.Append("date", m.Date)
	w.Append("key", m.Key())
	w.Append("monthlyGoal", m.MonthlyGoal)
	w.Append("achieved", m.Achieved)
	w.Append("monthlyAchievementPct", m.MonthlyAchievementPct)
	w.Append("yearAchievementPct", m.YearAchievementPct)
	w.Append("expectedAchievementPct", m.ExpectedAchievementPct)
	return w.MarshalJSON()
}

func (p *GoalProjection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("goalStartDate", p.Inputs.GoalStartDate)
	w.Append("startDate", p.StartDate)
	w.Append("startValue", p.StartValue)
	w.Append("fixedCosts", p.Inputs.FixedCosts)
	w.Append("grossSalary", p.Inputs.GrossSalary)
	w.Append("netSalary", p.Inputs.NetSalary)
	w.Append("annualRate", p.AnnualRate)
	w.Append("monthlyRate", p.MonthlyRate)
	w.Append("monthlyPotential", p.MonthlyPotential)
	w.Append("annualPotential", p.AnnualPotential)
	w.Append("targetAnnualGoal", p.TargetAnnualGoal)
	w.Append("projectedFinalNetWorth", p.ProjectedFinalNetWorth)
	w.Append("trajectory", p.Trajectory)
	return w.MarshalJSON()
}

// EncodeJSONL writes each item as a single line of JSON.
func EncodeJSONL[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for i, item := range items {
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("failed to encode item %d: %w", i, err)
		}
	}
	return nil
}
