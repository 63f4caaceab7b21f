package networth

import (
	"fmt"
	"math"

	"github.com/etnz/networth/date"
	"github.com/shopspring/decimal"
)

// GoalMonths is the number of months of a goal trajectory.
const GoalMonths = 12

// GoalInputs are the user supplied parameters of a goal projection.
type GoalInputs struct {
	GoalStartDate date.Date
	FixedCosts    decimal.Decimal // monthly
	GrossSalary   decimal.Decimal // monthly, informative only
	NetSalary     decimal.Decimal // monthly
	// ReferenceRate overrides the looked up annual rate, in percent, when defined.
	ReferenceRate Value
	// TargetAnnualGoal overrides the annual potential when defined.
	TargetAnnualGoal Value
}

// DefaultGoalInputs returns the inputs a new session starts with: the goal
// starts on the last ledger date, at the reference rate applicable on that day.
// Salaries and costs are left to zero. With nil rates the reference rate is
// left undefined.
func DefaultGoalInputs(s *Statistics, rates RateLookup) (GoalInputs, error) {
	last, ok := s.Last()
	if !ok {
		return GoalInputs{}, ErrNoPriorData
	}
	in := GoalInputs{GoalStartDate: last.Date}
	if rates == nil {
		return in, nil
	}
	rate, err := rates.Lookup(last.Date)
	if err != nil {
		return in, err
	}
	in.ReferenceRate = V(rate)
	return in, nil
}

// GoalMonth is one month of a goal trajectory joined with the achieved net worth.
type GoalMonth struct {
	Month       int       // 1 to 12
	Date        date.Date // goal start date plus Month months
	MonthlyGoal Value
	// Achieved is the closing Amount of that calendar month, undefined if the ledger has none.
	Achieved               Value
	MonthlyAchievementPct  Value // Achieved / MonthlyGoal
	YearAchievementPct     Value // Achieved / ProjectedFinalNetWorth
	ExpectedAchievementPct Value // MonthlyGoal / ProjectedFinalNetWorth
}

// Key returns the "YYYY-MM" key used to join the month with the statistics.
func (m GoalMonth) Key() string { return m.Date.MonthKey() }

// GoalProjection forecasts the net worth one year after the goal start date.
type GoalProjection struct {
	Inputs                 GoalInputs
	StartDate              date.Date // date of the row StartValue was read from.
	StartValue             Value
	AnnualRate             decimal.Decimal // as a ratio, 0.12 for 12%.
	MonthlyRate            decimal.Decimal // equivalent compounded monthly ratio.
	MonthlyPotential       Value
	AnnualPotential        Value
	TargetAnnualGoal       Value
	ProjectedFinalNetWorth Value
	Trajectory             [GoalMonths]GoalMonth
}

// MonthlyRate converts an annual ratio into the equivalent monthly compounding ratio.
func MonthlyRate(annual float64) float64 { return math.Pow(1+annual, 1.0/12) - 1 }

// Project computes the goal projection.
//
// The start value is the Amount of the last statistics row on or before the
// goal start date. The annual rate is in.ReferenceRate when defined, otherwise
// it is looked up in rates.
func Project(s *Statistics, in GoalInputs, rates RateLookup) (*GoalProjection, error) {
	start, ok := s.AsOf(in.GoalStartDate)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPriorData, in.GoalStartDate)
	}

	percent, defined := in.ReferenceRate.Decimal()
	if !defined {
		if rates == nil {
			return nil, fmt.Errorf("%w on %s: no reference rate", ErrNoRateFound, in.GoalStartDate)
		}
		var err error
		if percent, err = rates.Lookup(in.GoalStartDate); err != nil {
			return nil, err
		}
	}
	annualRate := percent.Shift(-2)
	monthlyRate := decimal.NewFromFloat(MonthlyRate(annualRate.InexactFloat64()))

	p := &GoalProjection{
		Inputs:      in,
		StartDate:   start.Date,
		StartValue:  start.Amount,
		AnnualRate:  annualRate,
		MonthlyRate: monthlyRate,
	}

	savings := V(in.NetSalary.Sub(in.FixedCosts))
	p.MonthlyPotential = savings.Add(p.StartValue.Mul(V(monthlyRate)))
	p.AnnualPotential = savings.Mul(V(12)).Add(p.StartValue.Mul(V(annualRate)))

	p.TargetAnnualGoal = in.TargetAnnualGoal
	if !p.TargetAnnualGoal.IsDefined() {
		p.TargetAnnualGoal = p.AnnualPotential
	}
	p.ProjectedFinalNetWorth = p.TargetAnnualGoal.Add(p.StartValue)

	// The monthly step is rounded to cents before being multiplied.
	step := Undefined()
	if target, ok := p.TargetAnnualGoal.Decimal(); ok {
		step = V(target.Div(decimal.NewFromInt(12)).RoundBank(2))
	}

	for i := range p.Trajectory {
		m := GoalMonth{Month: i + 1, Date: in.GoalStartDate.AddMonths(i + 1)}
		m.MonthlyGoal = p.StartValue.Add(step.Mul(V(m.Month)))
		if row, ok := s.MonthClose(m.Date.Year(), m.Date.Month()); ok {
			m.Achieved = row.Amount
		}
		m.MonthlyAchievementPct = m.Achieved.Div(m.MonthlyGoal)
		m.YearAchievementPct = m.Achieved.Div(p.ProjectedFinalNetWorth)
		m.ExpectedAchievementPct = m.MonthlyGoal.Div(p.ProjectedFinalNetWorth)
		p.Trajectory[i] = m
	}
	return p, nil
}
