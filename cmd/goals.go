package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// goalFlags are the inputs of a goal projection.
type goalFlags struct {
	start  dateFlag
	fixed  decimalFlag
	gross  decimalFlag
	net    decimalFlag
	rate   valueFlag
	target valueFlag
}

func (g *goalFlags) SetFlags(f *flag.FlagSet) {
	f.Var(&g.start, "start", "Goal start date (YYYY-MM-DD). Defaults to the last ledger date.")
	f.Var(&g.fixed, "fixed", "Monthly fixed costs.")
	f.Var(&g.gross, "gross", "Monthly gross salary.")
	f.Var(&g.net, "net", "Monthly net salary.")
	f.Var(&g.rate, "rate", "Annual reference rate in percent. Defaults to the Selic target on the start date.")
	f.Var(&g.target, "target", "Annual goal. Defaults to the annual potential.")
}

// project computes the projection, the rate schedule is fetched only if no rate is set.
func (g *goalFlags) project(ctx context.Context, stats *networth.Statistics) (*networth.GoalProjection, error) {
	in, err := networth.DefaultGoalInputs(stats, nil)
	if err != nil {
		return nil, err
	}
	if !g.start.IsZero() {
		in.GoalStartDate = g.start.Date
	}
	in.FixedCosts = g.fixed.Decimal
	in.GrossSalary = g.gross.Decimal
	in.NetSalary = g.net.Decimal
	in.ReferenceRate = g.rate.Value
	in.TargetAnnualGoal = g.target.Value

	var rates networth.RateLookup
	if !in.ReferenceRate.IsDefined() {
		schedule, err := FetchRates(ctx)
		if err != nil {
			return nil, err
		}
		rates = schedule
	}
	return networth.Project(stats, in, rates)
}

// explain prints a projection error with a hint when there is one.
func explain(err error) {
	fmt.Fprintln(os.Stderr, "Error computing goals:", err)
	switch {
	case errors.Is(err, networth.ErrUnavailable):
		fmt.Fprintln(os.Stderr, "The Selic rate could not be fetched, use -rate to set it.")
	case errors.Is(err, networth.ErrNoPriorData):
		fmt.Fprintln(os.Stderr, "The ledger has no date on or before the goal start, check -start.")
	}
}

type goalsCmd struct {
	goalFlags
	json bool
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "project the net worth one year ahead" }
func (*goalsCmd) Usage() string {
	return `nw goals [-start <date>] [-net <amount>] [-fixed <amount>] [-gross <amount>] [-rate <percent>] [-target <amount>] [-json]

  Projects the net worth one year after the start date, from the monthly
  savings and the return of the net worth at the reference rate, and compares
  each month's goal with the net worth achieved that month.

Usage Examples:
# Projection at the current Selic target.
$ nw goals -net 5000 -fixed 3000

# Offline, with a 10.5% annual rate and a 30000 goal.
$ nw goals -start 2024-01-31 -net 5000 -fixed 3000 -rate 10.5 -target 30000
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	c.goalFlags.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "Print the projection as JSON.")
}

func (c *goalsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stats, err := DecodeStatistics()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p, err := c.project(ctx, stats)
	if err != nil {
		explain(err)
		return subcommands.ExitFailure
	}

	if c.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.GoalMarkdown(p, Currency()))
	return subcommands.ExitSuccess
}
