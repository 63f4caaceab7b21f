package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type ratesCmd struct {
	date dateFlag
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display the Selic target rate schedule" }
func (*ratesCmd) Usage() string {
	return `nw rates [-d <date>]

  Displays the Selic target rate decisions of the Banco Central do Brasil.
  With -d, displays the rate applicable on that date.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.date, "d", "Date of the rate (YYYY-MM-DD).")
}

func (c *ratesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	schedule, err := FetchRates(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error fetching rates:", err)
		return subcommands.ExitFailure
	}

	if c.date.IsZero() {
		printMarkdown(renderer.RatesMarkdown(schedule))
		return subcommands.ExitSuccess
	}

	rate, err := schedule.Lookup(c.date.Date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "%s %s%%\n", c.date.Date, rate.StringFixed(2))
	return subcommands.ExitSuccess
}
