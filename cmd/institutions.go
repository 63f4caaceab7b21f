package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type institutionsCmd struct {
	date dateFlag
}

func (*institutionsCmd) Name() string { return "institutions" }
func (*institutionsCmd) Synopsis() string {
	return "display amounts by date and institution"
}
func (*institutionsCmd) Usage() string {
	return `nw institutions [-d <date>]

  Displays the date by institution matrix of the ledger. A cell is the mean of
  the amounts of the institution on that date, empty if there are none.
  With -d, displays the distribution across institutions on that date.
`
}

func (c *institutionsCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.date, "d", "Ledger date of the distribution (YYYY-MM-DD).")
}

func (c *institutionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	pivot := ledger.Pivot()

	if c.date.IsZero() {
		printMarkdown(renderer.PivotMarkdown(pivot, Currency()))
		return subcommands.ExitSuccess
	}

	doc, ok := renderer.DistributionMarkdown(pivot, c.date.Date, Currency())
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: the ledger has no transaction on %s\n", c.date.Date)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
