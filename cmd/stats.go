package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type statsCmd struct {
	json bool
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display the net worth statistics by date" }
func (*statsCmd) Usage() string {
	return `nw stats [-json]

  Aggregates the ledger by date and displays, for each date, the amount, the
  difference with the previous date, and the moving averages and growth over
  the last 6, 12 and 24 dates. Empty cells have no value.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the statistics as JSON lines, empty cells are null.")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stats, err := DecodeStatistics()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := networth.EncodeJSONL(stdout, stats.Rows()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.StatisticsMarkdown(stats, Currency()))
	return subcommands.ExitSuccess
}
