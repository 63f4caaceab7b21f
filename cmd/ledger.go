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

type ledgerCmd struct {
	json bool
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "display the ledger sorted by date" }
func (*ledgerCmd) Usage() string {
	return `nw ledger [-json]

  Validates the ledger file and displays its transactions sorted by date.
  Transactions on the same date keep their file order.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print transactions as JSON lines.")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !c.json {
		printMarkdown(renderer.LedgerMarkdown(ledger, Currency()))
		return subcommands.ExitSuccess
	}

	txs := make([]networth.Transaction, 0, ledger.Len())
	for _, tx := range ledger.Transactions() {
		txs = append(txs, tx)
	}
	if err := networth.EncodeJSONL(stdout, txs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
