// Command nw analyses the net worth history of a CSV ledger and projects a one year goal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/networth/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Answers shell completion requests and exits, does nothing otherwise.
	completion().Complete("nw")

	commander := newCommander(flag.CommandLine, path.Base(os.Args[0]))
	flag.Parse()
	cmd.SetupLogs()

	// Unknown subcommands are delegated to nw-<subcommand> binaries.
	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func newCommander(f *flag.FlagSet, name string) *subcommands.Commander {
	commander := subcommands.NewCommander(f, name)
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)
	return commander
}

// registered reports whether the commander has a subcommand with that name.
func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		found = found || c.Name() == name
	})
	return found
}
