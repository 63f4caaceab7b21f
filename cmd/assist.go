package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/networth/advisor"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	goalFlags
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "discuss the goal projection with an AI assistant"
}
func (*assistCmd) Usage() string {
	return `nw assist [goal flags] [question...]

  Starts an interactive session with a Gemini model that knows the statistics
  and the goal projection. Arguments are asked as the first question.
  It requires the GEMINI_API_KEY environment variable.
`
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	report := renderer.StatisticsMarkdown(stats, Currency()) + "\n" + renderer.GoalMarkdown(p, Currency())

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	planner := advisor.NewPlanner(report)
	if err := planner.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting the chat:", err)
		return subcommands.ExitFailure
	}

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	if err := advisor.Run(ctx, stdout, os.Stdin, planner, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
