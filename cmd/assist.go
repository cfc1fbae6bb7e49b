package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/teller/agent"
	"github.com/etnz/teller/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an AI assistant about the ledger" }
func (*assistCmd) Usage() string {
	return `tlr assist [<question> ...]

  Starts an interactive chat session with an AI assistant seeded with a
  snapshot of the accounts (never passwords). Arguments, if any, are asked
  first. Requires the GEMINI_API_KEY environment variable.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating the assistant client: %v\n", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, renderer.Accounts(ledger))
	if err := a.Run(ctx, client, f.Args()...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
