package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the store files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `tlr fmt

  Reloads both store files, skipping malformed lines and transactions whose
  account no longer exists (each with a warning), and rewrites the files in
  canonical order: accounts by number, transactions by account then by
  insertion order.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load the ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not rewrite the store files: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %d accounts.\n", ledger.Len())
	return subcommands.ExitSuccess
}
