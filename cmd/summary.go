package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/teller/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	account int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "view an account summary" }
func (*summaryCmd) Usage() string {
	return `tlr summary -a <number>

  Shows the holder, balance and transaction count of an account, after a
  password check.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number (6 digits)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !validAccountNumber(c.account) {
		f.Usage()
		return subcommands.ExitUsageError
	}
	_, account, err := findAccount(c.account)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !gate(account) {
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Summary(account))
	return subcommands.ExitSuccess
}
