package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/teller/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	account int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "view an account's transaction history" }
func (*historyCmd) Usage() string {
	return `tlr history -a <number>

  Lists the account's transactions in chronological order, after a password
  check. Amounts are shown unsigned; the kind carries the direction.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number (6 digits)")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.History(account))
	return subcommands.ExitSuccess
}
