package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	account int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an account" }
func (*deleteCmd) Usage() string {
	return `tlr delete -a <number>

  Removes the account and its transaction history after a password check.
  The removal is persisted before the command reports success.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number (6 digits)")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !validAccountNumber(c.account) {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, account, err := findAccount(c.account)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !gate(account) {
		return subcommands.ExitFailure
	}

	ledger.Remove(account)
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Account %d deleted.\n", c.account)
	return subcommands.ExitSuccess
}
