package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/teller"
	"github.com/google/subcommands"
)

type depositCmd struct {
	account int
	amount  float64
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit money into an account" }
func (*depositCmd) Usage() string {
	return `tlr deposit -a <number> -q <amount>

  Credits the account after a password check. The new balance is persisted
  before the command reports success.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number (6 digits)")
	f.Float64Var(&c.amount, "q", 0, "Amount to deposit")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !validAccountNumber(c.account) || c.amount <= 0 {
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

	amount := teller.USD(c.amount)
	if err := account.Deposit(amount); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tx, err := teller.NewTransaction(teller.KindDeposit, amount, "Deposit to account")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	account.AddTransaction(tx)

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deposited %s. New balance: %s.\n", amount, account.Balance())
	return subcommands.ExitSuccess
}
