package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/teller"
	"github.com/google/subcommands"
)

type withdrawCmd struct {
	account int
	amount  float64
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw money from an account" }
func (*withdrawCmd) Usage() string {
	return `tlr withdraw -a <number> -q <amount>

  Debits the account after a password check. Withdrawing more than the
  balance is rejected; the balance never goes negative.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number (6 digits)")
	f.Float64Var(&c.amount, "q", 0, "Amount to withdraw")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := account.Withdraw(amount); err != nil {
		if errors.Is(err, teller.ErrInsufficientFunds) {
			fmt.Fprintln(os.Stderr, "Insufficient funds.")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}
	// Stored as a debit: negative amount, kind carries the direction.
	tx, err := teller.NewTransaction(teller.KindWithdrawal, amount.Neg(), "Withdrawal from account")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	account.AddTransaction(tx)

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Withdrew %s. New balance: %s.\n", amount, account.Balance())
	return subcommands.ExitSuccess
}
