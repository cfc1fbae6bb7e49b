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

type transferCmd struct {
	account   int
	recipient int
	amount    float64
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer funds to another account" }
func (*transferCmd) Usage() string {
	return `tlr transfer -a <number> -to <number> -q <amount>

  Moves money between two accounts after a password check on the sender.
  The transfer is all-or-nothing: if the deposit side fails, the withdrawn
  funds are restored to the sender.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Sender account number (6 digits)")
	f.IntVar(&c.recipient, "to", 0, "Recipient account number (6 digits)")
	f.Float64Var(&c.amount, "q", 0, "Amount to transfer")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !validAccountNumber(c.account) || !validAccountNumber(c.recipient) || c.amount <= 0 {
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
	if err := ledger.TransferFunds(account, c.recipient, amount); err != nil {
		switch {
		case errors.Is(err, teller.ErrRecipientNotFound):
			fmt.Fprintln(os.Stderr, "Recipient account not found.")
		case errors.Is(err, teller.ErrInsufficientFunds):
			fmt.Fprintln(os.Stderr, "Insufficient funds for transfer.")
		case errors.Is(err, teller.ErrTransferRolledBack):
			fmt.Fprintln(os.Stderr, "Transfer failed and was rolled back; no funds were moved.")
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transferred %s from account %d to account %d.\n", amount, c.account, c.recipient)
	return subcommands.ExitSuccess
}
