package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/teller"
	"github.com/google/subcommands"
)

type createCmd struct {
	name    string
	account int
	balance float64
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new account" }
func (*createCmd) Usage() string {
	return `tlr create -n <name> -a <number> [-b <balance>]

  Creates an account with a 6-digit number and an initial balance.
  The password is prompted on the terminal and never echoed in listings.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Account holder's name")
	f.IntVar(&c.account, "a", 0, "Account number (6 digits)")
	f.Float64Var(&c.balance, "b", 0, "Initial balance")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || !holderNamePattern.MatchString(c.name) {
		fmt.Fprintln(os.Stderr, "Error: name must use only letters, spaces, apostrophes, or hyphens.")
		return subcommands.ExitUsageError
	}
	if !validAccountNumber(c.account) {
		fmt.Fprintln(os.Stderr, "Error: account number must be exactly 6 digits.")
		return subcommands.ExitUsageError
	}
	if c.balance < 0 {
		fmt.Fprintln(os.Stderr, "Error: initial balance cannot be negative.")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if ledger.Account(c.account) != nil {
		fmt.Fprintf(os.Stderr, "Account number %d already exists. Please use a different number.\n", c.account)
		return subcommands.ExitFailure
	}

	password, err := promptValidPassword(bufio.NewReader(os.Stdin), os.Stderr,
		fmt.Sprintf("Enter password (min %d characters): ", teller.MinCredentialLen))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	account, err := teller.NewAccount(c.name, c.account, teller.USD(c.balance), password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating account: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.Add(account); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Account %d created successfully and saved to file.\n", c.account)
	return subcommands.ExitSuccess
}
