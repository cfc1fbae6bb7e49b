package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/teller"
	"github.com/google/subcommands"
)

type passwdCmd struct {
	account int
}

func (*passwdCmd) Name() string     { return "passwd" }
func (*passwdCmd) Synopsis() string { return "change an account password" }
func (*passwdCmd) Usage() string {
	return `tlr passwd -a <number>

  Verifies the current password, then prompts for the new one twice. The new
  password must differ from the current one and both entries must match.
`
}

func (c *passwdCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number (6 digits)")
}

func (c *passwdCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !validAccountNumber(c.account) {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, account, err := findAccount(c.account)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	in := bufio.NewReader(os.Stdin)
	newValue, err := promptValidPassword(in, os.Stderr,
		fmt.Sprintf("Enter new password (min %d characters): ", teller.MinCredentialLen))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprint(os.Stderr, "Confirm new password: ")
	confirm, err := in.ReadString('\n')
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	confirm = strings.TrimRight(confirm, "\r\n")

	err = teller.ChangeCredential(account, credentialPrompt(in, os.Stderr), newValue, confirm)
	switch {
	case err == nil:
	case errors.Is(err, teller.ErrAuthFailed):
		fmt.Fprintln(os.Stderr, "Too many failed attempts.")
		return subcommands.ExitFailure
	case errors.Is(err, teller.ErrSameCredential):
		fmt.Fprintln(os.Stderr, "New password must differ from the current one.")
		return subcommands.ExitFailure
	case errors.Is(err, teller.ErrCredentialMismatch):
		fmt.Fprintln(os.Stderr, "Password confirmation does not match.")
		return subcommands.ExitFailure
	default:
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Password changed successfully.")
	return subcommands.ExitSuccess
}
