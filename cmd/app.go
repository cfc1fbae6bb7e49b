// Package cmd implements the CLI application to manage the bank ledger.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/teller"
	"github.com/etnz/teller/flatfile"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")
	c.Register(&summaryCmd{}, "accounts")
	c.Register(&passwdCmd{}, "accounts")
	c.Register(&deleteCmd{}, "accounts")

	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")
	c.Register(&historyCmd{}, "transactions")

	c.Register(&uiCmd{}, "session")

	c.Register(&fmtCmd{}, "store")
	c.Register(&importCmd{}, "store")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var accountsFile = flag.String("accounts-file", "accounts.txt", "Path to the accounts file")
var transactionsFile = flag.String("transactions-file", "transactions.txt", "Path to the transactions file")

func appStore() *flatfile.Store {
	return flatfile.New(*accountsFile, *transactionsFile)
}

// LoadLedger hydrates the ledger from the app store files. Absent files yield
// an empty ledger.
func LoadLedger() (*teller.Ledger, error) {
	return teller.Load(appStore())
}

// SaveLedger persists the whole ledger. Commands report success only after
// this call returns nil.
func SaveLedger(l *teller.Ledger) error {
	return l.Save(appStore())
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// holderNamePattern allows letters, spaces, dots, apostrophes and hyphens.
var holderNamePattern = regexp.MustCompile(`^[a-zA-Z\s.'-]+$`)

// validAccountNumber reports whether n is exactly 6 digits. This format rule
// lives in the UI layer; the core only enforces uniqueness.
func validAccountNumber(n int) bool {
	return n >= 100000 && n <= 999999
}

// credentialPrompt builds a CredentialPrompt that reads a line from r,
// announcing remaining attempts after the first failure.
func credentialPrompt(r *bufio.Reader, w io.Writer) teller.CredentialPrompt {
	attempt := 0
	return func() (string, error) {
		if attempt > 0 {
			fmt.Fprintf(w, "Wrong password. Attempts left: %d\n", teller.MaxCredentialAttempts-attempt)
		}
		attempt++
		fmt.Fprint(w, "Enter password: ")
		line, err := r.ReadString('\n')
		if err != nil {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}

// gate verifies the account credential on the terminal. It returns false,
// after printing a message, when the retry bound is exhausted.
func gate(a *teller.Account) bool {
	if teller.VerifyCredential(a, credentialPrompt(bufio.NewReader(os.Stdin), os.Stderr)) {
		return true
	}
	fmt.Fprintln(os.Stderr, "Too many failed attempts.")
	return false
}

// findAccount loads the ledger and resolves the -a flag common to the gated
// commands.
func findAccount(number int) (*teller.Ledger, *teller.Account, error) {
	ledger, err := LoadLedger()
	if err != nil {
		return nil, nil, err
	}
	a := ledger.Account(number)
	if a == nil {
		return nil, nil, fmt.Errorf("account %d: %w", number, teller.ErrAccountNotFound)
	}
	return ledger, a, nil
}

// promptValidPassword reads a password from r until it satisfies the format
// rules (non-empty, at least teller.MinCredentialLen characters).
func promptValidPassword(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	for {
		fmt.Fprint(w, prompt)
		line, err := r.ReadString('\n')
		if err != nil {
			return "", err
		}
		password := strings.TrimRight(line, "\r\n")
		switch {
		case strings.TrimSpace(password) == "":
			fmt.Fprintln(w, "Error: Password cannot be empty.")
		case len(password) < teller.MinCredentialLen:
			fmt.Fprintf(w, "Error: Password must be at least %d characters long.\n", teller.MinCredentialLen)
		default:
			return password, nil
		}
	}
}
