package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/teller"
	"github.com/etnz/teller/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type uiCmd struct{}

func (*uiCmd) Name() string     { return "ui" }
func (*uiCmd) Synopsis() string { return "interactive banking session" }
func (*uiCmd) Usage() string {
	return `tlr ui

  Runs the interactive menu-driven session: create accounts, log in, and
  operate on the logged-in account. Every successful mutation is persisted
  before the menu is shown again.
`
}

func (*uiCmd) SetFlags(_ *flag.FlagSet) {}

func (c *uiCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	save := func() error { return SaveLedger(ledger) }
	if err := runUI(os.Stdin, os.Stdout, ledger, save); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runUI drives the interactive session over in and out. save is called after
// every successful mutation. It returns nil on a normal exit, including EOF.
func runUI(in io.Reader, out io.Writer, ledger *teller.Ledger, save func() error) error {
	ui := &terminal{r: bufio.NewReader(in), w: out}
	session := teller.NewSession(ledger)

	for {
		var err error
		if session.LoggedIn() {
			err = accountMenu(ui, ledger, session, save)
		} else {
			err = mainMenu(ui, ledger, session, save)
		}
		if err == io.EOF || errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// errExit signals that the user chose to leave the session.
var errExit = errors.New("exit")

// terminal bundles the line-oriented prompt helpers of the interactive
// session.
type terminal struct {
	r *bufio.Reader
	w io.Writer
}

func (t *terminal) printf(format string, args ...any) {
	fmt.Fprintf(t.w, format, args...)
}

// readLine prompts and returns one line without its trailing newline.
func (t *terminal) readLine(prompt string) (string, error) {
	fmt.Fprint(t.w, prompt)
	line, err := t.r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readInt prompts until the user enters a valid integer.
func (t *terminal) readInt(prompt string) (int, error) {
	for {
		line, err := t.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			t.printf("Invalid number, try again.\n")
			continue
		}
		return n, nil
	}
}

// readAmount prompts until the user enters a valid decimal amount.
func (t *terminal) readAmount(prompt string) (teller.Money, error) {
	for {
		line, err := t.readLine(prompt)
		if err != nil {
			return teller.Money{}, err
		}
		d, err := decimal.NewFromString(strings.TrimSpace(line))
		if err != nil {
			t.printf("Invalid amount, try again.\n")
			continue
		}
		return teller.M(d, teller.DefaultCurrency), nil
	}
}

// credentialPrompt adapts the terminal to teller.CredentialPrompt, announcing
// remaining attempts after the first failure.
func (t *terminal) credentialPrompt() teller.CredentialPrompt {
	return credentialPrompt(t.r, t.w)
}

func mainMenu(ui *terminal, ledger *teller.Ledger, session *teller.Session, save func() error) error {
	ui.printf("\n--- Welcome ---\n1. Create account\n2. Login\n3. Exit\n")
	choice, err := ui.readInt("Choose an option: ")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		return uiCreate(ui, ledger, save)
	case 2:
		return uiLogin(ui, session)
	case 3:
		ui.printf("Goodbye.\n")
		return errExit
	default:
		ui.printf("Unknown option.\n")
		return nil
	}
}

func accountMenu(ui *terminal, ledger *teller.Ledger, session *teller.Session, save func() error) error {
	account := session.Active()
	if account == nil {
		session.Logout()
		return nil
	}
	ui.printf("\n--- Account %d ---\n", account.Number())
	ui.printf("1. Summary\n2. Deposit\n3. Withdraw\n4. Transfer\n5. History\n6. Change password\n7. Delete account\n8. Logout\n")
	choice, err := ui.readInt("Choose an option: ")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		ui.printf("%s", renderer.Summary(account))
	case 2:
		return uiDeposit(ui, account, save)
	case 3:
		return uiWithdraw(ui, account, save)
	case 4:
		return uiTransfer(ui, ledger, account, save)
	case 5:
		ui.printf("%s", renderer.History(account))
	case 6:
		return uiPasswd(ui, account, save)
	case 7:
		return uiDelete(ui, session, save)
	case 8:
		session.Logout()
		ui.printf("Logged out.\n")
	default:
		ui.printf("Unknown option.\n")
	}
	return nil
}

func uiCreate(ui *terminal, ledger *teller.Ledger, save func() error) error {
	var name string
	for {
		var err error
		name, err = ui.readLine("Holder name: ")
		if err != nil {
			return err
		}
		if holderNamePattern.MatchString(name) {
			break
		}
		ui.printf("Invalid name. Use letters, spaces, dots, apostrophes and hyphens.\n")
	}

	var number int
	for {
		var err error
		number, err = ui.readInt("Account number (6 digits): ")
		if err != nil {
			return err
		}
		if !validAccountNumber(number) {
			ui.printf("Account number must be exactly 6 digits.\n")
			continue
		}
		if ledger.Account(number) != nil {
			ui.printf("Account number %d is already taken.\n", number)
			continue
		}
		break
	}

	balance, err := ui.readAmount("Initial balance: ")
	if err != nil {
		return err
	}
	password, err := promptValidPassword(ui.r, ui.w,
		fmt.Sprintf("Choose a password (min %d characters): ", teller.MinCredentialLen))
	if err != nil {
		return err
	}

	account, err := teller.NewAccount(name, number, balance, password)
	if err != nil {
		ui.printf("Could not create the account: %v\n", err)
		return nil
	}
	if err := ledger.Add(account); err != nil {
		ui.printf("Could not create the account: %v\n", err)
		return nil
	}
	if err := save(); err != nil {
		return err
	}
	ui.printf("Account %d created.\n", number)
	return nil
}

func uiLogin(ui *terminal, session *teller.Session) error {
	number, err := ui.readInt("Account number: ")
	if err != nil {
		return err
	}
	account, err := session.Login(number, ui.credentialPrompt())
	switch {
	case err == nil:
		ui.printf("Welcome, %s.\n", account.Name())
	case errors.Is(err, teller.ErrAccountNotFound):
		ui.printf("Account %d not found.\n", number)
	case errors.Is(err, teller.ErrAuthFailed):
		ui.printf("Too many failed attempts.\n")
	default:
		return err
	}
	return nil
}

func uiDeposit(ui *terminal, account *teller.Account, save func() error) error {
	amount, err := ui.readAmount("Amount to deposit: ")
	if err != nil {
		return err
	}
	if err := account.Deposit(amount); err != nil {
		ui.printf("Deposit rejected: amount must be positive.\n")
		return nil
	}
	tx, err := teller.NewTransaction(teller.KindDeposit, amount, "Deposit to account")
	if err != nil {
		return err
	}
	account.AddTransaction(tx)
	if err := save(); err != nil {
		return err
	}
	ui.printf("New balance: %s\n", account.Balance())
	return nil
}

func uiWithdraw(ui *terminal, account *teller.Account, save func() error) error {
	amount, err := ui.readAmount("Amount to withdraw: ")
	if err != nil {
		return err
	}
	switch err := account.Withdraw(amount); {
	case err == nil:
	case errors.Is(err, teller.ErrInsufficientFunds):
		ui.printf("Insufficient funds.\n")
		return nil
	case errors.Is(err, teller.ErrAmountNotPositive):
		ui.printf("Withdrawal rejected: amount must be positive.\n")
		return nil
	default:
		return err
	}
	tx, err := teller.NewTransaction(teller.KindWithdrawal, amount.Neg(), "Withdrawal from account")
	if err != nil {
		return err
	}
	account.AddTransaction(tx)
	if err := save(); err != nil {
		return err
	}
	ui.printf("New balance: %s\n", account.Balance())
	return nil
}

func uiTransfer(ui *terminal, ledger *teller.Ledger, account *teller.Account, save func() error) error {
	to, err := ui.readInt("Recipient account number: ")
	if err != nil {
		return err
	}
	amount, err := ui.readAmount("Amount to transfer: ")
	if err != nil {
		return err
	}
	switch err := ledger.TransferFunds(account, to, amount); {
	case err == nil:
	case errors.Is(err, teller.ErrRecipientNotFound):
		ui.printf("Recipient account %d not found.\n", to)
		return nil
	case errors.Is(err, teller.ErrInsufficientFunds):
		ui.printf("Insufficient funds.\n")
		return nil
	case errors.Is(err, teller.ErrAmountNotPositive):
		ui.printf("Transfer rejected: amount must be positive.\n")
		return nil
	case errors.Is(err, teller.ErrTransferRolledBack):
		ui.printf("Transfer failed and was rolled back.\n")
		return nil
	default:
		return err
	}
	if err := save(); err != nil {
		return err
	}
	ui.printf("Transferred %s to account %d. New balance: %s\n", amount, to, account.Balance())
	return nil
}

func uiPasswd(ui *terminal, account *teller.Account, save func() error) error {
	newValue, err := promptValidPassword(ui.r, ui.w,
		fmt.Sprintf("Enter new password (min %d characters): ", teller.MinCredentialLen))
	if err != nil {
		return err
	}
	confirm, err := ui.readLine("Confirm new password: ")
	if err != nil {
		return err
	}
	switch err := teller.ChangeCredential(account, ui.credentialPrompt(), newValue, confirm); {
	case err == nil:
	case errors.Is(err, teller.ErrAuthFailed):
		ui.printf("Too many failed attempts.\n")
		return nil
	case errors.Is(err, teller.ErrSameCredential):
		ui.printf("New password must differ from the current one.\n")
		return nil
	case errors.Is(err, teller.ErrCredentialMismatch):
		ui.printf("Password confirmation does not match.\n")
		return nil
	default:
		return err
	}
	if err := save(); err != nil {
		return err
	}
	ui.printf("Password changed successfully.\n")
	return nil
}

func uiDelete(ui *terminal, session *teller.Session, save func() error) error {
	confirm, err := ui.readLine("Delete this account and its history? (yes/no): ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(confirm) != "yes" {
		ui.printf("Deletion cancelled.\n")
		return nil
	}
	switch err := session.DeleteActive(ui.credentialPrompt()); {
	case err == nil:
	case errors.Is(err, teller.ErrAuthFailed):
		ui.printf("Too many failed attempts.\n")
		return nil
	case errors.Is(err, teller.ErrNotLoggedIn):
		return nil
	default:
		return err
	}
	if err := save(); err != nil {
		return err
	}
	ui.printf("Account deleted.\n")
	return nil
}
