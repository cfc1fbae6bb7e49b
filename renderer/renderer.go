// Package renderer turns teller domain objects into markdown for terminal
// display. Credentials are never part of any rendering.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/teller"
)

// Summary renders one account's details to a markdown string.
func Summary(a *teller.Account) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Account %d\n\n", a.Number())
	fmt.Fprintf(&b, "- Holder: %s\n", a.Name())
	fmt.Fprintf(&b, "- Balance: %s\n", a.Balance())
	fmt.Fprintf(&b, "- Transactions: %d\n", a.TransactionCount())
	return b.String()
}

// Accounts renders the account collection as a markdown table, in ascending
// account number order.
func Accounts(l *teller.Ledger) string {
	if l.Len() == 0 {
		return "No accounts available.\n"
	}
	var b strings.Builder
	b.WriteString("# Accounts\n\n")
	b.WriteString("| Number | Holder | Balance |\n")
	b.WriteString("|-------:|--------|--------:|\n")
	for a := range l.Accounts() {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", a.Number(), cell(a.Name()), a.Balance())
	}
	return b.String()
}

// History renders an account's transaction history as a markdown table.
// Amounts are shown in absolute value; the kind carries the direction.
func History(a *teller.Account) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions for account %d\n\n", a.Number())
	if a.TransactionCount() == 0 {
		b.WriteString("No transactions recorded.\n")
		return b.String()
	}
	b.WriteString("| # | Kind | Amount | Description |\n")
	b.WriteString("|--:|------|-------:|-------------|\n")
	for i, tx := range a.Transactions() {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, tx.Kind(), tx.Amount().Abs(), cell(tx.Description()))
	}
	return b.String()
}

// Transaction renders a transaction to a one-line string.
func Transaction(tx teller.Transaction) string {
	return tx.String()
}

// cell escapes the table separator in free text fields.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
