package teller

import (
	"fmt"
	"strings"
)

// Kind is a typed string identifying a ledger event.
type Kind string

// Kinds of ledger events.
const (
	KindDeposit    Kind = "Deposit"
	KindWithdrawal Kind = "Withdrawal"
	KindTransfer   Kind = "Transfer"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDeposit, KindWithdrawal, KindTransfer:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction is an immutable record of one ledger event.
//
// The amount is signed: positive is a credit to the owning account, negative
// is a debit. Display formatting uses the absolute value; the kind carries the
// direction for the reader.
type Transaction struct {
	kind        Kind
	amount      Money
	description string
}

// NewTransaction creates a transaction. The description must not be empty and
// the kind must be one of the declared kinds.
func NewTransaction(kind Kind, amount Money, description string) (Transaction, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return Transaction{}, err
	}
	if strings.TrimSpace(description) == "" {
		return Transaction{}, ErrEmptyDescription
	}
	return Transaction{kind: kind, amount: amount, description: description}, nil
}

// Kind returns the kind of ledger event.
func (t Transaction) Kind() Kind { return t.kind }

// Amount returns the signed amount: positive credits the account, negative debits it.
func (t Transaction) Amount() Money { return t.amount }

// Description returns the free-text description of the event.
func (t Transaction) Description() string { return t.description }

func (t Transaction) Equal(o Transaction) bool {
	return t.kind == o.kind && t.amount.Equal(o.amount) && t.description == o.description
}

// String formats the transaction for display, e.g.
// "Withdrawal: $50.00 - Withdrawal from account". The amount is shown in
// absolute value to avoid a confusing double negative.
func (t Transaction) String() string {
	return fmt.Sprintf("%s: %s - %s", t.kind, t.amount.Abs(), t.description)
}
