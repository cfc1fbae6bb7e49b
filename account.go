package teller

import (
	"iter"
	"strings"
)

// MinCredentialLen is the minimum length of an account credential.
const MinCredentialLen = 6

// Account owns a balance, a credential and the ordered list of its
// transactions.
//
// The account number is immutable after creation and is expected to be a
// 6-digit number unique within a Ledger. The format check lives in the UI
// layer (a known asymmetry inherited from the original design); the core only
// enforces uniqueness, in Ledger.Add.
type Account struct {
	name       string
	number     int
	balance    Money
	credential string
	txs        []Transaction
}

// NewAccount creates an account after validating its fields: the holder name
// must not be blank, the opening balance must not be negative, and the
// credential must be at least MinCredentialLen characters.
func NewAccount(name string, number int, balance Money, credential string) (*Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if balance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	if err := checkCredentialFormat(credential); err != nil {
		return nil, err
	}
	return &Account{name: name, number: number, balance: balance, credential: credential}, nil
}

func checkCredentialFormat(credential string) error {
	if strings.TrimSpace(credential) == "" {
		return ErrEmptyCredential
	}
	if len(credential) < MinCredentialLen {
		return ErrCredentialTooShort
	}
	return nil
}

// Name returns the holder's display name.
func (a *Account) Name() string { return a.name }

// Number returns the account number.
func (a *Account) Number() int { return a.number }

// Balance returns the current balance. It is never negative.
func (a *Account) Balance() Money { return a.balance }

// Deposit credits the account. It rejects a zero or negative amount with no
// state change. Recording the matching Transaction is the caller's step, so
// that transfers can control the wording of each side.
func (a *Account) Deposit(amount Money) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw debits the account. It rejects a zero or negative amount, and an
// amount greater than the balance, with no state change. As with Deposit, the
// caller records the matching Transaction.
func (a *Account) Withdraw(amount Money) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if a.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// CheckCredential reports whether input exactly equals the stored credential.
// The credential itself is never exposed or logged.
func (a *Account) CheckCredential(input string) bool {
	return a.credential == input
}

// SetCredential replaces the credential after format validation. The "must
// differ from the old one" rule is a session-level concern (see
// ChangeCredential): the account has no notion of "old" beyond its current
// field.
func (a *Account) SetCredential(credential string) error {
	if err := checkCredentialFormat(credential); err != nil {
		return err
	}
	a.credential = credential
	return nil
}

// AddTransaction appends a transaction to the account history. The history is
// append-only; insertion order is chronological order.
func (a *Account) AddTransaction(tx Transaction) {
	a.txs = append(a.txs, tx)
}

// Transactions returns an iterator that yields each transaction in insertion order.
func (a *Account) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range a.txs {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// TransactionCount returns the number of recorded transactions.
func (a *Account) TransactionCount() int { return len(a.txs) }
