package teller

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Ledger owns the collection of accounts, keyed by account number.
//
// It is constructed once per process, hydrated from a Store at startup, and
// holds no locking discipline: a single logical actor drives the process at a
// time.
type Ledger struct {
	accounts map[int]*Account
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[int]*Account)}
}

// Account returns the account with this number, or nil if unknown.
func (l *Ledger) Account(number int) *Account {
	return l.accounts[number]
}

// Add registers an account. It rejects a number already present.
func (l *Ledger) Add(a *Account) error {
	if _, ok := l.accounts[a.Number()]; ok {
		return fmt.Errorf("account %d: %w", a.Number(), ErrDuplicateNumber)
	}
	l.accounts[a.Number()] = a
	return nil
}

// Remove deletes the account from the in-memory set. The caller is
// responsible for persisting afterwards; removal has no other side effect.
func (l *Ledger) Remove(a *Account) {
	delete(l.accounts, a.Number())
}

// Len returns the number of accounts.
func (l *Ledger) Len() int { return len(l.accounts) }

// Accounts iterates over accounts in ascending account number order.
func (l *Ledger) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		numbers := slices.Collect(maps.Keys(l.accounts))
		slices.Sort(numbers)
		for _, n := range numbers {
			if !yield(l.accounts[n]) {
				return
			}
		}
	}
}

// TransferFunds moves amount from one account to the account numbered
// toNumber, recording a debit transaction on the sender and a credit
// transaction on the recipient, each naming the counterparty.
//
// The two legs run as withdraw then deposit. If the deposit leg fails, the
// withdrawn funds are restored to the sender and ErrTransferRolledBack is
// reported: a transfer is never observably partial across the two accounts.
func (l *Ledger) TransferFunds(from *Account, toNumber int, amount Money) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	to := l.Account(toNumber)
	if to == nil {
		return fmt.Errorf("account %d: %w", toNumber, ErrRecipientNotFound)
	}
	if from.Balance().LessThan(amount) {
		return ErrInsufficientFunds
	}

	// The balance was checked above, but the return value is still honored
	// rather than assumed.
	if err := from.Withdraw(amount); err != nil {
		return fmt.Errorf("withdrawal leg failed: %w", err)
	}
	if err := to.Deposit(amount); err != nil {
		if rbErr := from.Deposit(amount); rbErr != nil {
			// Funds left the sender and could not be restored. This cannot
			// happen with the current deposit rules (the rolled back amount is
			// positive), so surface it loudly rather than hide it.
			return fmt.Errorf("deposit leg failed (%v), rollback also failed: %w", err, rbErr)
		}
		return fmt.Errorf("deposit leg failed (%v): %w", err, ErrTransferRolledBack)
	}

	debit, err := NewTransaction(KindTransfer, amount.Neg(), fmt.Sprintf("Transfer to account %d", toNumber))
	if err != nil {
		return err
	}
	credit, err := NewTransaction(KindTransfer, amount, fmt.Sprintf("Transfer from account %d", from.Number()))
	if err != nil {
		return err
	}
	from.AddTransaction(debit)
	to.AddTransaction(credit)
	return nil
}
