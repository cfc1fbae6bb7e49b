package teller

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
)

// AccountRecord is the flat persisted representation of an account.
type AccountRecord struct {
	Name       string
	Number     int
	Balance    decimal.Decimal
	Credential string
}

// TransactionRecord is the flat persisted representation of one transaction,
// keyed by the owning account number.
type TransactionRecord struct {
	Number      int
	Kind        Kind
	Amount      decimal.Decimal // signed, positive = credit
	Description string
}

// Store is the collaborator responsible for reading and writing records to
// durable storage. Loads return an empty sequence when the backing file is
// absent; saves are full overwrites.
type Store interface {
	LoadAccounts() ([]AccountRecord, error)
	SaveAccounts([]AccountRecord) error
	LoadTransactions() ([]TransactionRecord, error)
	SaveTransactions([]TransactionRecord) error
}

// Load hydrates a ledger from the store. Records that fail validation and
// transactions whose account no longer exists are skipped with a warning;
// one bad record never aborts the whole load.
func Load(s Store) (*Ledger, error) {
	accounts, err := s.LoadAccounts()
	if err != nil {
		return nil, fmt.Errorf("could not load accounts: %w", err)
	}
	ledger := NewLedger()
	for _, r := range accounts {
		a, err := NewAccount(r.Name, r.Number, M(r.Balance, DefaultCurrency), r.Credential)
		if err != nil {
			log.Printf("warning: skipping account record %d: %v", r.Number, err)
			continue
		}
		if err := ledger.Add(a); err != nil {
			log.Printf("warning: skipping account record: %v", err)
		}
	}

	transactions, err := s.LoadTransactions()
	if err != nil {
		return nil, fmt.Errorf("could not load transactions: %w", err)
	}
	for _, r := range transactions {
		a := ledger.Account(r.Number)
		if a == nil {
			log.Printf("warning: transaction found for account %d, but account no longer exists, skipping", r.Number)
			continue
		}
		tx, err := NewTransaction(r.Kind, M(r.Amount, DefaultCurrency), r.Description)
		if err != nil {
			log.Printf("warning: skipping transaction record for account %d: %v", r.Number, err)
			continue
		}
		a.AddTransaction(tx)
	}
	return ledger, nil
}

// Save serializes the ledger into the store's record shape and writes both
// files. Accounts are ordered by number, transactions by account then by
// insertion order, so saves are canonical and diff-friendly.
func (l *Ledger) Save(s Store) error {
	accounts := make([]AccountRecord, 0, l.Len())
	var transactions []TransactionRecord
	for a := range l.Accounts() {
		accounts = append(accounts, AccountRecord{
			Name:       a.Name(),
			Number:     a.Number(),
			Balance:    a.Balance().Decimal(),
			Credential: a.credential,
		})
		for _, tx := range a.Transactions() {
			transactions = append(transactions, TransactionRecord{
				Number:      a.Number(),
				Kind:        tx.Kind(),
				Amount:      tx.Amount().Decimal(),
				Description: tx.Description(),
			})
		}
	}
	if err := s.SaveAccounts(accounts); err != nil {
		return fmt.Errorf("could not save accounts: %w", err)
	}
	if err := s.SaveTransactions(transactions); err != nil {
		return fmt.Errorf("could not save transactions: %w", err)
	}
	return nil
}
