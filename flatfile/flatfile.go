// Package flatfile persists ledger records as line-oriented text files.
//
// Accounts are one line each, `name,number,balance,credential`, with no
// escaping of commas within fields (a known fragility of the format).
// Transactions are one line each, `number,kind,amount,description`; the line
// is split into at most 4 fields so the description may itself contain
// commas. Saves rewrite the whole file; they are not crash-atomic.
package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/teller"
	"github.com/shopspring/decimal"
)

// Store reads and writes teller records to a pair of flat text files.
type Store struct {
	AccountsPath     string
	TransactionsPath string
}

// New creates a store over the two file paths.
func New(accountsPath, transactionsPath string) *Store {
	return &Store{AccountsPath: accountsPath, TransactionsPath: transactionsPath}
}

// LoadAccounts reads all account records. An absent file yields an empty
// sequence. Malformed lines (wrong field count, non-numeric number or
// balance) are skipped with a warning, never aborting the load.
func (s *Store) LoadAccounts() ([]teller.AccountRecord, error) {
	f, err := os.Open(s.AccountsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeAccounts(f)
}

// DecodeAccounts reads account records from r, one per line.
func DecodeAccounts(r io.Reader) ([]teller.AccountRecord, error) {
	var records []teller.AccountRecord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseAccountLine(line)
		if err != nil {
			log.Printf("warning: skipping account line %q: %v", line, err)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading accounts: %w", err)
	}
	return records, nil
}

func parseAccountLine(line string) (teller.AccountRecord, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return teller.AccountRecord{}, fmt.Errorf("expected 4 fields, got %d", len(parts))
	}
	number, err := strconv.Atoi(parts[1])
	if err != nil {
		return teller.AccountRecord{}, fmt.Errorf("invalid account number %q: %w", parts[1], err)
	}
	balance, err := decimal.NewFromString(parts[2])
	if err != nil {
		return teller.AccountRecord{}, fmt.Errorf("invalid balance %q: %w", parts[2], err)
	}
	return teller.AccountRecord{
		Name:       parts[0],
		Number:     number,
		Balance:    balance,
		Credential: parts[3],
	}, nil
}

// SaveAccounts overwrites the accounts file with one record per line.
func (s *Store) SaveAccounts(records []teller.AccountRecord) error {
	f, err := os.Create(s.AccountsPath)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, r := range records {
		fmt.Fprintf(w, "%s,%d,%s,%s\n", r.Name, r.Number, r.Balance.StringFixed(2), r.Credential)
	}
	return w.Flush()
}

// LoadTransactions reads all transaction records. An absent file yields an
// empty sequence; malformed lines are skipped with a warning.
func (s *Store) LoadTransactions() ([]teller.TransactionRecord, error) {
	f, err := os.Open(s.TransactionsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeTransactions(f)
}

// DecodeTransactions reads transaction records from r, one per line.
func DecodeTransactions(r io.Reader) ([]teller.TransactionRecord, error) {
	var records []teller.TransactionRecord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseTransactionLine(line)
		if err != nil {
			log.Printf("warning: skipping transaction line %q: %v", line, err)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading transactions: %w", err)
	}
	return records, nil
}

func parseTransactionLine(line string) (teller.TransactionRecord, error) {
	// At most 4 fields: the description keeps its commas verbatim.
	parts := strings.SplitN(line, ",", 4)
	if len(parts) != 4 {
		return teller.TransactionRecord{}, fmt.Errorf("expected 4 fields, got %d", len(parts))
	}
	number, err := strconv.Atoi(parts[0])
	if err != nil {
		return teller.TransactionRecord{}, fmt.Errorf("invalid account number %q: %w", parts[0], err)
	}
	kind, err := teller.ParseKind(parts[1])
	if err != nil {
		return teller.TransactionRecord{}, err
	}
	amount, err := decimal.NewFromString(parts[2])
	if err != nil {
		return teller.TransactionRecord{}, fmt.Errorf("invalid amount %q: %w", parts[2], err)
	}
	return teller.TransactionRecord{
		Number:      number,
		Kind:        kind,
		Amount:      amount,
		Description: parts[3],
	}, nil
}

// SaveTransactions overwrites the transactions file with one record per line.
func (s *Store) SaveTransactions(records []teller.TransactionRecord) error {
	f, err := os.Create(s.TransactionsPath)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, r := range records {
		fmt.Fprintf(w, "%d,%s,%s,%s\n", r.Number, r.Kind, r.Amount.StringFixed(2), r.Description)
	}
	return w.Flush()
}
