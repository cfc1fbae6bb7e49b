package flatfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/teller"
	"github.com/shopspring/decimal"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return New(filepath.Join(dir, "accounts.txt"), filepath.Join(dir, "transactions.txt"))
}

func TestStore_AbsentFiles(t *testing.T) {
	s := newTestStore(t)

	accounts, err := s.LoadAccounts()
	if err != nil {
		t.Fatalf("LoadAccounts() error = %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("LoadAccounts() on absent file = %d records, want 0", len(accounts))
	}

	transactions, err := s.LoadTransactions()
	if err != nil {
		t.Fatalf("LoadTransactions() error = %v", err)
	}
	if len(transactions) != 0 {
		t.Errorf("LoadTransactions() on absent file = %d records, want 0", len(transactions))
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	accounts := []teller.AccountRecord{
		{Name: "Ada Lovelace", Number: 123456, Balance: decimal.NewFromFloat(500.00), Credential: "s3cret-pass"},
		{Name: "Grace Hopper", Number: 654321, Balance: decimal.NewFromFloat(99.50), Credential: "another-pass"},
	}
	transactions := []teller.TransactionRecord{
		{Number: 123456, Kind: teller.KindDeposit, Amount: decimal.NewFromInt(500), Description: "Deposit to account"},
		{Number: 123456, Kind: teller.KindTransfer, Amount: decimal.NewFromInt(-100), Description: "Transfer to account 654321"},
		{Number: 654321, Kind: teller.KindDeposit, Amount: decimal.NewFromFloat(99.50), Description: "rent, utilities, and more"},
	}

	if err := s.SaveAccounts(accounts); err != nil {
		t.Fatalf("SaveAccounts() error = %v", err)
	}
	if err := s.SaveTransactions(transactions); err != nil {
		t.Fatalf("SaveTransactions() error = %v", err)
	}

	gotAccounts, err := s.LoadAccounts()
	if err != nil {
		t.Fatalf("LoadAccounts() error = %v", err)
	}
	if len(gotAccounts) != len(accounts) {
		t.Fatalf("LoadAccounts() = %d records, want %d", len(gotAccounts), len(accounts))
	}
	for i, got := range gotAccounts {
		want := accounts[i]
		if got.Name != want.Name || got.Number != want.Number || got.Credential != want.Credential {
			t.Errorf("account[%d] = %+v, want %+v", i, got, want)
		}
		if !got.Balance.Equal(want.Balance) {
			t.Errorf("account[%d] balance = %s, want %s", i, got.Balance, want.Balance)
		}
	}

	gotTransactions, err := s.LoadTransactions()
	if err != nil {
		t.Fatalf("LoadTransactions() error = %v", err)
	}
	if len(gotTransactions) != len(transactions) {
		t.Fatalf("LoadTransactions() = %d records, want %d", len(gotTransactions), len(transactions))
	}
	for i, got := range gotTransactions {
		want := transactions[i]
		if got.Number != want.Number || got.Kind != want.Kind || got.Description != want.Description {
			t.Errorf("transaction[%d] = %+v, want %+v", i, got, want)
		}
		if !got.Amount.Equal(want.Amount) {
			t.Errorf("transaction[%d] amount = %s, want %s", i, got.Amount, want.Amount)
		}
	}
}

func TestStore_FileFormat(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveAccounts([]teller.AccountRecord{
		{Name: "Ada Lovelace", Number: 123456, Balance: decimal.NewFromInt(500), Credential: "s3cret-pass"},
	}); err != nil {
		t.Fatalf("SaveAccounts() error = %v", err)
	}
	content, err := os.ReadFile(s.AccountsPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	want := "Ada Lovelace,123456,500.00,s3cret-pass\n"
	if string(content) != want {
		t.Errorf("accounts file = %q, want %q", content, want)
	}

	if err := s.SaveTransactions([]teller.TransactionRecord{
		{Number: 123456, Kind: teller.KindWithdrawal, Amount: decimal.NewFromInt(-50), Description: "Withdrawal from account"},
	}); err != nil {
		t.Fatalf("SaveTransactions() error = %v", err)
	}
	content, err = os.ReadFile(s.TransactionsPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	want = "123456,Withdrawal,-50.00,Withdrawal from account\n"
	if string(content) != want {
		t.Errorf("transactions file = %q, want %q", content, want)
	}
}

func TestDecodeAccounts_SkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"Ada Lovelace,123456,500.00,s3cret-pass",
		"",
		"not enough fields",
		"Bad Number,abc,10.00,s3cret-pass",
		"Bad Balance,111111,ten,s3cret-pass",
		"Grace Hopper,654321,99.50,another-pass",
	}, "\n")

	records, err := DecodeAccounts(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeAccounts() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("DecodeAccounts() = %d records, want 2", len(records))
	}
	if records[0].Number != 123456 || records[1].Number != 654321 {
		t.Errorf("DecodeAccounts() kept %d and %d, want 123456 and 654321", records[0].Number, records[1].Number)
	}
}

func TestDecodeTransactions_SkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"123456,Deposit,500.00,Deposit to account",
		"abc,Deposit,10.00,bad number",
		"123456,Refund,10.00,bad kind",
		"123456,Deposit,ten,bad amount",
		"123456,Transfer,-25.00,Transfer to account 654321",
	}, "\n")

	records, err := DecodeTransactions(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("DecodeTransactions() = %d records, want 2", len(records))
	}
	if records[1].Kind != teller.KindTransfer {
		t.Errorf("records[1].Kind = %q, want %q", records[1].Kind, teller.KindTransfer)
	}
}

func TestDecodeTransactions_DescriptionKeepsCommas(t *testing.T) {
	input := "123456,Deposit,10.00,rent, utilities, and more\n"
	records, err := DecodeTransactions(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("DecodeTransactions() = %d records, want 1", len(records))
	}
	want := "rent, utilities, and more"
	if records[0].Description != want {
		t.Errorf("Description = %q, want %q", records[0].Description, want)
	}
}
