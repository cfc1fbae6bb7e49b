package teller

import (
	"errors"
	"testing"
)

func TestNewAccount(t *testing.T) {
	tests := []struct {
		name       string
		holder     string
		balance    Money
		credential string
		wantErr    error
	}{
		{name: "valid", holder: "Ada Lovelace", balance: USD(100), credential: "s3cret-pass"},
		{name: "zero opening balance", holder: "Ada Lovelace", balance: USD(0), credential: "s3cret-pass"},
		{name: "blank name", holder: "   ", balance: USD(100), credential: "s3cret-pass", wantErr: ErrEmptyName},
		{name: "negative balance", holder: "Ada Lovelace", balance: USD(-1), credential: "s3cret-pass", wantErr: ErrNegativeBalance},
		{name: "empty credential", holder: "Ada Lovelace", balance: USD(100), credential: "", wantErr: ErrEmptyCredential},
		{name: "short credential", holder: "Ada Lovelace", balance: USD(100), credential: "abc", wantErr: ErrCredentialTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAccount(tt.holder, 123456, tt.balance, tt.credential)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewAccount() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAccount() error = %v", err)
			}
			if a.Name() != tt.holder || a.Number() != 123456 || !a.Balance().Equal(tt.balance) {
				t.Errorf("NewAccount() = %s/%d/%s, want %s/123456/%s", a.Name(), a.Number(), a.Balance(), tt.holder, tt.balance)
			}
			if a.TransactionCount() != 0 {
				t.Errorf("TransactionCount() = %d, want 0", a.TransactionCount())
			}
		})
	}
}

func TestAccount_Deposit(t *testing.T) {
	tests := []struct {
		name    string
		amount  Money
		want    Money
		wantErr error
	}{
		{name: "credits the balance", amount: USD(50), want: USD(150)},
		{name: "rejects zero", amount: USD(0), want: USD(100), wantErr: ErrAmountNotPositive},
		{name: "rejects negative", amount: USD(-10), want: USD(100), wantErr: ErrAmountNotPositive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAccount(t, 123456, 100)
			err := a.Deposit(tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Deposit() error = %v, want %v", err, tt.wantErr)
			}
			if !a.Balance().Equal(tt.want) {
				t.Errorf("Balance() = %s, want %s", a.Balance(), tt.want)
			}
		})
	}
}

func TestAccount_Withdraw(t *testing.T) {
	tests := []struct {
		name    string
		amount  Money
		want    Money
		wantErr error
	}{
		{name: "debits the balance", amount: USD(40), want: USD(60)},
		{name: "exact balance", amount: USD(100), want: USD(0)},
		{name: "rejects overdraft", amount: USD(100.01), want: USD(100), wantErr: ErrInsufficientFunds},
		{name: "rejects zero", amount: USD(0), want: USD(100), wantErr: ErrAmountNotPositive},
		{name: "rejects negative", amount: USD(-10), want: USD(100), wantErr: ErrAmountNotPositive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAccount(t, 123456, 100)
			err := a.Withdraw(tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Withdraw() error = %v, want %v", err, tt.wantErr)
			}
			if !a.Balance().Equal(tt.want) {
				t.Errorf("Balance() = %s, want %s", a.Balance(), tt.want)
			}
		})
	}
}

func TestAccount_CheckCredential(t *testing.T) {
	a := newTestAccount(t, 123456, 100)
	if !a.CheckCredential("s3cret-pass") {
		t.Errorf("CheckCredential() with the exact credential = false, want true")
	}
	for _, input := range []string{"", "S3CRET-PASS", "s3cret-pass ", "wrong"} {
		if a.CheckCredential(input) {
			t.Errorf("CheckCredential(%q) = true, want false", input)
		}
	}
}

func TestAccount_SetCredential(t *testing.T) {
	a := newTestAccount(t, 123456, 100)

	if err := a.SetCredential("short"); !errors.Is(err, ErrCredentialTooShort) {
		t.Fatalf("SetCredential() error = %v, want %v", err, ErrCredentialTooShort)
	}
	if !a.CheckCredential("s3cret-pass") {
		t.Errorf("rejected SetCredential() must not change the credential")
	}

	if err := a.SetCredential("new-secret"); err != nil {
		t.Fatalf("SetCredential() error = %v", err)
	}
	if !a.CheckCredential("new-secret") || a.CheckCredential("s3cret-pass") {
		t.Errorf("SetCredential() did not replace the credential")
	}
}

func TestAccount_Transactions(t *testing.T) {
	a := newTestAccount(t, 123456, 100)
	descriptions := []string{"first", "second", "third"}
	for _, d := range descriptions {
		tx, err := NewTransaction(KindDeposit, USD(1), d)
		if err != nil {
			t.Fatalf("NewTransaction() error = %v", err)
		}
		a.AddTransaction(tx)
	}

	if a.TransactionCount() != len(descriptions) {
		t.Fatalf("TransactionCount() = %d, want %d", a.TransactionCount(), len(descriptions))
	}
	for i, tx := range a.Transactions() {
		if tx.Description() != descriptions[i] {
			t.Errorf("Transactions()[%d] = %q, want %q", i, tx.Description(), descriptions[i])
		}
	}
}
