package teller

import "errors"

// Domain errors. Business-rule violations are reported to the caller and are
// never retried automatically; none of them corrupts existing state.
var (
	// ErrAmountNotPositive rejects deposits, withdrawals and transfers of a
	// zero or negative amount.
	ErrAmountNotPositive = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds rejects withdrawals and transfers that would leave
	// the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDuplicateNumber rejects adding an account whose number is already
	// present in the ledger.
	ErrDuplicateNumber = errors.New("account number already exists")

	// ErrAccountNotFound reports a lookup of an unknown account number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrRecipientNotFound reports a transfer to an unknown account number.
	ErrRecipientNotFound = errors.New("recipient account not found")

	// ErrTransferRolledBack reports that the deposit leg of a transfer failed
	// and the withdrawn funds were restored to the sender. It is distinct from
	// a plain rejection: funds were touched and then restored.
	ErrTransferRolledBack = errors.New("transfer rolled back")

	// ErrAuthFailed reports exhaustion of the bounded credential retry.
	ErrAuthFailed = errors.New("too many failed password attempts")

	// ErrSameCredential rejects a password change to the current password.
	ErrSameCredential = errors.New("new password must differ from the current one")

	// ErrCredentialMismatch rejects a password change whose confirmation does
	// not match the new value.
	ErrCredentialMismatch = errors.New("password confirmation does not match")

	// ErrNotLoggedIn reports a session operation that requires an active account.
	ErrNotLoggedIn = errors.New("no account is logged in")
)

// Constructor validation errors. Fatal to the single operation, never to the
// process.
var (
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrNegativeBalance    = errors.New("balance cannot be negative")
	ErrEmptyCredential    = errors.New("password cannot be empty")
	ErrCredentialTooShort = errors.New("password must be at least 6 characters long")
	ErrEmptyDescription   = errors.New("description cannot be empty")
)
