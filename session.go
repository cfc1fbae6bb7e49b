package teller

import "fmt"

// MaxCredentialAttempts is the fixed number of chances the user gets to enter
// a correct credential before the operation is abandoned. It is a policy
// constant, not configurable per call.
const MaxCredentialAttempts = 3

// CredentialPrompt asks the user for a credential. Returning an error aborts
// the verification immediately (e.g. on EOF).
type CredentialPrompt func() (string, error)

// VerifyCredential calls prompt up to MaxCredentialAttempts times and reports
// whether one of the answers matched the account credential. The account is
// left untouched either way.
func VerifyCredential(a *Account, prompt CredentialPrompt) bool {
	for attempt := 0; attempt < MaxCredentialAttempts; attempt++ {
		input, err := prompt()
		if err != nil {
			return false
		}
		if a.CheckCredential(input) {
			return true
		}
	}
	return false
}

// ChangeCredential replaces the account credential. It first verifies the
// current credential through prompt (bounded retry), then rejects a new value
// equal to the current one or a confirmation that does not match, and finally
// delegates format validation to Account.SetCredential.
func ChangeCredential(a *Account, prompt CredentialPrompt, newValue, confirmValue string) error {
	if !VerifyCredential(a, prompt) {
		return ErrAuthFailed
	}
	if a.CheckCredential(newValue) {
		return ErrSameCredential
	}
	if newValue != confirmValue {
		return ErrCredentialMismatch
	}
	return a.SetCredential(newValue)
}

// Session tracks which account, if any, is currently authenticated. The zero
// state is logged out. The active account is held by number, not by
// reference, so a deleted account never leaves a dangling session.
type Session struct {
	ledger   *Ledger
	active   int
	loggedIn bool
}

// NewSession creates a logged-out session over the ledger.
func NewSession(l *Ledger) *Session {
	return &Session{ledger: l}
}

// LoggedIn reports whether an account is currently authenticated.
func (s *Session) LoggedIn() bool { return s.loggedIn }

// Active returns the authenticated account, looked up in the ledger, or nil
// when logged out or when the account has been removed since login.
func (s *Session) Active() *Account {
	if !s.loggedIn {
		return nil
	}
	return s.ledger.Account(s.active)
}

// Login authenticates against the account numbered number. On success the
// session becomes logged in to that account; on failure it stays logged out.
func (s *Session) Login(number int, prompt CredentialPrompt) (*Account, error) {
	a := s.ledger.Account(number)
	if a == nil {
		return nil, fmt.Errorf("account %d: %w", number, ErrAccountNotFound)
	}
	if !VerifyCredential(a, prompt) {
		return nil, ErrAuthFailed
	}
	s.active = number
	s.loggedIn = true
	return a, nil
}

// Logout unconditionally returns the session to the logged-out state.
func (s *Session) Logout() {
	s.loggedIn = false
	s.active = 0
}

// DeleteActive removes the authenticated account from the ledger after a
// fresh credential verification, and logs the session out. The caller must
// persist afterwards.
func (s *Session) DeleteActive(prompt CredentialPrompt) error {
	a := s.Active()
	if a == nil {
		return ErrNotLoggedIn
	}
	if !VerifyCredential(a, prompt) {
		return ErrAuthFailed
	}
	s.ledger.Remove(a)
	s.Logout()
	return nil
}
