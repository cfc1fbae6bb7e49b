package teller

import "testing"

// newTestAccount creates a valid account for tests that do not care about the
// construction details.
func newTestAccount(t *testing.T, number int, balance float64) *Account {
	t.Helper()
	a, err := NewAccount("Ada Lovelace", number, USD(balance), "s3cret-pass")
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}
	return a
}

// scriptedPrompt replays answers in order and counts how many times it was
// asked. Once the answers are exhausted it keeps returning the last one.
func scriptedPrompt(calls *int, answers ...string) CredentialPrompt {
	i := 0
	return func() (string, error) {
		*calls++
		answer := answers[i]
		if i < len(answers)-1 {
			i++
		}
		return answer, nil
	}
}
