package cmd

import (
	"bufio"
	"strings"
	"testing"
)

func TestValidAccountNumber(t *testing.T) {
	tests := []struct {
		number int
		want   bool
	}{
		{number: 100000, want: true},
		{number: 999999, want: true},
		{number: 123456, want: true},
		{number: 99999, want: false},
		{number: 1000000, want: false},
		{number: 0, want: false},
		{number: -123456, want: false},
	}
	for _, tt := range tests {
		if got := validAccountNumber(tt.number); got != tt.want {
			t.Errorf("validAccountNumber(%d) = %v, want %v", tt.number, got, tt.want)
		}
	}
}

func TestHolderNamePattern(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "Ada Lovelace", want: true},
		{name: "O'Brien", want: true},
		{name: "J. R. R. Tolkien", want: true},
		{name: "Jean-Luc", want: true},
		{name: "Ada123", want: false},
		{name: "", want: false},
		{name: "name,with,commas", want: false},
	}
	for _, tt := range tests {
		if got := holderNamePattern.MatchString(tt.name); got != tt.want {
			t.Errorf("holderNamePattern.MatchString(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPromptValidPassword(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("\nabc\ns3cret-pass\n"))
	var out strings.Builder

	got, err := promptValidPassword(in, &out, "Enter: ")
	if err != nil {
		t.Fatalf("promptValidPassword() error = %v", err)
	}
	if got != "s3cret-pass" {
		t.Errorf("promptValidPassword() = %q, want %q", got, "s3cret-pass")
	}
	if !strings.Contains(out.String(), "Password cannot be empty.") {
		t.Errorf("missing the empty password message:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "at least 6 characters") {
		t.Errorf("missing the length message:\n%s", out.String())
	}
}

func TestCredentialPrompt_AnnouncesRemainingAttempts(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("first\nsecond\nthird\n"))
	var out strings.Builder
	prompt := credentialPrompt(in, &out)

	for _, want := range []string{"first", "second", "third"} {
		got, err := prompt()
		if err != nil {
			t.Fatalf("prompt() error = %v", err)
		}
		if got != want {
			t.Errorf("prompt() = %q, want %q", got, want)
		}
	}
	if !strings.Contains(out.String(), "Attempts left: 2") {
		t.Errorf("missing the second attempt warning:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Attempts left: 1") {
		t.Errorf("missing the last attempt warning:\n%s", out.String())
	}
}
