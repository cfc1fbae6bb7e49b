package teller

import (
	"testing"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		name string
		m    Money
		want string
	}{
		{name: "whole amount", m: USD(10), want: "$10.00"},
		{name: "with cents", m: USD(1234.56), want: "$1,234.56"},
		{name: "zero", m: USD(0), want: "$0.00"},
		{name: "negative", m: USD(-50), want: "-$50.00"},
		{name: "euro", m: M(99.9, "EUR"), want: "€99,90"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("Money.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoney_SignedString(t *testing.T) {
	tests := []struct {
		name string
		m    Money
		want string
	}{
		{name: "positive", m: USD(10), want: "+$10.00"},
		{name: "negative", m: USD(-10), want: "-$10.00"},
		{name: "zero", m: USD(0), want: "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.SignedString(); got != tt.want {
				t.Errorf("Money.SignedString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Money
		wantErr bool
	}{
		{name: "plain", input: "123.45", want: USD(123.45)},
		{name: "integer", input: "200", want: USD(200)},
		{name: "negative", input: "-7.5", want: USD(-7.5)},
		{name: "garbage", input: "ten dollars", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney(tt.input, DefaultCurrency)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMoney(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && !got.Equal(tt.want) {
				t.Errorf("ParseMoney(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	sum := USD(100).Add(USD(23.45))
	if !sum.Equal(USD(123.45)) {
		t.Errorf("Add() = %s, want %s", sum, USD(123.45))
	}
	diff := USD(100).Sub(USD(40))
	if !diff.Equal(USD(60)) {
		t.Errorf("Sub() = %s, want %s", diff, USD(60))
	}
	if !USD(-5).Abs().Equal(USD(5)) {
		t.Errorf("Abs() = %s, want %s", USD(-5).Abs(), USD(5))
	}
	if !USD(5).Neg().Equal(USD(-5)) {
		t.Errorf("Neg() = %s, want %s", USD(5).Neg(), USD(-5))
	}
}

func TestMoney_WeakEmptyCurrency(t *testing.T) {
	// The zero Money has an empty currency that adopts the other operand's.
	var zero Money
	got := zero.Add(USD(10))
	if got.Currency() != DefaultCurrency {
		t.Errorf("Currency() = %q, want %q", got.Currency(), DefaultCurrency)
	}
}

func TestMoney_CurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Add() with mixed currencies should panic")
		}
	}()
	USD(1).Add(M(1, "EUR"))
}

func TestMoney_Comparisons(t *testing.T) {
	if !USD(10).LessThan(USD(20)) {
		t.Errorf("LessThan() = false, want true")
	}
	if !USD(20).GreaterThan(USD(10)) {
		t.Errorf("GreaterThan() = false, want true")
	}
	if !USD(10).LessThanOrEqual(USD(10)) {
		t.Errorf("LessThanOrEqual() = false, want true")
	}
	if !USD(0).IsZero() || USD(1).IsZero() {
		t.Errorf("IsZero() misreported")
	}
	if !USD(1).IsPositive() || !USD(-1).IsNegative() {
		t.Errorf("sign predicates misreported")
	}
}
