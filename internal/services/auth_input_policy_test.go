package services

import (
	"errors"
	"testing"
)

func TestNormalizeAuthEmail(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"user@example.com", "user@example.com"},
		{"  USER@Example.COM  ", "user@example.com"},
		{"", ""},
		{"   ", ""},
		{"not-an-email", ""},
		{"missing@", ""},
	}
	for _, testCase := range cases {
		if got := NormalizeAuthEmail(testCase.raw); got != testCase.want {
			t.Errorf("NormalizeAuthEmail(%q) = %q, want %q", testCase.raw, got, testCase.want)
		}
	}
}

func TestNormalizeCredentialsInput(t *testing.T) {
	email, password, err := NormalizeCredentialsInput(" Member@Example.com ", " secret1 ")
	if err != nil {
		t.Fatalf("valid credentials: %v", err)
	}
	if email != "member@example.com" {
		t.Errorf("email = %q", email)
	}
	if password != "secret1" {
		t.Errorf("password = %q", password)
	}

	if _, _, err := NormalizeCredentialsInput("bad-address", "secret1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Errorf("bad email: err = %v", err)
	}
	if _, _, err := NormalizeCredentialsInput("member@example.com", "   "); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Errorf("blank password: err = %v", err)
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	got, err := NormalizePhoneNumber("9999999999", "IN")
	if err != nil {
		t.Fatalf("ten-digit Indian mobile: %v", err)
	}
	if got != "+919999999999" {
		t.Errorf("normalized phone = %q, want +919999999999", got)
	}

	withCountryCode, err := NormalizePhoneNumber("+91 99999 99999", "IN")
	if err != nil {
		t.Fatalf("formatted number: %v", err)
	}
	if withCountryCode != "+919999999999" {
		t.Errorf("formatted phone = %q, want +919999999999", withCountryCode)
	}

	if _, err := NormalizePhoneNumber("123", "IN"); !errors.Is(err, ErrPhoneNumberInvalid) {
		t.Errorf("short number: err = %v", err)
	}
	if _, err := NormalizePhoneNumber("", "IN"); !errors.Is(err, ErrPhoneNumberInvalid) {
		t.Errorf("empty number: err = %v", err)
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	if err := ValidatePasswordStrength("secret1"); err != nil {
		t.Errorf("secret1 should pass: %v", err)
	}
	if err := ValidatePasswordStrength("abc"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("short password: err = %v", err)
	}
	if err := ValidatePasswordStrength("        "); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("whitespace password: err = %v", err)
	}
}

func TestNormalizeProfileField(t *testing.T) {
	value, err := NormalizeProfileField("  Zenith Institute  ")
	if err != nil {
		t.Fatalf("valid field: %v", err)
	}
	if value != "Zenith Institute" {
		t.Errorf("value = %q", value)
	}

	if _, err := NormalizeProfileField("   "); !errors.Is(err, ErrProfileFieldMissing) {
		t.Errorf("blank field: err = %v", err)
	}
}
