package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrPhoneNumberInvalid     = errors.New("phone number invalid")
	ErrProfileFieldMissing    = errors.New("profile field missing")
)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

// NormalizePhoneNumber validates the number for the region and returns it in
// E.164 form.
func NormalizePhoneNumber(raw string, region string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", ErrPhoneNumberInvalid
	}

	parsed, err := phonenumbers.Parse(candidate, region)
	if err != nil {
		return "", ErrPhoneNumberInvalid
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", ErrPhoneNumberInvalid
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

func NormalizeProfileField(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", ErrProfileFieldMissing
	}
	return value, nil
}
