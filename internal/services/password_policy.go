package services

import (
	"errors"
	"strings"
)

const minPasswordLength = 6

var ErrWeakPassword = errors.New("weak password")

func ValidatePasswordStrength(password string) error {
	if len([]rune(strings.TrimSpace(password))) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}
