package services

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/zenithfest/zenith/internal/security"
)

// Email ownership is proven by a single challenge scheme: a 6-digit code
// mailed to the address, valid for ten minutes, consumed exactly once.
// Password reset uses a separate long random token with a one-hour window.
const (
	EmailOTPLength = 6
	EmailOTPTTL    = 10 * time.Minute

	ResetTokenBytes = 32
	ResetTokenTTL   = time.Hour

	otpAlphabet = "0123456789"
)

func GenerateEmailOTP() (string, error) {
	return security.RandomString(EmailOTPLength, otpAlphabet)
}

func GenerateResetToken() (string, error) {
	return security.RandomHex(ResetTokenBytes)
}

// VerificationChallengeMatches reports whether the submitted code consumes
// the stored challenge. Comparison is constant-time; a cleared or expired
// challenge never matches.
func VerificationChallengeMatches(storedCode *string, storedExpires *time.Time, submitted string, now time.Time) bool {
	if storedCode == nil || storedExpires == nil {
		return false
	}
	if !storedExpires.After(now) {
		return false
	}

	candidate := strings.TrimSpace(submitted)
	if len(candidate) != EmailOTPLength {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*storedCode), []byte(candidate)) == 1
}
