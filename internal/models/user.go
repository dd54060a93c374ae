package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FullName     string `gorm:"not null"`
	Phone        string
	CollegeName  string
	Department   string

	EmailVerified       bool `gorm:"not null;default:false"`
	OnboardingCompleted bool `gorm:"not null;default:false"`
	Paid                bool `gorm:"not null;default:false"`

	// Challenge pairs: either both fields are set or both are nil.
	EmailOTP        *string
	EmailOTPExpires *time.Time

	ResetPasswordToken   *string `gorm:"index"`
	ResetPasswordExpires *time.Time

	// Bumped on password reset; session tokens carrying an older value
	// are rejected by the auth middleware.
	SessionVersion int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
}

func (user *User) HasPendingEmailChallenge(now time.Time) bool {
	if user.EmailOTP == nil || user.EmailOTPExpires == nil {
		return false
	}
	return user.EmailOTPExpires.After(now)
}
