package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zenithfest/zenith/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateAccount      = errors.New("account already exists")
	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrEmailNotVerified      = errors.New("email not verified")
	ErrAlreadyVerified       = errors.New("email already verified")
	ErrAlreadyOnboarded      = errors.New("onboarding already completed")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrEmailDispatchFailed   = errors.New("failed to send email")
)

type AccountUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	Create(user *models.User) error
	StoreVerificationChallenge(userID uint, code string, expires time.Time) error
	MarkEmailVerified(userID uint) error
	StoreResetToken(userID uint, token string, expires time.Time) error
	FindByActiveResetToken(token string, now time.Time) (models.User, error)
	CompletePasswordReset(userID uint, passwordHash string) error
	CompleteOnboarding(userID uint, updates map[string]any) error
}

// Mailer is the black-box email dispatcher. Dispatch is synchronous and
// never retried; a failure surfaces to the caller of the operation that
// triggered it.
type Mailer interface {
	SendVerification(email string, code string) error
	SendPasswordReset(email string, token string) error
}

type AccountService struct {
	users  AccountUserRepository
	mailer Mailer
}

func NewAccountService(users AccountUserRepository, mailer Mailer) *AccountService {
	return &AccountService{users: users, mailer: mailer}
}

type SignupInput struct {
	Email       string
	FullName    string
	Phone       string
	CollegeName string
	Department  string
	Password    string
}

// Signup creates an unverified account and issues its first verification
// challenge. The account and challenge stay committed even when the mail
// dispatch fails; the caller recovers via ResendOTP.
func (service *AccountService) Signup(input SignupInput, now time.Time) (models.User, error) {
	exists, err := service.users.ExistsByNormalizedEmail(input.Email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrDuplicateAccount
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		FullName:     input.FullName,
		Phone:        input.Phone,
		CollegeName:  input.CollegeName,
		Department:   input.Department,
		CreatedAt:    now,
	}
	if err := service.users.Create(&user); err != nil {
		// The unique index is the last line of defense against a racing
		// signup with the same email; anything else is a storage fault.
		if isUniqueConstraintViolation(err) {
			return models.User{}, ErrDuplicateAccount
		}
		return models.User{}, err
	}

	code, _, err := service.issueVerificationChallenge(&user, now)
	if err != nil {
		return models.User{}, err
	}
	if err := service.mailer.SendVerification(user.Email, code); err != nil {
		return user, fmt.Errorf("%w: %v", ErrEmailDispatchFailed, err)
	}

	return user, nil
}

// VerifyEmail consumes the account's pending challenge. Success flips
// EmailVerified exactly once and clears the challenge, so a replay inside
// the original validity window fails like any other bad code.
func (service *AccountService) VerifyEmail(email string, code string, now time.Time) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrInvalidOrExpiredToken
	}

	if !VerificationChallengeMatches(user.EmailOTP, user.EmailOTPExpires, code, now) {
		return models.User{}, ErrInvalidOrExpiredToken
	}

	if err := service.users.MarkEmailVerified(user.ID); err != nil {
		return models.User{}, err
	}

	user.EmailVerified = true
	user.EmailOTP = nil
	user.EmailOTPExpires = nil
	return user, nil
}

// ResendOTP always supersedes any prior challenge; the previous code stops
// validating the moment the new one is stored.
func (service *AccountService) ResendOTP(email string, now time.Time) error {
	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return ErrAccountNotFound
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	code, _, err := service.issueVerificationChallenge(&user, now)
	if err != nil {
		return err
	}
	if err := service.mailer.SendVerification(user.Email, code); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailDispatchFailed, err)
	}
	return nil
}

// Login is a side-effect-free read: it authenticates the credential pair and
// returns the account for session minting.
func (service *AccountService) Login(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrAccountNotFound
	}
	if !user.EmailVerified {
		return models.User{}, ErrEmailNotVerified
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidPassword
	}
	return user, nil
}

// RequestPasswordReset never reveals whether the account exists: an unknown
// email and a failed dispatch both report the same generic success upstream.
// Only storage failures propagate.
func (service *AccountService) RequestPasswordReset(email string, now time.Time) error {
	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return nil
	}

	token, err := GenerateResetToken()
	if err != nil {
		return err
	}
	if err := service.users.StoreResetToken(user.ID, token, now.Add(ResetTokenTTL)); err != nil {
		return err
	}

	// The committed token stays usable through a later request even when
	// this dispatch fails.
	_ = service.mailer.SendPasswordReset(user.Email, token)
	return nil
}

// ResetPassword consumes a one-time reset token, replaces the credential and
// invalidates every outstanding session of the account.
func (service *AccountService) ResetPassword(token string, newPassword string, now time.Time) (models.User, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return models.User{}, ErrInvalidOrExpiredToken
	}

	user, err := service.users.FindByActiveResetToken(trimmed, now)
	if err != nil {
		return models.User{}, ErrInvalidOrExpiredToken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	if err := service.users.CompletePasswordReset(user.ID, string(passwordHash)); err != nil {
		return models.User{}, err
	}

	return service.users.FindByID(user.ID)
}

type OnboardingInput struct {
	FullName    string
	Phone       string
	CollegeName string
	Department  string
}

// CompleteOnboarding merges the supplied profile fields and flips
// OnboardingCompleted exactly once. Verification must come first.
func (service *AccountService) CompleteOnboarding(userID uint, input OnboardingInput) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if !user.EmailVerified {
		return models.User{}, ErrEmailNotVerified
	}
	if user.OnboardingCompleted {
		return models.User{}, ErrAlreadyOnboarded
	}

	updates := map[string]any{"onboarding_completed": true}
	if value := strings.TrimSpace(input.FullName); value != "" {
		updates["full_name"] = value
	}
	if value := strings.TrimSpace(input.Phone); value != "" {
		updates["phone"] = value
	}
	if value := strings.TrimSpace(input.CollegeName); value != "" {
		updates["college_name"] = value
	}
	if value := strings.TrimSpace(input.Department); value != "" {
		updates["department"] = value
	}

	if err := service.users.CompleteOnboarding(user.ID, updates); err != nil {
		return models.User{}, err
	}
	return service.users.FindByID(user.ID)
}

func (service *AccountService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func isUniqueConstraintViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

func (service *AccountService) issueVerificationChallenge(user *models.User, now time.Time) (string, time.Time, error) {
	code, err := GenerateEmailOTP()
	if err != nil {
		return "", time.Time{}, err
	}

	expires := now.Add(EmailOTPTTL)
	if err := service.users.StoreVerificationChallenge(user.ID, code, expires); err != nil {
		return "", time.Time{}, err
	}

	user.EmailOTP = &code
	user.EmailOTPExpires = &expires
	return code, expires, nil
}
