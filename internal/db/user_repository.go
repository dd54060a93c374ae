package db

import (
	"time"

	"github.com/zenithfest/zenith/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

// StoreVerificationChallenge supersedes any pending challenge; only the
// latest code is ever valid.
func (repo *UserRepository) StoreVerificationChallenge(userID uint, code string, expires time.Time) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"email_otp":         code,
		"email_otp_expires": expires,
	}).Error
}

// MarkEmailVerified flips the flag and clears the challenge in one update,
// so a consumed code cannot be replayed.
func (repo *UserRepository) MarkEmailVerified(userID uint) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"email_verified":    true,
		"email_otp":         nil,
		"email_otp_expires": nil,
	}).Error
}

func (repo *UserRepository) StoreResetToken(userID uint, token string, expires time.Time) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"reset_password_token":   token,
		"reset_password_expires": expires,
	}).Error
}

func (repo *UserRepository) FindByActiveResetToken(token string, now time.Time) (models.User, error) {
	var user models.User
	if err := repo.database.
		Where("reset_password_token = ? AND reset_password_expires > ?", token, now).
		First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CompletePasswordReset replaces the credential, clears the one-time token
// and bumps the session version so outstanding session tokens die.
func (repo *UserRepository) CompletePasswordReset(userID uint, passwordHash string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"password_hash":          passwordHash,
		"reset_password_token":   nil,
		"reset_password_expires": nil,
		"session_version":        gorm.Expr("session_version + 1"),
	}).Error
}

func (repo *UserRepository) CompleteOnboarding(userID uint, updates map[string]any) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}
