package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/zenithfest/zenith/internal/models"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "repo-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func seedUser(t *testing.T, repo *UserRepository, email string) models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "$2a$10$placeholderplaceholderplaceholde",
		FullName:     "Repo Tester",
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestFindByNormalizedEmailIsCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(newTestDatabase(t))
	seedUser(t, repo, "Mixed.Case@Example.com")

	found, err := repo.FindByNormalizedEmail("mixed.case@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Email != "Mixed.Case@Example.com" {
		t.Errorf("email = %q", found.Email)
	}

	exists, err := repo.ExistsByNormalizedEmail("mixed.case@example.com")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Error("stored address should be found by its normalized form")
	}
}

func TestStoreVerificationChallengeLeavesOtherColumnsAlone(t *testing.T) {
	repo := NewUserRepository(newTestDatabase(t))
	user := seedUser(t, repo, "challenge@example.com")

	expires := time.Now().Add(10 * time.Minute)
	if err := repo.StoreVerificationChallenge(user.ID, "123456", expires); err != nil {
		t.Fatalf("store challenge: %v", err)
	}

	reloaded, err := repo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.EmailOTP == nil || *reloaded.EmailOTP != "123456" {
		t.Fatal("challenge code not stored")
	}
	if reloaded.PasswordHash != user.PasswordHash {
		t.Error("password hash must not change when storing a challenge")
	}
	if reloaded.FullName != user.FullName {
		t.Error("profile fields must not change when storing a challenge")
	}
}

func TestMarkEmailVerifiedClearsChallenge(t *testing.T) {
	repo := NewUserRepository(newTestDatabase(t))
	user := seedUser(t, repo, "flip@example.com")

	if err := repo.StoreVerificationChallenge(user.ID, "123456", time.Now().Add(10*time.Minute)); err != nil {
		t.Fatalf("store challenge: %v", err)
	}
	if err := repo.MarkEmailVerified(user.ID); err != nil {
		t.Fatalf("mark verified: %v", err)
	}

	reloaded, err := repo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.EmailVerified {
		t.Error("verified flag not set")
	}
	if reloaded.EmailOTP != nil || reloaded.EmailOTPExpires != nil {
		t.Error("challenge columns should be cleared")
	}
}

func TestCompletePasswordResetRotatesSessionVersion(t *testing.T) {
	repo := NewUserRepository(newTestDatabase(t))
	user := seedUser(t, repo, "rotate@example.com")

	now := time.Now()
	if err := repo.StoreResetToken(user.ID, "reset-token", now.Add(time.Hour)); err != nil {
		t.Fatalf("store token: %v", err)
	}

	found, err := repo.FindByActiveResetToken("reset-token", now)
	if err != nil {
		t.Fatalf("find by token: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("found user %d, want %d", found.ID, user.ID)
	}

	if err := repo.CompletePasswordReset(user.ID, "new-hash"); err != nil {
		t.Fatalf("complete reset: %v", err)
	}

	reloaded, err := repo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.PasswordHash != "new-hash" {
		t.Error("password hash not replaced")
	}
	if reloaded.ResetPasswordToken != nil || reloaded.ResetPasswordExpires != nil {
		t.Error("reset columns should be cleared")
	}
	if reloaded.SessionVersion != user.SessionVersion+1 {
		t.Errorf("session version = %d, want %d", reloaded.SessionVersion, user.SessionVersion+1)
	}

	if _, err := repo.FindByActiveResetToken("reset-token", now); err == nil {
		t.Error("consumed token should no longer resolve")
	}
}

func TestFindByActiveResetTokenIgnoresExpired(t *testing.T) {
	repo := NewUserRepository(newTestDatabase(t))
	user := seedUser(t, repo, "expired@example.com")

	now := time.Now()
	if err := repo.StoreResetToken(user.ID, "stale-token", now.Add(-time.Minute)); err != nil {
		t.Fatalf("store token: %v", err)
	}

	if _, err := repo.FindByActiveResetToken("stale-token", now); err == nil {
		t.Error("expired token should not resolve")
	}
}
