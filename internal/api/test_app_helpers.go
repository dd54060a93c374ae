package api

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zenithfest/zenith/internal/db"
	"github.com/zenithfest/zenith/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// recordingMailer captures dispatched codes and tokens so tests can walk
// the verification and reset flows without a mail server.
type recordingMailer struct {
	mu                sync.Mutex
	failDispatch      bool
	verificationCodes map[string]string
	resetTokens       map[string]string
	verificationSends int
	resetSends        int
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{
		verificationCodes: make(map[string]string),
		resetTokens:       make(map[string]string),
	}
}

func (mailer *recordingMailer) SendVerification(email string, code string) error {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	if mailer.failDispatch {
		return errors.New("smtp unavailable")
	}
	mailer.verificationCodes[email] = code
	mailer.verificationSends++
	return nil
}

func (mailer *recordingMailer) SendPasswordReset(email string, token string) error {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	if mailer.failDispatch {
		return errors.New("smtp unavailable")
	}
	mailer.resetTokens[email] = token
	mailer.resetSends++
	return nil
}

func (mailer *recordingMailer) setFailDispatch(fail bool) {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	mailer.failDispatch = fail
}

func (mailer *recordingMailer) lastVerificationCode(email string) string {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	return mailer.verificationCodes[email]
}

func (mailer *recordingMailer) lastResetToken(email string) string {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	return mailer.resetTokens[email]
}

func (mailer *recordingMailer) countResetSends() int {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	return mailer.resetSends
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *recordingMailer) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "zenith-test.db")
	database, err := db.OpenSQLite(databasePath)
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

	mailer := newRecordingMailer()
	handler := NewHandler(database, "test-secret-key", false, "IN", mailer)
	if err := handler.EventService().EnsureBuiltinEvents(); err != nil {
		t.Fatalf("seed events: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, mailer
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string, verified bool, onboarded bool) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:               email,
		PasswordHash:        string(passwordHash),
		FullName:            "Test User",
		Phone:               "+919999999999",
		CollegeName:         "Test College",
		Department:          "CSE",
		EmailVerified:       verified,
		OnboardingCompleted: onboarded,
		CreatedAt:           time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}
