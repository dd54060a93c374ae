package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zenithfest/zenith/internal/models"
	"gorm.io/gorm"
)

// otherSixDigitCode returns a valid-looking code guaranteed to differ
// from the one actually issued.
func otherSixDigitCode(issued string) string {
	if issued == "123456" {
		return "654321"
	}
	return "123456"
}

func signupForVerification(t *testing.T, app *fiber.App, mailer *recordingMailer, email string) string {
	t.Helper()

	response := performJSONRequest(t, app, http.MethodPost, "/api/auth/signup", signupPayload(email), "")
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("signup %s: expected status 201, got %d", email, response.StatusCode)
	}

	code := mailer.lastVerificationCode(email)
	if code == "" {
		t.Fatalf("signup %s: no verification code dispatched", email)
	}
	return code
}

func loadUserByEmail(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	var user models.User
	if err := database.Where("email = ?", email).First(&user).Error; err != nil {
		t.Fatalf("load user %s: %v", email, err)
	}
	return user
}

func TestVerifyEmailConsumesChallenge(t *testing.T) {
	app, database, mailer := newTestApp(t)
	code := signupForVerification(t, app, mailer, "verify@example.com")

	wrong := performJSONRequest(t, app, http.MethodPost, "/api/auth/verify-email", map[string]string{
		"email": "verify@example.com",
		"token": otherSixDigitCode(code),
	}, "")
	if wrong.StatusCode != http.StatusBadRequest {
		t.Fatalf("wrong code: expected status 400, got %d", wrong.StatusCode)
	}
	if message := readAPIError(t, wrong); message != "invalid or expired token" {
		t.Errorf("wrong code error = %q", message)
	}

	response := performJSONRequest(t, app, http.MethodPost, "/api/auth/verify-email", map[string]string{
		"email": "verify@example.com",
		"token": code,
	}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("correct code: expected status 200, got %d", response.StatusCode)
	}

	user := loadUserByEmail(t, database, "verify@example.com")
	if !user.EmailVerified {
		t.Error("account should be verified after a correct code")
	}
	if user.EmailOTP != nil || user.EmailOTPExpires != nil {
		t.Error("challenge should be cleared once consumed")
	}

	// A consumed code cannot be replayed.
	replay := performJSONRequest(t, app, http.MethodPost, "/api/auth/verify-email", map[string]string{
		"email": "verify@example.com",
		"token": code,
	}, "")
	if replay.StatusCode != http.StatusBadRequest {
		t.Errorf("replayed code: expected status 400, got %d", replay.StatusCode)
	}
}

func TestVerifyEmailViaMailedLink(t *testing.T) {
	app, database, mailer := newTestApp(t)
	code := signupForVerification(t, app, mailer, "link@example.com")

	response := performGetRequest(t, app, fmt.Sprintf("/verify-email?email=%s&token=%s", "link@example.com", code), "")
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/login" {
		t.Errorf("redirect location = %q, want /login", location)
	}

	if user := loadUserByEmail(t, database, "link@example.com"); !user.EmailVerified {
		t.Error("account should be verified after following the mailed link")
	}
}

func TestVerifyEmailRejectsExpiredChallenge(t *testing.T) {
	app, database, mailer := newTestApp(t)
	code := signupForVerification(t, app, mailer, "expired@example.com")

	past := time.Now().Add(-time.Minute)
	if err := database.Model(&models.User{}).
		Where("email = ?", "expired@example.com").
		Update("email_otp_expires", past).Error; err != nil {
		t.Fatalf("expire challenge: %v", err)
	}

	response := performJSONRequest(t, app, http.MethodPost, "/api/auth/verify-email", map[string]string{
		"email": "expired@example.com",
		"token": code,
	}, "")
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expired code: expected status 400, got %d", response.StatusCode)
	}
}

func TestResendOTPSupersedesPreviousCode(t *testing.T) {
	app, database, mailer := newTestApp(t)
	firstCode := signupForVerification(t, app, mailer, "resend@example.com")

	response := performJSONRequest(t, app, http.MethodPost, "/api/auth/resend-otp", map[string]string{
		"email": "resend@example.com",
	}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("resend: expected status 200, got %d", response.StatusCode)
	}

	secondCode := mailer.lastVerificationCode("resend@example.com")
	user := loadUserByEmail(t, database, "resend@example.com")
	if user.EmailOTP == nil || *user.EmailOTP != secondCode {
		t.Fatal("resend should store the newly dispatched code")
	}

	if firstCode != secondCode {
		stale := performJSONRequest(t, app, http.MethodPost, "/api/auth/verify-email", map[string]string{
			"email": "resend@example.com",
			"token": firstCode,
		}, "")
		if stale.StatusCode != http.StatusBadRequest {
			t.Errorf("superseded code: expected status 400, got %d", stale.StatusCode)
		}
	}

	current := performJSONRequest(t, app, http.MethodPost, "/api/auth/verify-email", map[string]string{
		"email": "resend@example.com",
		"token": secondCode,
	}, "")
	if current.StatusCode != http.StatusOK {
		t.Errorf("current code: expected status 200, got %d", current.StatusCode)
	}
}

func TestResendOTPErrorCases(t *testing.T) {
	app, database, _ := newTestApp(t)
	createTestUser(t, database, "done@example.com", "secret1", true, false)

	unknown := performJSONRequest(t, app, http.MethodPost, "/api/auth/resend-otp", map[string]string{
		"email": "nobody@example.com",
	}, "")
	if unknown.StatusCode != http.StatusNotFound {
		t.Errorf("unknown email: expected status 404, got %d", unknown.StatusCode)
	}

	verified := performJSONRequest(t, app, http.MethodPost, "/api/auth/resend-otp", map[string]string{
		"email": "done@example.com",
	}, "")
	if verified.StatusCode != http.StatusBadRequest {
		t.Errorf("already verified: expected status 400, got %d", verified.StatusCode)
	}
	if message := readAPIError(t, verified); message != "email already verified" {
		t.Errorf("already verified error = %q", message)
	}
}

func TestResendOTPRateLimited(t *testing.T) {
	app, _, mailer := newTestApp(t)
	signupForVerification(t, app, mailer, "limited@example.com")

	payload := map[string]string{"email": "limited@example.com"}
	for attempt := 0; attempt < resendAttemptsLimit; attempt++ {
		response := performJSONRequest(t, app, http.MethodPost, "/api/auth/resend-otp", payload, "")
		if response.StatusCode != http.StatusOK {
			t.Fatalf("attempt %d: expected status 200, got %d", attempt+1, response.StatusCode)
		}
	}

	limited := performJSONRequest(t, app, http.MethodPost, "/api/auth/resend-otp", payload, "")
	if limited.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 once the window fills, got %d", limited.StatusCode)
	}
	if message := readAPIError(t, limited); message != "too many attempts" {
		t.Errorf("rate limit error = %q", message)
	}
}

func TestVerifyEmailSuccessClearsResendWindow(t *testing.T) {
	app, _, mailer := newTestApp(t)
	signupForVerification(t, app, mailer, "window@example.com")

	payload := map[string]string{"email": "window@example.com"}
	for attempt := 0; attempt < resendAttemptsLimit; attempt++ {
		response := performJSONRequest(t, app, http.MethodPost, "/api/auth/resend-otp", payload, "")
		if response.StatusCode != http.StatusOK {
			t.Fatalf("attempt %d: expected status 200, got %d", attempt+1, response.StatusCode)
		}
	}
	limited := performJSONRequest(t, app, http.MethodPost, "/api/auth/resend-otp", payload, "")
	if limited.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 before verification, got %d", limited.StatusCode)
	}

	verified := performJSONRequest(t, app, http.MethodPost, "/api/auth/verify-email", map[string]string{
		"email": "window@example.com",
		"token": mailer.lastVerificationCode("window@example.com"),
	}, "")
	if verified.StatusCode != http.StatusOK {
		t.Fatalf("verify: expected status 200, got %d", verified.StatusCode)
	}

	// The window is cleared, so the request reaches the service again and
	// fails on the account state instead of the limiter.
	after := performJSONRequest(t, app, http.MethodPost, "/api/auth/resend-otp", payload, "")
	if after.StatusCode != http.StatusBadRequest {
		t.Fatalf("resend after verification: expected status 400, got %d", after.StatusCode)
	}
	if message := readAPIError(t, after); message != "email already verified" {
		t.Errorf("resend after verification error = %q", message)
	}
}
