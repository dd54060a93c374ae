package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	resetAttemptsLimit  = 8
	resetAttemptsWindow = 15 * time.Minute

	// One generic reply for existing and unknown accounts alike.
	forgotPasswordMessage = "if that email is registered, a reset link has been sent"
)

func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	now := time.Now()
	limiterKey := requestLimiterKey(c)
	if handler.resetLimiter.tooManyRecent(limiterKey, now, resetAttemptsLimit, resetAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}
	handler.resetLimiter.addAttempt(limiterKey, now, resetAttemptsWindow)

	email, parseError := parseForgotPasswordInput(c)
	if parseError != "" {
		return apiError(c, fiber.StatusBadRequest, parseError)
	}

	if err := handler.accountService.RequestPasswordReset(email, now); err != nil {
		// Storage failure; the generic message would lie here.
		log.Printf("password reset request failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"message": forgotPasswordMessage,
	})
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	input, parseError := parseResetPasswordInput(c)
	if parseError != "" {
		return apiError(c, fiber.StatusBadRequest, parseError)
	}

	if _, err := handler.accountService.ResetPassword(input.Token, input.Password, time.Now()); err != nil {
		return respondAccountError(c, err)
	}

	// The session version was bumped, so every outstanding cookie for the
	// account is now stale; the user signs in with the new password.
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
