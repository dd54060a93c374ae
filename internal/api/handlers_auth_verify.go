package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	resendAttemptsLimit  = 8
	resendAttemptsWindow = 15 * time.Minute
)

// VerifyEmail consumes the pending challenge. It serves both the POSTed
// code form and the mailed GET link.
func (handler *Handler) VerifyEmail(c *fiber.Ctx) error {
	email, code, parseError := parseVerifyEmailInput(c)
	if parseError != "" {
		return apiError(c, fiber.StatusBadRequest, parseError)
	}

	user, err := handler.accountService.VerifyEmail(email, code, time.Now())
	if err != nil {
		return respondAccountError(c, err)
	}

	// The challenge is done, so the resend window no longer applies.
	handler.resendLimiter.reset(requestLimiterKey(c))

	return redirectOrJSON(c, "/login", fiber.Map{
		"ok":   true,
		"user": profilePayload(&user),
	})
}

func (handler *Handler) ResendOTP(c *fiber.Ctx) error {
	now := time.Now()
	limiterKey := requestLimiterKey(c)
	if handler.resendLimiter.tooManyRecent(limiterKey, now, resendAttemptsLimit, resendAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}
	handler.resendLimiter.addAttempt(limiterKey, now, resendAttemptsWindow)

	email, parseError := parseResendOTPInput(c)
	if parseError != "" {
		return apiError(c, fiber.StatusBadRequest, parseError)
	}

	if err := handler.accountService.ResendOTP(email, now); err != nil {
		return respondAccountError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
