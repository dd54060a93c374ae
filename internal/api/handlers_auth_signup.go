package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Signup(c *fiber.Ctx) error {
	input, parseError := handler.parseSignupInput(c)
	if parseError != "" {
		return apiError(c, fiber.StatusBadRequest, parseError)
	}

	user, err := handler.accountService.Signup(input, time.Now())
	if err != nil {
		// On a dispatch failure the account and challenge are already
		// committed; the caller recovers through resend-otp.
		return respondAccountError(c, err)
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":   true,
		"user": profilePayload(&user),
	})
}
