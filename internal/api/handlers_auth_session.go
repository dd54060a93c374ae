package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/zenithfest/zenith/internal/services"
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	email, password, parseError := parseLoginInput(c)
	if parseError != "" {
		return apiError(c, fiber.StatusBadRequest, parseError)
	}

	user, err := handler.accountService.Login(email, password)
	if err != nil {
		// Unknown email and wrong password share one message so the
		// login form cannot be used to enumerate accounts.
		if errors.Is(err, services.ErrAccountNotFound) || errors.Is(err, services.ErrInvalidPassword) {
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		if errors.Is(err, services.ErrEmailNotVerified) {
			return apiError(c, fiber.StatusUnauthorized, "email not verified")
		}
		return respondAccountError(c, err)
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"ok":   true,
		"user": profilePayload(&user),
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return redirectOrJSON(c, "/login", fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"user": profilePayload(user)})
}
