package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// The auth-entry pages are rendered by the separate frontend; these
// endpoints exist so the session middleware has a place to redirect to and
// away from.
func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "login"})
}

func (handler *Handler) ShowSignupPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "signup"})
}
