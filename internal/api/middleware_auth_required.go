package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired gates protected routes. API routes answer 401 JSON, page
// routes redirect to the login page.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		if isAPIPath(c.Path()) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

// RedirectIfAuthenticated keeps signed-in users away from the auth-entry
// pages.
func (handler *Handler) RedirectIfAuthenticated(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/me", fiber.StatusSeeOther)
	}
	return c.Next()
}

// OnboardingRequired additionally gates routes that assume a completed
// profile, such as team membership.
func (handler *Handler) OnboardingRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	if !user.OnboardingCompleted {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "onboarding required"})
	}
	return c.Next()
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
