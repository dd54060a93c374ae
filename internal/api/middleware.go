package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zenithfest/zenith/internal/models"
)

// Session cookie contract: HTTP-only, SameSite=Strict, Secure in
// production, 7-day max-age, path "/".
const (
	authCookieName = "auth-token"
	contextUserKey = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
