package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zenithfest/zenith/internal/models"
	"github.com/zenithfest/zenith/internal/services"
)

var errStaleSession = errors.New("stale session token")

// authenticateRequest resolves the session cookie into an account. Absence,
// bad signature, expiry and a stale session version all fail the same way.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	claims, err := services.ParseSessionToken(handler.secretKey, c.Cookies(authCookieName), time.Now())
	if err != nil {
		return nil, err
	}

	user, err := handler.accountService.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if claims.SessionVersion != user.SessionVersion {
		return nil, errStaleSession
	}

	return &user, nil
}
