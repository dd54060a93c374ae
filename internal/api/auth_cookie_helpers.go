package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zenithfest/zenith/internal/models"
	"github.com/zenithfest/zenith/internal/services"
)

func (handler *Handler) setAuthCookie(c *fiber.Ctx, user *models.User) error {
	token, err := services.BuildSessionToken(handler.secretKey, user, services.DefaultSessionTokenTTL, time.Now())
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Strict",
		MaxAge:   int(services.DefaultSessionTokenTTL.Seconds()),
		Expires:  time.Now().Add(services.DefaultSessionTokenTTL),
	})
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Strict",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
