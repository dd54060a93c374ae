package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/zenithfest/zenith/internal/models"
	"github.com/zenithfest/zenith/internal/services"
)

// profilePayload is the sanitized account view; the password hash and
// challenge state never leave the server.
func profilePayload(user *models.User) fiber.Map {
	return fiber.Map{
		"id":                   user.ID,
		"email":                user.Email,
		"full_name":            user.FullName,
		"phone":                user.Phone,
		"college_name":         user.CollegeName,
		"department":           user.Department,
		"email_verified":       user.EmailVerified,
		"onboarding_completed": user.OnboardingCompleted,
		"paid":                 user.Paid,
	}
}

// respondAccountError maps lifecycle sentinels to the HTTP taxonomy.
// Unmapped errors are logged server-side and reported generically.
func respondAccountError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrDuplicateAccount):
		return apiError(c, fiber.StatusBadRequest, "email already registered")
	case errors.Is(err, services.ErrAccountNotFound):
		return apiError(c, fiber.StatusNotFound, "account not found")
	case errors.Is(err, services.ErrInvalidOrExpiredToken):
		return apiError(c, fiber.StatusBadRequest, "invalid or expired token")
	case errors.Is(err, services.ErrEmailNotVerified):
		return apiError(c, fiber.StatusUnauthorized, "email not verified")
	case errors.Is(err, services.ErrAlreadyVerified):
		return apiError(c, fiber.StatusBadRequest, "email already verified")
	case errors.Is(err, services.ErrAlreadyOnboarded):
		return apiError(c, fiber.StatusBadRequest, "onboarding already completed")
	case errors.Is(err, services.ErrEmailDispatchFailed):
		log.Printf("email dispatch failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to send email")
	default:
		log.Printf("account operation failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
