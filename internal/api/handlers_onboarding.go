package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zenithfest/zenith/internal/services"
)

func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := onboardingInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Phone != "" {
		normalized, err := services.NormalizePhoneNumber(input.Phone, handler.phoneRegion)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid phone number")
		}
		input.Phone = normalized
	}

	updated, err := handler.accountService.CompleteOnboarding(user.ID, services.OnboardingInput{
		FullName:    input.FullName,
		Phone:       input.Phone,
		CollegeName: input.CollegeName,
		Department:  input.Department,
	})
	if err != nil {
		return respondAccountError(c, err)
	}

	// Refresh the cookie so the onboarding claim matches the new state.
	if err := handler.setAuthCookie(c, &updated); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to refresh session")
	}

	return c.JSON(fiber.Map{
		"ok":   true,
		"user": profilePayload(&updated),
	})
}
