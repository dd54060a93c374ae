package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/zenithfest/zenith/internal/services"
)

func (handler *Handler) parseSignupInput(c *fiber.Ctx) (services.SignupInput, string) {
	input := signupInput{}
	if err := c.BodyParser(&input); err != nil {
		return services.SignupInput{}, "invalid input"
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return services.SignupInput{}, "invalid input"
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return services.SignupInput{}, "weak password"
	}

	fullName, err := services.NormalizeProfileField(input.FullName)
	if err != nil {
		return services.SignupInput{}, "full name is required"
	}
	phone, err := services.NormalizePhoneNumber(input.Phone, handler.phoneRegion)
	if err != nil {
		return services.SignupInput{}, "invalid phone number"
	}
	collegeName, err := services.NormalizeProfileField(input.CollegeName)
	if err != nil {
		return services.SignupInput{}, "college name is required"
	}
	department, err := services.NormalizeProfileField(input.Department)
	if err != nil {
		return services.SignupInput{}, "department is required"
	}

	return services.SignupInput{
		Email:       email,
		FullName:    fullName,
		Phone:       phone,
		CollegeName: collegeName,
		Department:  department,
		Password:    password,
	}, ""
}

func parseLoginInput(c *fiber.Ctx) (string, string, string) {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return "", "", "invalid input"
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return "", "", "invalid input"
	}
	return email, password, ""
}

// parseVerifyEmailInput accepts both the POSTed form/JSON body and the
// mailed-link query parameters.
func parseVerifyEmailInput(c *fiber.Ctx) (string, string, string) {
	input := verifyEmailInput{}
	if c.Method() == fiber.MethodGet {
		input.Email = c.Query("email")
		input.Token = c.Query("token")
	} else if err := c.BodyParser(&input); err != nil {
		return "", "", "invalid input"
	}

	email := services.NormalizeAuthEmail(input.Email)
	if email == "" || input.Token == "" {
		return "", "", "invalid input"
	}
	return email, input.Token, ""
}

func parseResendOTPInput(c *fiber.Ctx) (string, string) {
	input := resendOTPInput{}
	if err := c.BodyParser(&input); err != nil {
		return "", "invalid input"
	}

	email := services.NormalizeAuthEmail(input.Email)
	if email == "" {
		return "", "invalid input"
	}
	return email, ""
}

func parseForgotPasswordInput(c *fiber.Ctx) (string, string) {
	input := forgotPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return "", "invalid input"
	}

	email := services.NormalizeAuthEmail(input.Email)
	if email == "" {
		return "", "invalid input"
	}
	return email, ""
}

func parseResetPasswordInput(c *fiber.Ctx) (resetPasswordInput, string) {
	input := resetPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return resetPasswordInput{}, "invalid input"
	}

	if input.Token == "" || input.Password == "" {
		return resetPasswordInput{}, "invalid input"
	}
	if err := services.ValidatePasswordStrength(input.Password); err != nil {
		if errors.Is(err, services.ErrWeakPassword) {
			return resetPasswordInput{}, "weak password"
		}
		return resetPasswordInput{}, "invalid input"
	}
	return input, ""
}
