package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/login", handler.RedirectIfAuthenticated, handler.ShowLoginPage)
	app.Get("/signup", handler.RedirectIfAuthenticated, handler.ShowSignupPage)
	app.Get("/verify-email", handler.VerifyEmail)
	app.Get("/me", handler.AuthRequired, handler.Me)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", handler.Signup)
	auth.Post("/login", handler.Login)
	auth.Post("/verify-email", handler.VerifyEmail)
	auth.Post("/resend-otp", handler.ResendOTP)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	api.Get("/events", handler.ListEvents)
	api.Get("/events/:slug", handler.GetEvent)

	api.Get("/me", handler.AuthRequired, handler.Me)
	api.Post("/onboarding", handler.AuthRequired, handler.CompleteOnboarding)

	teams := api.Group("/teams", handler.AuthRequired, handler.OnboardingRequired)
	teams.Get("/mine", handler.MyTeam)
	teams.Post("", handler.CreateTeam)
	teams.Post("/join", handler.JoinTeam)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
