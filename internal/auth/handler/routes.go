package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes mounts the auth API. Rate limiting lives here as an outer
// middleware keyed by client address; the core keeps no rate state.
func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	api := app.Group("/api/v1")

	strict := limiter.New(limiter.Config{Max: 3, Expiration: time.Minute})
	normal := limiter.New(limiter.Config{Max: 10, Expiration: time.Minute})

	api.Post("/register", strict, h.Register)
	api.Post("/login", normal, h.Login)
	api.Post("/refresh", h.Refresh)
	api.Post("/logout", h.Logout)
	api.Post("/forgot-password", strict, h.ForgotPassword)
	api.Post("/reset-password", normal, h.ResetPassword)
	api.Post("/verify-email", h.VerifyEmail)

	authed := api.Group("", h.RequireAuth())
	authed.Get("/me", h.Me)
	authed.Post("/change-password", h.ChangePassword)
}
