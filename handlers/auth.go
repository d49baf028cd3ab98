package handlers

import (
	"esports-platform/middleware"
	"esports-platform/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, authService *services.AuthService) {
	api := app.Group("/api/auth")

	api.Post("/register", authService.Register)
	api.Post("/login", authService.Login)

	// Profile lookup needs a verified principal.
	api.Get("/me", middleware.RequireAuth(authService.Secret), authService.Me)
}
