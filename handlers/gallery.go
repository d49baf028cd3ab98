package handlers

import (
	"esports-platform/middleware"
	"esports-platform/services"

	"github.com/gofiber/fiber/v2"
)

func SetupGalleryRoutes(app *fiber.App, galleryService *services.GalleryService, jwtSecret string) {
	api := app.Group("/api/gallery")

	api.Get("/", galleryService.GetAllGalleryItems)

	// Publishing carries an uploader identity.
	api.Post("/", middleware.RequireAuth(jwtSecret), galleryService.CreateGalleryItem)
}
