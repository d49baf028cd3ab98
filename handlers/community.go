package handlers

import (
	"esports-platform/middleware"
	"esports-platform/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCommunityRoutes(app *fiber.App, communityService *services.CommunityService, jwtSecret string) {
	api := app.Group("/api/community")

	api.Get("/", communityService.GetAllPosts)

	// Posting and liking are tied to an authenticated author.
	secured := api.Group("/", middleware.RequireAuth(jwtSecret))
	secured.Post("/", communityService.CreatePost)
	secured.Post("/:id/like", communityService.LikePost)
}
