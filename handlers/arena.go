package handlers

import (
	"esports-platform/services"

	"github.com/gofiber/fiber/v2"
)

func SetupArenaRoutes(app *fiber.App, arenaService *services.ArenaService) {
	api := app.Group("/api/arenas")

	api.Get("/", arenaService.GetAllArenas)
	api.Get("/:id", arenaService.GetArenaByID)
	api.Post("/", arenaService.CreateArena)
}
