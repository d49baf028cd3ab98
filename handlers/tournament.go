package handlers

import (
	"esports-platform/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTournamentRoutes(app *fiber.App, tournamentService *services.TournamentService) {
	api := app.Group("/api/tournaments")

	api.Get("/", tournamentService.GetAllTournaments)
	api.Get("/:id", tournamentService.GetTournamentByID)
	api.Post("/", tournamentService.CreateTournament)
	api.Put("/:id", tournamentService.UpdateTournament)
	api.Delete("/:id", tournamentService.DeleteTournament)
	api.Post("/:id/image", tournamentService.UploadTournamentImage)
}
