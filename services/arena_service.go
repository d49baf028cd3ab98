package services

import (
	"errors"
	"log"
	"strings"

	"esports-platform/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type ArenaService struct {
	DB *gorm.DB
}

func NewArenaService(db *gorm.DB) *ArenaService {
	return &ArenaService{DB: db}
}

type ArenaRequest struct {
	Name      string `json:"name" validate:"required"`
	Location  string `json:"location" validate:"required"`
	Capacity  int    `json:"capacity" validate:"required,min=1"`
	Rate      string `json:"rate"`
	Equipment string `json:"equipment"`
	ImageURL  string `json:"imageUrl"`
}

// GetAllArenas lists venues newest-first, optionally narrowed by ?location=
// equality and a case-insensitive ?search= over name, location and equipment.
func (s *ArenaService) GetAllArenas(c *fiber.Ctx) error {
	db := s.DB.Model(&models.Arena{}).Order("created_at DESC")

	if location := c.Query("location"); location != "" && location != "All Locations" {
		db = db.Where("location = ?", location)
	}
	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
		db = db.Where(
			"LOWER(name) LIKE ? OR LOWER(location) LIKE ? OR LOWER(equipment) LIKE ?",
			term, term, term,
		)
	}

	var arenas []models.Arena
	if err := db.Find(&arenas).Error; err != nil {
		log.Printf("ERROR fetching arenas: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch arenas"})
	}
	return c.JSON(arenas)
}

func (s *ArenaService) GetArenaByID(c *fiber.Ctx) error {
	var arena models.Arena
	if err := s.DB.First(&arena, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": "Arena not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch arena"})
	}
	return c.JSON(arena)
}

func (s *ArenaService) CreateArena(c *fiber.Ctx) error {
	var req ArenaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validationMessage(err)})
	}

	arena := &models.Arena{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Slug:      slug.Make(req.Name),
		Location:  req.Location,
		Capacity:  req.Capacity,
		Rate:      req.Rate,
		Equipment: req.Equipment,
		ImageURL:  req.ImageURL,
	}
	if err := s.DB.Create(arena).Error; err != nil {
		log.Printf("ERROR creating arena: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "DB insert failed"})
	}
	return c.Status(201).JSON(arena)
}
