package services

import (
	"log"

	"esports-platform/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryService struct {
	DB *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{DB: db}
}

type GalleryItemRequest struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Event       string `json:"event" form:"event"`
	EventDate   string `json:"date" form:"date"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category" validate:"required,oneof=Tournament Venue Conference Event"`
	ImageURL    string `json:"image" form:"image"`
}

// GetAllGalleryItems lists items newest-first; ?category= filters by exact
// category ("All" passes everything, matching the UI's filter chips).
func (s *GalleryService) GetAllGalleryItems(c *fiber.Ctx) error {
	db := s.DB.Model(&models.GalleryItem{}).Order("created_at DESC")

	if category := c.Query("category"); category != "" && category != "All" {
		db = db.Where("category = ?", category)
	}

	var items []models.GalleryItem
	if err := db.Find(&items).Error; err != nil {
		log.Printf("ERROR fetching gallery items: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch gallery items"})
	}
	return c.JSON(items)
}

// CreateGalleryItem accepts multipart form data with an optional "photo"
// file, or plain JSON carrying an image URL. An uploaded file wins over a
// provided URL.
func (s *GalleryService) CreateGalleryItem(c *fiber.Ctx) error {
	var req GalleryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validationMessage(err)})
	}

	imageURL := req.ImageURL
	if fileHeader, err := c.FormFile("photo"); err == nil && fileHeader.Size > 0 {
		url, err := storeImage(fileHeader, "gallery")
		if err != nil {
			log.Printf("ERROR storing gallery image: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "failed to store image"})
		}
		imageURL = url
	}

	item := &models.GalleryItem{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Event:       req.Event,
		EventDate:   req.EventDate,
		Description: req.Description,
		ImageURL:    imageURL,
		Category:    req.Category,
	}
	if err := s.DB.Create(item).Error; err != nil {
		log.Printf("ERROR creating gallery item: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "DB insert failed"})
	}
	return c.Status(201).JSON(item)
}
