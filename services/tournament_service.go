package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"esports-platform/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type TournamentService struct {
	DB *gorm.DB
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{DB: db}
}

// TournamentRequest is the write payload for both create and update. Update
// uses full-replace semantics, so the required set is identical.
type TournamentRequest struct {
	Title                string `json:"title" validate:"required"`
	Game                 string `json:"game" validate:"required"`
	Prize                string `json:"prize"`
	EntryFee             string `json:"entryFee"`
	Date                 string `json:"date" validate:"required"`
	StartTime            string `json:"startTime"`
	EndTime              string `json:"endTime"`
	RegistrationDeadline string `json:"registrationDeadline"`
	Location             string `json:"location" validate:"required"`
	RegistrationStatus   string `json:"registrationStatus" validate:"omitempty,oneof=Open Closed Invitation"`
	MaxParticipants      int    `json:"maxParticipants" validate:"required,min=2"`
	Participants         int    `json:"participants" validate:"omitempty,min=0"`
	Description          string `json:"description" validate:"required"`
	Rules                string `json:"rules"`
	ImageURL             string `json:"imageUrl"`
	ContactEmail         string `json:"contactEmail" validate:"required,email"`
}

// GetAllTournaments lists tournaments newest-first. Optional query params
// game, status and search narrow the result server-side; an absent filter
// (or the UI's "All ..." sentinel) passes everything.
func (s *TournamentService) GetAllTournaments(c *fiber.Ctx) error {
	db := s.DB.Model(&models.Tournament{}).Order("created_at DESC")

	if game := c.Query("game"); game != "" && game != "All Games" {
		db = db.Where("game = ?", game)
	}
	if status := c.Query("status"); status != "" && status != "All Statuses" {
		db = db.Where("registration_status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
		db = db.Where(
			"LOWER(title) LIKE ? OR LOWER(game) LIKE ? OR LOWER(location) LIKE ?",
			term, term, term,
		)
	}

	var tournaments []models.Tournament
	if err := db.Find(&tournaments).Error; err != nil {
		log.Printf("ERROR fetching tournaments: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch tournaments"})
	}
	return c.JSON(tournaments)
}

func (s *TournamentService) GetTournamentByID(c *fiber.Ctx) error {
	var tournament models.Tournament
	if err := s.DB.First(&tournament, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": "Tournament not found"})
		}
		log.Printf("ERROR fetching tournament %s: %v", c.Params("id"), err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch tournament"})
	}
	return c.JSON(tournament)
}

func (s *TournamentService) CreateTournament(c *fiber.Ctx) error {
	var req TournamentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validationMessage(err)})
	}

	tournament, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	tournament.ID = uuid.NewString()

	if err := s.DB.Create(tournament).Error; err != nil {
		log.Printf("ERROR creating tournament: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "DB insert failed"})
	}
	return c.Status(201).JSON(tournament)
}

// UpdateTournament replaces the whole document. Validators run again, so a
// replace that would violate an invariant is rejected the same way create is.
func (s *TournamentService) UpdateTournament(c *fiber.Ctx) error {
	var existing models.Tournament
	if err := s.DB.First(&existing, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": "Tournament not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch tournament"})
	}

	var req TournamentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validationMessage(err)})
	}

	updated, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.DB.Save(updated).Error; err != nil {
		log.Printf("ERROR updating tournament %s: %v", existing.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "DB update failed"})
	}
	return c.JSON(updated)
}

func (s *TournamentService) DeleteTournament(c *fiber.Ctx) error {
	var tournament models.Tournament
	if err := s.DB.First(&tournament, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": "Tournament not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch tournament"})
	}

	if err := s.DB.Delete(&tournament).Error; err != nil {
		log.Printf("ERROR deleting tournament %s: %v", tournament.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "DB delete failed"})
	}
	return c.JSON(fiber.Map{"message": "Tournament deleted successfully"})
}

// UploadTournamentImage stores a multipart "image" file and points the
// tournament's imageUrl at it.
func (s *TournamentService) UploadTournamentImage(c *fiber.Ctx) error {
	var tournament models.Tournament
	if err := s.DB.First(&tournament, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": "Tournament not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch tournament"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "image file is required"})
	}

	url, err := storeImage(fileHeader, "tournaments")
	if err != nil {
		log.Printf("ERROR storing tournament image: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to store image"})
	}

	tournament.ImageURL = url
	if err := s.DB.Save(&tournament).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "DB update failed"})
	}
	return c.JSON(tournament)
}

func (r *TournamentRequest) toModel() (*models.Tournament, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, errors.New("invalid date (use RFC3339 or yyyy-mm-dd)")
	}

	var deadline *time.Time
	if r.RegistrationDeadline != "" {
		d, err := parseDate(r.RegistrationDeadline)
		if err != nil {
			return nil, errors.New("invalid registrationDeadline (use RFC3339 or yyyy-mm-dd)")
		}
		deadline = &d
	}

	prize := r.Prize
	if prize == "" {
		prize = "TBD"
	}
	entryFee := r.EntryFee
	if entryFee == "" {
		entryFee = "Free"
	}
	status := r.RegistrationStatus
	if status == "" {
		status = models.RegistrationOpen
	}
	imageURL := r.ImageURL
	if imageURL == "" {
		imageURL = models.DefaultTournamentImage
	}

	return &models.Tournament{
		Title:                r.Title,
		Slug:                 slug.Make(r.Title),
		Game:                 r.Game,
		Prize:                prize,
		EntryFee:             entryFee,
		Date:                 date,
		StartTime:            r.StartTime,
		EndTime:              r.EndTime,
		RegistrationDeadline: deadline,
		Location:             r.Location,
		RegistrationStatus:   status,
		MaxParticipants:      r.MaxParticipants,
		Participants:         r.Participants,
		Description:          r.Description,
		Rules:                r.Rules,
		ImageURL:             imageURL,
		ContactEmail:         r.ContactEmail,
	}, nil
}
