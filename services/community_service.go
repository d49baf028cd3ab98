package services

import (
	"errors"
	"log"
	"strings"

	"esports-platform/middleware"
	"esports-platform/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunityService struct {
	DB *gorm.DB
}

func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{DB: db}
}

type CommunityPostRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
}

// GetAllPosts lists posts newest-first. ?tag= keeps posts carrying the tag
// (case-insensitive); ?search= substring-matches title, content and author.
func (s *CommunityService) GetAllPosts(c *fiber.Ctx) error {
	db := s.DB.Model(&models.CommunityPost{}).Order("created_at DESC")

	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
		db = db.Where(
			"LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(author_name) LIKE ?",
			term, term, term,
		)
	}

	var posts []models.CommunityPost
	if err := db.Find(&posts).Error; err != nil {
		log.Printf("ERROR fetching community posts: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch posts"})
	}

	// Tags live in a serialized JSON column, so tag filtering happens here
	// rather than in SQL.
	if tag := c.Query("tag"); tag != "" && tag != "All Topics" {
		filtered := posts[:0]
		for _, p := range posts {
			if hasTag(p.Tags, tag) {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}
	return c.JSON(posts)
}

// CreatePost publishes a post authored by the verified principal. The route
// sits behind RequireAuth, so anonymous posts can't happen.
func (s *CommunityService) CreatePost(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Not authenticated"})
	}

	var req CommunityPostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validationMessage(err)})
	}

	post := &models.CommunityPost{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Content:      req.Content,
		AuthorID:     principal.ID,
		AuthorName:   principal.Username,
		AuthorAvatar: models.AvatarURL(principal.Username),
		AuthorRole:   principal.Role,
		Tags:         req.Tags,
	}
	if err := s.DB.Create(post).Error; err != nil {
		log.Printf("ERROR creating community post: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "DB insert failed"})
	}
	return c.Status(201).JSON(post)
}

// LikePost bumps the like counter by one.
func (s *CommunityService) LikePost(c *fiber.Ctx) error {
	var post models.CommunityPost
	if err := s.DB.First(&post, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": "Post not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch post"})
	}

	post.Likes++
	if err := s.DB.Save(&post).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "DB update failed"})
	}
	return c.JSON(post)
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
