package services

import (
	"net/http"
	"testing"

	"esports-platform/middleware"
	"esports-platform/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGalleryApp(t *testing.T) *fiber.App {
	t.Helper()
	db := setupTestDB(t)
	authSvc := NewAuthService(db, testSecret)
	gallerySvc := NewGalleryService(db)

	app := fiber.New()
	app.Post("/api/auth/register", authSvc.Register)
	app.Get("/api/gallery", gallerySvc.GetAllGalleryItems)
	app.Post("/api/gallery", middleware.RequireAuth(testSecret), gallerySvc.CreateGalleryItem)
	return app
}

func TestCreateGalleryItemRequiresAuth(t *testing.T) {
	app := newGalleryApp(t)

	resp := doJSON(t, app, "POST", "/api/gallery", map[string]any{
		"title":    "Finals crowd",
		"category": "Tournament",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGalleryCategoryFilter(t *testing.T) {
	app := newGalleryApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", registerBody("curator", "curator@x.com"), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var reg struct {
		Token string `json:"token"`
	}
	decodeJSON(t, resp, &reg)

	for _, item := range []map[string]any{
		{"title": "Finals crowd", "event": "Winter Championship", "category": "Tournament", "image": "https://picsum.photos/800/600?random=1"},
		{"title": "New venue tour", "event": "Cyber Arena Launch", "category": "Venue", "image": "https://picsum.photos/800/600?random=2"},
	} {
		resp := doJSON(t, app, "POST", "/api/gallery", item, reg.Token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	t.Run("unknown category rejected", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/gallery", map[string]any{
			"title":    "Bad category",
			"category": "Selfie",
		}, reg.Token)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("category equality", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/api/gallery?category=Venue", nil, "")
		var list []models.GalleryItem
		decodeJSON(t, resp, &list)
		require.Len(t, list, 1)
		assert.Equal(t, "New venue tour", list[0].Title)
	})

	t.Run("All passes everything", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/api/gallery?category=All", nil, "")
		var list []models.GalleryItem
		decodeJSON(t, resp, &list)
		assert.Len(t, list, 2)
	})
}
