package services

import (
	"net/http"
	"testing"
	"time"

	"esports-platform/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTournamentApp(t *testing.T) (*fiber.App, *TournamentService) {
	t.Helper()
	svc := NewTournamentService(setupTestDB(t))

	app := fiber.New()
	app.Get("/api/tournaments", svc.GetAllTournaments)
	app.Get("/api/tournaments/:id", svc.GetTournamentByID)
	app.Post("/api/tournaments", svc.CreateTournament)
	app.Put("/api/tournaments/:id", svc.UpdateTournament)
	app.Delete("/api/tournaments/:id", svc.DeleteTournament)
	app.Post("/api/tournaments/:id/image", svc.UploadTournamentImage)
	return app, svc
}

func TestCreateTournament(t *testing.T) {
	app, _ := newTournamentApp(t)

	resp := doJSON(t, app, "POST", "/api/tournaments", validTournamentBody(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Tournament
	decodeJSON(t, resp, &created)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Test Cup", created.Title)
	assert.Equal(t, "test-cup", created.Slug)
	assert.Equal(t, "TBD", created.Prize)
	assert.Equal(t, "Free", created.EntryFee)
	assert.Equal(t, models.RegistrationOpen, created.RegistrationStatus)
	assert.Equal(t, 0, created.Participants)
	assert.Equal(t, models.DefaultTournamentImage, created.ImageURL)
}

func TestCreateTournamentValidation(t *testing.T) {
	app, _ := newTournamentApp(t)

	t.Run("missing required field", func(t *testing.T) {
		body := validTournamentBody()
		delete(body, "title")
		resp := doJSON(t, app, "POST", "/api/tournaments", body, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("maxParticipants below two", func(t *testing.T) {
		for _, n := range []int{0, 1} {
			body := validTournamentBody()
			body["maxParticipants"] = n
			resp := doJSON(t, app, "POST", "/api/tournaments", body, "")
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "maxParticipants=%d", n)
		}
	})

	t.Run("maxParticipants of exactly two", func(t *testing.T) {
		body := validTournamentBody()
		body["maxParticipants"] = 2
		resp := doJSON(t, app, "POST", "/api/tournaments", body, "")
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("malformed contact email", func(t *testing.T) {
		body := validTournamentBody()
		body["contactEmail"] = "not-an-email"
		resp := doJSON(t, app, "POST", "/api/tournaments", body, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown registration status", func(t *testing.T) {
		body := validTournamentBody()
		body["registrationStatus"] = "Paused"
		resp := doJSON(t, app, "POST", "/api/tournaments", body, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetTournament(t *testing.T) {
	app, _ := newTournamentApp(t)

	resp := doJSON(t, app, "POST", "/api/tournaments", validTournamentBody(), "")
	var created models.Tournament
	decodeJSON(t, resp, &created)

	resp = doJSON(t, app, "GET", "/api/tournaments/"+created.ID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.Tournament
	decodeJSON(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Title, fetched.Title)

	resp = doJSON(t, app, "GET", "/api/tournaments/does-not-exist", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListTournamentsFiltersAndOrder(t *testing.T) {
	app, _ := newTournamentApp(t)

	titles := []string{"Spring Clash", "Summer Showdown", "Autumn Arena Night"}
	games := []string{"CS2", "Dota 2", "CS2"}
	statuses := []string{"Open", "Closed", "Open"}
	for i := range titles {
		body := validTournamentBody()
		body["title"] = titles[i]
		body["game"] = games[i]
		body["registrationStatus"] = statuses[i]
		resp := doJSON(t, app, "POST", "/api/tournaments", body, "")
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		time.Sleep(5 * time.Millisecond) // distinct created_at for ordering
	}

	t.Run("newest first", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/api/tournaments", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var list []models.Tournament
		decodeJSON(t, resp, &list)
		require.Len(t, list, 3)
		assert.Equal(t, "Autumn Arena Night", list[0].Title)
		assert.Equal(t, "Spring Clash", list[2].Title)
	})

	t.Run("filter by game", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/api/tournaments?game=CS2", nil, "")
		var list []models.Tournament
		decodeJSON(t, resp, &list)
		assert.Len(t, list, 2)
	})

	t.Run("filter by status", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/api/tournaments?status=Closed", nil, "")
		var list []models.Tournament
		decodeJSON(t, resp, &list)
		require.Len(t, list, 1)
		assert.Equal(t, "Summer Showdown", list[0].Title)
	})

	t.Run("case-insensitive search", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/api/tournaments?search=SHOWdown", nil, "")
		var list []models.Tournament
		decodeJSON(t, resp, &list)
		require.Len(t, list, 1)
		assert.Equal(t, "Summer Showdown", list[0].Title)
	})

	t.Run("all-sentinel passes everything", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/api/tournaments?game=All%20Games&status=All%20Statuses", nil, "")
		var list []models.Tournament
		decodeJSON(t, resp, &list)
		assert.Len(t, list, 3)
	})
}

func TestUpdateTournament(t *testing.T) {
	app, _ := newTournamentApp(t)

	resp := doJSON(t, app, "POST", "/api/tournaments", validTournamentBody(), "")
	var created models.Tournament
	decodeJSON(t, resp, &created)

	t.Run("full replace", func(t *testing.T) {
		body := validTournamentBody()
		body["title"] = "Renamed Cup"
		body["prize"] = "$5,000"
		resp := doJSON(t, app, "PUT", "/api/tournaments/"+created.ID, body, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated models.Tournament
		decodeJSON(t, resp, &updated)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Renamed Cup", updated.Title)
		assert.Equal(t, "$5,000", updated.Prize)
		assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	})

	t.Run("validators re-run on update", func(t *testing.T) {
		body := validTournamentBody()
		body["maxParticipants"] = 1
		resp := doJSON(t, app, "PUT", "/api/tournaments/"+created.ID, body, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown id", func(t *testing.T) {
		resp := doJSON(t, app, "PUT", "/api/tournaments/missing", validTournamentBody(), "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteTournament(t *testing.T) {
	app, _ := newTournamentApp(t)

	resp := doJSON(t, app, "POST", "/api/tournaments", validTournamentBody(), "")
	var created models.Tournament
	decodeJSON(t, resp, &created)

	resp = doJSON(t, app, "DELETE", "/api/tournaments/"+created.ID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Tournament deleted successfully", body["message"])

	resp = doJSON(t, app, "DELETE", "/api/tournaments/"+created.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSeedSampleData(t *testing.T) {
	app, svc := newTournamentApp(t)

	require.NoError(t, SeedSampleData(svc.DB))

	resp := doJSON(t, app, "GET", "/api/tournaments", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []models.Tournament
	decodeJSON(t, resp, &list)
	assert.Len(t, list, 6, "empty store serves the fixed sample set, not an empty array")

	// Seeding again must not duplicate.
	require.NoError(t, SeedSampleData(svc.DB))
	resp = doJSON(t, app, "GET", "/api/tournaments", nil, "")
	decodeJSON(t, resp, &list)
	assert.Len(t, list, 6)
}
