package services

import (
	"fmt"
	"log"
	"time"

	"esports-platform/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// SeedSampleData inserts the showcase datasets into any table that is still
// empty. It runs once at startup so a fresh deployment never serves empty
// listings; it never touches tables that already hold data and it never
// substitutes data on read errors.
func SeedSampleData(db *gorm.DB) error {
	if err := seedTournaments(db); err != nil {
		return fmt.Errorf("seeding tournaments: %w", err)
	}
	if err := seedArenas(db); err != nil {
		return fmt.Errorf("seeding arenas: %w", err)
	}
	if err := seedGallery(db); err != nil {
		return fmt.Errorf("seeding gallery: %w", err)
	}
	if err := seedCommunity(db); err != nil {
		return fmt.Errorf("seeding community: %w", err)
	}
	return nil
}

func seedTournaments(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Tournament{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := sampleTournaments()
	for i := range samples {
		if err := db.Create(&samples[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Seeded %d sample tournaments", len(samples))
	return nil
}

func sampleTournaments() []models.Tournament {
	type sample struct {
		title, game, prize, entryFee, location, status string
		participants, maxParticipants                  int
		date                                           time.Time
		image                                          string
	}
	fixtures := []sample{
		{"Global Masters Series", "League of Legends", "$50,000", "$25", "Online", models.RegistrationOpen, 128, 128, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), "https://picsum.photos/800/450?random=7"},
		{"Cyber Strike Championship", "CS2", "$30,000", "$20", "Los Angeles, USA", models.RegistrationOpen, 64, 64, time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC), "https://picsum.photos/800/450?random=8"},
		{"Battle Royale Invitational", "Fortnite", "$25,000", "Free", "Online", models.RegistrationClosed, 100, 100, time.Date(2025, time.May, 28, 0, 0, 0, 0, time.UTC), "https://picsum.photos/800/450?random=9"},
		{"Fighting Masters Tournament", "Street Fighter 6", "$15,000", "$15", "Tokyo, Japan", models.RegistrationOpen, 32, 32, time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC), "https://picsum.photos/800/450?random=10"},
		{"MOBA Pro League Season 5", "Dota 2", "$100,000", "Invitation Only", "Berlin, Germany", models.RegistrationInvitation, 16, 16, time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC), "https://picsum.photos/800/450?random=11"},
		{"Racing Simulation Cup", "Gran Turismo 7", "$20,000", "$10", "Online", models.RegistrationOpen, 48, 48, time.Date(2025, time.July, 25, 0, 0, 0, 0, time.UTC), "https://picsum.photos/800/450?random=12"},
	}

	tournaments := make([]models.Tournament, 0, len(fixtures))
	for _, sp := range fixtures {
		tournaments = append(tournaments, models.Tournament{
			ID:                 uuid.NewString(),
			Title:              sp.title,
			Slug:               slug.Make(sp.title),
			Game:               sp.game,
			Prize:              sp.prize,
			EntryFee:           sp.entryFee,
			Date:               sp.date,
			Location:           sp.location,
			RegistrationStatus: sp.status,
			MaxParticipants:    sp.maxParticipants,
			Participants:       sp.participants,
			Description:        fmt.Sprintf("%s — the flagship %s event of the season.", sp.title, sp.game),
			ImageURL:           sp.image,
			ContactEmail:       "events@esports-platform.gg",
		})
	}
	return tournaments
}

func seedArenas(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Arena{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	arenas := []models.Arena{
		{Name: "Quantum Stadium Tokyo", Location: "Tokyo, Japan", Capacity: 2500, Rate: "$8,500/day", Equipment: "120 High-End Gaming PCs, 4K Video Wall, Broadcast Equipment", ImageURL: "https://images.unsplash.com/photo-1511512578047-dfb367046420?q=80&w=2071"},
		{Name: "Neo Arena Berlin", Location: "Berlin, Germany", Capacity: 1800, Rate: "$6,200/day", Equipment: "80 Gaming Stations, 360° LED Displays, Audio System", ImageURL: "https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3?q=80&w=2070"},
		{Name: "Cyber Coliseum LA", Location: "Los Angeles, USA", Capacity: 3200, Rate: "$12,000/day", Equipment: "150 Gaming Setups, Holographic Displays, Full Production Studio", ImageURL: "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?q=80&w=2070"},
		{Name: "Digital Dome Seoul", Location: "Seoul, South Korea", Capacity: 2200, Rate: "$7,800/day", Equipment: "100 Gaming PCs, 360° Projection System, Network Infrastructure", ImageURL: "https://images.unsplash.com/photo-1603539947678-cd3954ed515d?q=80&w=2070"},
	}
	for i := range arenas {
		arenas[i].ID = uuid.NewString()
		arenas[i].Slug = slug.Make(arenas[i].Name)
		if err := db.Create(&arenas[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Seeded %d sample arenas", len(arenas))
	return nil
}

func seedGallery(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.GalleryItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []models.GalleryItem{
		{Title: "League of Legends World Finals", Event: "Global Masters Series 2024", EventDate: "March, 2024", Description: "The final match between East and West champions.", ImageURL: "https://picsum.photos/800/600?random=1", Category: models.GalleryCategoryTournament},
		{Title: "Grand Stage Opening", Event: "Cyber Arena Launch", EventDate: "January, 2024", Description: "Opening ceremony of the new flagship venue.", ImageURL: "https://picsum.photos/800/600?random=2", Category: models.GalleryCategoryVenue},
		{Title: "Game Announcement", Event: "Developer Conference", EventDate: "November, 2024", Description: "Developers revealing their upcoming esports title to excited fans.", ImageURL: "https://picsum.photos/800/600?random=11", Category: models.GalleryCategoryConference},
		{Title: "Championship Team Photo", Event: "Winter Championship", EventDate: "December, 2024", Description: "The winning team's official photo with their trophy.", ImageURL: "https://picsum.photos/800/600?random=12", Category: models.GalleryCategoryTournament},
	}
	for i := range items {
		items[i].ID = uuid.NewString()
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Seeded %d sample gallery items", len(items))
	return nil
}

func seedCommunity(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.CommunityPost{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	posts := []models.CommunityPost{
		{
			Title:      "Tips for Improving Your APM in RTS Games",
			Content:    "After years of competitive play, I've developed some techniques that dramatically improved my Actions Per Minute.",
			AuthorName: "ProGamerX", AuthorAvatar: models.AvatarURL("ProGamerX"), AuthorRole: "Pro Player",
			Tags: []string{"Game Strategies", "Tips", "RTS"}, Likes: 124, Comments: 43,
		},
		{
			Title:      "Looking for Team Members - CS2 Tournament",
			Content:    "Our team needs two more players for the upcoming Cyber Strike Regional Championship.",
			AuthorName: "TeamCaptain", AuthorAvatar: models.AvatarURL("TeamCaptain"), AuthorRole: "Team Leader",
			Tags: []string{"Team Recruitment", "CS2", "Tournament"}, Likes: 56, Comments: 38,
		},
	}
	for i := range posts {
		posts[i].ID = uuid.NewString()
		if err := db.Create(&posts[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Seeded %d sample community posts", len(posts))
	return nil
}
