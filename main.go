package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"esports-platform/config"
	"esports-platform/handlers"
	"esports-platform/middleware"
	"esports-platform/models"
	"esports-platform/services"
	"esports-platform/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	cfg := config.Load()

	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // image uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Tournament{},
		&models.User{},
		&models.Arena{},
		&models.GalleryItem{},
		&models.CommunityPost{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	r2Active, err := utils.InitR2()
	if err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}
	if !r2Active {
		if err := utils.EnsureUploadDir(); err != nil {
			log.Fatal("failed to ensure upload dir:", err)
		}
		log.Println("⚠️  R2 not configured, storing uploads on local disk")
	}

	if cfg.SeedSampleData {
		if err := services.SeedSampleData(db); err != nil {
			log.Fatal("failed to seed sample data:", err)
		}
	}

	tournamentService := services.NewTournamentService(db)
	authService := services.NewAuthService(db, cfg.JWTSecret)
	arenaService := services.NewArenaService(db)
	galleryService := services.NewGalleryService(db)
	communityService := services.NewCommunityService(db)

	// Attach a principal whenever a valid token arrives; routes that need
	// one enforce it with RequireAuth in their own setup.
	app.Use(middleware.OptionalAuth(cfg.JWTSecret))

	handlers.SetupTournamentRoutes(app, tournamentService)
	handlers.SetupAuthRoutes(app, authService)
	handlers.SetupArenaRoutes(app, arenaService)
	handlers.SetupGalleryRoutes(app, galleryService, cfg.JWTSecret)
	handlers.SetupCommunityRoutes(app, communityService, cfg.JWTSecret)

	app.Static("/uploads", "./uploads")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Esports Tournament Platform API")
	})

	tournamentService.StartDeadlineScheduler()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", cfg.Port)
	log.Println("✅ Registration deadline scheduler running (every 1m)")

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
