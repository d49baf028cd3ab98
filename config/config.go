package config

import (
	"log"
	"os"
	"strings"
)

// Config holds every environment setting the service reads. It is built once
// in main and passed down explicitly; nothing else touches os.Getenv.
type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	AllowedOrigins []string
	SeedSampleData bool
}

// Load reads the environment into a Config. DATABASE_URL and JWT_SECRET are
// mandatory and missing either one aborts startup — there is deliberately no
// built-in signing secret to fall back on.
func Load() Config {
	return Config{
		Port:           getenv("PORT", "5000"),
		DatabaseURL:    must("DATABASE_URL"),
		JWTSecret:      must("JWT_SECRET"),
		AllowedOrigins: splitOrigins(getenv("ALLOWED_ORIGINS", "http://localhost:3000")),
		SeedSampleData: strings.ToLower(os.Getenv("SEED_SAMPLE_DATA")) != "false",
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func must(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("%s environment variable not set", key)
	}
	return v
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
