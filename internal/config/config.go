package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config stores runtime configuration loaded from environment variables.
// Values are passed explicitly into constructors; nothing here is a global.
type Config struct {
	Port        string
	DBPath      string
	DatabaseURL string
	JWTSecret   string
	AdminSecret string
	TokenTTL    time.Duration
	StaticDir   string
	Location    *time.Location
}

// Load reads configuration values and prepares defaults where applicable.
// A .env file is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	location, err := time.LoadLocation(getenvDefault("TZ", "UTC"))
	if err != nil {
		log.Printf("config: invalid TZ %q, falling back to UTC: %v", os.Getenv("TZ"), err)
		location = time.UTC
	}

	return &Config{
		Port:        getenvDefault("PORT", "8080"),
		DBPath:      getenvDefault("DB_PATH", filepath.Join("data", "medtrack.db")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getenvDefault("JWT_SECRET", "change_me_in_production"),
		AdminSecret: os.Getenv("ADMIN_SECRET"),
		TokenTTL:    24 * time.Hour,
		StaticDir:   getenvDefault("STATIC_DIR", filepath.Join("web", "static")),
		Location:    location,
	}
}

func getenvDefault(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
