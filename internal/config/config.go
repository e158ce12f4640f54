package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the app reads from the environment.
type Config struct {
	Port        string
	DatabaseDSN string

	JWTSecret string

	CloudinaryURL string

	// Directory where multipart uploads are staged before being
	// pushed to the media store.
	UploadDir string
}

// Load reads .env (if present) and builds the config. Missing optional
// values fall back to development defaults; a missing JWT secret is fatal.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "4000"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=workhive port=5432 sslmode=disable"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		UploadDir:     getEnv("UPLOAD_DIR", os.TempDir()),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
