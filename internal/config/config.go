package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Settings struct {
	Port        string
	DatabaseURL string
	DBPath      string
	JWTSecret   string
	UploadDir   string
}

// Load reads an optional .env file and resolves settings from the
// environment, falling back to local-development defaults.
func Load() Settings {
	_ = godotenv.Load()

	return Settings{
		Port:        getEnv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBPath:      getEnv("DB_PATH", filepath.Join("data", "pda.db")),
		JWTSecret:   getEnv("JWT_SECRET", "default_secret_key"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
