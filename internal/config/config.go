package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	// PublicBaseURL (SERVIDOR) is the externally visible base URL, used when
	// building served upload paths.
	PublicBaseURL string
	UploadDir     string

	DatabaseURL string
	RedisURL    string

	MeiliSearchHost string
	MeiliMasterKey  string

	CloudinaryURL string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("CORS_ORIGIN", "http://localhost:3000"),

		PublicBaseURL: getEnv("SERVIDOR", "http://localhost:8080"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		MeiliSearchHost: os.Getenv("MEILISEARCH_HOST"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
	}

	return cfg, nil
}

// Origins splits AllowedOrigins into the list consumed by the CORS middleware.
func (c *Config) Origins() []string {
	return strings.Split(c.AllowedOrigins, ",")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
