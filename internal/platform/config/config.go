package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName   string
	HTTPPort      string
	PostgresDSN   string
	MigrationsDir string
	AuthJWTSecret string
}

// Load reads configuration from the environment, with a best-effort .env
// file for local development.
func Load() (Config, error) {
	_ = godotenv.Load()

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "syncoapi"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	migrations := os.Getenv("MIGRATIONS_DIR")
	if migrations == "" {
		migrations = "migrations"
	}

	return Config{
		ServiceName:   service,
		HTTPPort:      port,
		PostgresDSN:   strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		MigrationsDir: migrations,
		AuthJWTSecret: os.Getenv("AUTH_JWT_SECRET"),
	}, nil
}
