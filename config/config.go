package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	Environment      string
	DatabasePath     string
	APIBaseURL       string
	AutoSyncSchedule string // cron spec; empty disables the scheduler
}

// Load reads .env (when present) and resolves the configuration from the
// environment with development defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return Config{
		Port:             getEnv("PORT", "3000"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		DatabasePath:     getEnv("DB_PATH", "barbershop.db"),
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:3000/api"),
		AutoSyncSchedule: os.Getenv("AUTO_SYNC_SCHEDULE"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
