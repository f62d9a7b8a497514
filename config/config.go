package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds everything the reminder binaries need from the environment.
type AppConfig struct {
	FirebaseProjectID   string
	FirebaseCredentials string
	Timezone            string // IANA zone the due-date comparison runs in
	CronSpec            string // daemon only
	HealthAddr          string // daemon only
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.FirebaseCredentials = os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if cfg.FirebaseCredentials == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is not set")
	}

	cfg.FirebaseProjectID = os.Getenv("FIREBASE_PROJECT_ID")
	if cfg.FirebaseProjectID == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID is not set")
	}

	cfg.Timezone = os.Getenv("REMINDER_TIMEZONE")
	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Dhaka" // Default: app's home market
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid REMINDER_TIMEZONE %q: %w", cfg.Timezone, err)
	}

	cfg.CronSpec = os.Getenv("REMINDER_CRON_SPEC")
	if cfg.CronSpec == "" {
		cfg.CronSpec = "0 10 * * *" // Default: 10:00 AM daily
	}

	cfg.HealthAddr = os.Getenv("HEALTH_ADDR")
	if cfg.HealthAddr == "" {
		cfg.HealthAddr = ":8090"
	}

	return cfg, nil
}

// Location resolves the configured timezone. Load has already validated it.
func (c *AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
