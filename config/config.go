package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything main needs to wire the service. It is read once at
// startup from the environment (and a local .env when present).
type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTTTL        time.Duration
	APIKey        string
	PublicBaseURL string

	CloudinaryURL string
	UploadDir     string
	BackupDir     string
	BackupKeep    time.Duration

	FirebaseCredentialsJSON string
	FirebaseProjectID       string

	RealtimeEnabled bool
}

// Load reads the environment. Only JWT_SECRET is mandatory.
func Load() (*Config, error) {
	// Load .env locally
	_ = godotenv.Load()

	cfg := &Config{
		Port:                    getenv("PORT", "8080"),
		DatabaseURL:             databaseURL(),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		APIKey:                  os.Getenv("API_KEY"),
		PublicBaseURL:           strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		CloudinaryURL:           os.Getenv("CLOUDINARY_URL"),
		UploadDir:               getenv("UPLOAD_DIR", "./uploads"),
		BackupDir:               os.Getenv("BACKUP_DIR"),
		FirebaseCredentialsJSON: os.Getenv("FIREBASE_CREDENTIALS_JSON"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	var err error
	if cfg.JWTTTL, err = time.ParseDuration(getenv("JWT_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	if cfg.BackupKeep, err = time.ParseDuration(getenv("BACKUP_RETENTION", "96h")); err != nil {
		return nil, fmt.Errorf("invalid BACKUP_RETENTION: %w", err)
	}
	if cfg.RealtimeEnabled, err = strconv.ParseBool(getenv("REALTIME_ENABLED", "true")); err != nil {
		return nil, fmt.Errorf("invalid REALTIME_ENABLED: %w", err)
	}
	return cfg, nil
}

// FirebaseEnabled reports whether Google sign-in can be offered.
func (c *Config) FirebaseEnabled() bool {
	return c.FirebaseCredentialsJSON != "" && c.FirebaseProjectID != ""
}

func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getenv("DB_NAME", "tribal_art"),
		getenv("DB_PORT", "5432"),
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
