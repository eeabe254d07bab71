package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/art")
	t.Setenv("PUBLIC_BASE_URL", "https://api.example.com/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "postgres://u:p@db:5432/art", cfg.DatabaseURL)
	assert.Equal(t, "https://api.example.com", cfg.PublicBaseURL)
	assert.True(t, cfg.RealtimeEnabled)
	assert.False(t, cfg.FirebaseEnabled())
}

func TestLoadBuildsDSNFromParts(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_USER", "art")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "store")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "host=pg user=art password=pw dbname=store port=6543 sslmode=disable", cfg.DatabaseURL)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "forever")
	_, err := Load()
	assert.Error(t, err)
}
