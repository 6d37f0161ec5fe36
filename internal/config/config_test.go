package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/rentahome?sslmode=disable")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("GOOGLE_CLIENT_IDS", "client-1.apps.googleusercontent.com,client-2.apps.googleusercontent.com")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.BrowseCacheTTL)
	assert.Len(t, cfg.GoogleClientIDs, 2)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/rentahome")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GOOGLE_CLIENT_IDS", "client-1")

	_, err := Load()
	assert.Error(t, err)
}
