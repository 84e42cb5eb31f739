package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sacco.db", cfg.DatabaseURL)
	assert.Equal(t, "Admin", cfg.LedgerUser)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.True(t, cfg.AllowAllOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "/var/lib/sacco/ledger.db")
	t.Setenv("LEDGER_USER", "Treasurer")
	t.Setenv("RATE_LIMIT_REQUESTS", "25")
	t.Setenv("ALLOWED_ORIGINS", "https://sacco.example.com,https://admin.example.com")
	t.Setenv("ALLOW_ALL_ORIGINS", "false")

	cfg := Load()

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/lib/sacco/ledger.db", cfg.DatabaseURL)
	assert.Equal(t, "Treasurer", cfg.LedgerUser)
	assert.Equal(t, 25, cfg.RateLimitRequests)
	assert.Equal(t, []string{"https://sacco.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
	assert.False(t, cfg.AllowAllOrigins)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	assert.NoError(t, cfg.Validate())

	cfg.Environment = "staging"
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.DatabaseURL = ""
	assert.Error(t, cfg.Validate())
}
