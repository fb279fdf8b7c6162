package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.RateLimit)
	assert.Equal(t, 20, cfg.Server.RateBurst)
	assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")

	assert.Equal(t, 1000, cfg.Cache.Size)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Empty(t, cfg.Catalog.File)

	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "boxfit_service", cfg.Database.DatabaseName)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "50")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("BOX_CATALOG_FILE", "/etc/boxfit/catalog.yaml")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("API_KEYS", "key-one, key-two")
	t.Setenv("MONGODB_DATABASE", "boxfit_test")
	t.Setenv("CORS_ORIGINS", "https://app.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "/etc/boxfit/catalog.yaml", cfg.Catalog.File)
	assert.True(t, cfg.Auth.Enabled)
	assert.True(t, cfg.Auth.APIKeys["key-one"])
	assert.True(t, cfg.Auth.APIKeys["key-two"])
	assert.Equal(t, "boxfit_test", cfg.Database.DatabaseName)
	assert.Contains(t, cfg.Server.CORSOrigins, "https://app.example.com")
	assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("AUTH_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 10, cfg.Server.RateLimit)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Auth.Enabled)
}
