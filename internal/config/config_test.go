package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "crm-service", cfg.App.Name)
	assert.Equal(t, 168, cfg.Auth.TokenTTLHours)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL())
	assert.True(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, 5*time.Second, cfg.Redis.ListingTTL())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "24")
	t.Setenv("AUTH_JWT_SECRET", "per-test-secret")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.App.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, "per-test-secret", cfg.Auth.JWTSecret)
	assert.False(t, cfg.Postgres.RunMigrations)
}

func TestTokenTTLFallsBackWhenNonPositive(t *testing.T) {
	cfg := AuthConfig{TokenTTLHours: 0}
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL())
}

func TestAddr(t *testing.T) {
	cfg := AppConfig{Host: "127.0.0.1", Port: "4000"}
	assert.Equal(t, "127.0.0.1:4000", cfg.Addr())
}
