package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-at-least-32-chars-long"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("USERS_DATABASE_URL", "postgres://localhost:5432/users_test")
	t.Setenv("USERS_AUTH_JWT_SECRET", testSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/users_test", cfg.Database.URL)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, defaultPort, cfg.Server.Port)
	assert.Equal(t, defaultLogLevel, cfg.Server.LogLevel)
	assert.Equal(t, defaultTokenLifetimeMinutes, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadOverridesDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("USERS_SERVER_PORT", "8080")
	t.Setenv("USERS_SERVER_LOG_LEVEL", "debug")
	t.Setenv("USERS_AUTH_TOKEN_LIFETIME_MINUTES", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadFailsWithoutJWTSecret(t *testing.T) {
	t.Setenv("USERS_DATABASE_URL", "postgres://localhost:5432/users_test")
	t.Setenv("USERS_AUTH_JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err, "a missing signing secret must be startup-fatal")
}

func TestLoadFailsWithShortJWTSecret(t *testing.T) {
	t.Setenv("USERS_DATABASE_URL", "postgres://localhost:5432/users_test")
	t.Setenv("USERS_AUTH_JWT_SECRET", "short")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFailsWithoutDatabaseURL(t *testing.T) {
	t.Setenv("USERS_AUTH_JWT_SECRET", testSecret)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("USERS_SERVER_LOG_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err)
}
