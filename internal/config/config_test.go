package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DevelopmentDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "api-key", cfg.Auth.APIKeyHeader)
	assert.Equal(t, "dev-api-key", cfg.Auth.APIKey)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 100, cfg.RateLimit.Limit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("API_KEY_HEADER", "x-secret")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_WINDOW_SEC", "60")
	t.Setenv("DB_RETRY_DELAY_MS", "250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "x-secret", cfg.Auth.APIKeyHeader)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.RetryDelay)
}

func TestLoad_MalformedIntFallsBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestValidate_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_KEY", "")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY must be set in production")
}

func TestValidate_ProductionRejectsDevKey(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_KEY", "dev-api-key")
	t.Setenv("DB_PASSWORD", "pw")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate_ProductionWithSecretsPasses(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_KEY", "real-secret")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Environment)
}

func TestValidate_NonPositiveLimitRejected(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_MAX must be positive")
}
