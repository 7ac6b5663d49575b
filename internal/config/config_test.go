package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_TIMEZONE", "Europe/Paris")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT_SEC", "3")
	t.Setenv("PUBLIC_SCHEME", "https")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https", cfg.PublicScheme)
	assert.Equal(t, "Europe/Paris", cfg.Log.Timezone)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.MetricsEnabled)
	assert.True(t, cfg.SwaggerEnabled)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout())
}

func TestLogLocation(t *testing.T) {
	assert.Equal(t, time.UTC, LogConfig{Timezone: "UTC"}.Location())
	assert.Equal(t, time.UTC, LogConfig{Timezone: "Nowhere/Atlantis"}.Location())
}

func TestShutdownTimeout(t *testing.T) {
	cfg := &AppConfig{ShutdownTimeoutSec: -1}
	assert.Zero(t, cfg.ShutdownTimeout())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
