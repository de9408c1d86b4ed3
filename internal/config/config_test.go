package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "")
	t.Setenv("LLM_PROVIDER", "")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5, cfg.Auth.LoginMaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Auth.LoginWindow)
	// an explicitly empty value is still a value
	assert.Equal(t, "", cfg.Ai.LLMProvider)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("GO_ENV", "production")

	cfg := Load()

	assert.Equal(t, "8081", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.InDelta(t, 0.2, cfg.Ai.Temperature, 1e-9)
	assert.True(t, cfg.App.OtelEnabled)
	assert.True(t, cfg.IsProduction())
}

func TestLoadIgnoresUnparsableNumbers(t *testing.T) {
	t.Setenv("LOGIN_MAX_ATTEMPTS", "many")
	t.Setenv("OTEL_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 5, cfg.Auth.LoginMaxAttempts)
	assert.False(t, cfg.App.OtelEnabled)
}
