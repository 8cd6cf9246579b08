package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	for _, key := range []string{"PORT", "DB_DRIVER", "NOTIFY_PROVIDER", "SLACK_CHANNEL", "NOTIFY_MAX_RETRIES",
		"COMPLETE_RATE_LIMIT", "COMPLETE_RATE_WINDOW", "METRICS_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "slack", cfg.NotifyProvider)
	assert.Equal(t, "task-notifications", cfg.SlackChannel)
	assert.Equal(t, 0, cfg.NotifyMaxRetries)
	assert.Equal(t, 30, cfg.CompleteRateLimit)
	assert.Equal(t, time.Minute, cfg.CompleteRateWindow)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SLACK_API_KEY", "xoxb-123")
	t.Setenv("NOTIFY_MAX_RETRIES", "3")
	t.Setenv("COMPLETE_RATE_WINDOW", "30s")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()

	assert.Equal(t, "xoxb-123", cfg.SlackAPIKey)
	assert.Equal(t, 3, cfg.NotifyMaxRetries)
	assert.Equal(t, 30*time.Second, cfg.CompleteRateWindow)
	assert.False(t, cfg.MetricsEnabled)
}

func TestEnvHelpers_InvalidFallsBack(t *testing.T) {
	t.Setenv("TEST_BOOL", "maybe")
	t.Setenv("TEST_INT", "-4")
	t.Setenv("TEST_DURATION", "soon")

	assert.True(t, envBool("TEST_BOOL", true))
	assert.Equal(t, 7, envInt("TEST_INT", 7))
	assert.Equal(t, time.Second, envDuration("TEST_DURATION", time.Second))
	assert.Equal(t, "fallback", envString("TEST_UNSET_STRING", "fallback"))
}
