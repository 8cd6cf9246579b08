package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/tasklist/internal/config"
	"github.com/templui/tasklist/internal/model"
)

func TestNewProvider(t *testing.T) {
	cases := []struct {
		name    string
		cfg     config.Config
		want    string
		wantErr bool
	}{
		{"slack with key", config.Config{AppEnv: "production", NotifyProvider: ProviderSlack, SlackAPIKey: "xoxb", SlackChannel: "c"}, ProviderSlack, false},
		{"slack without key in development", config.Config{AppEnv: "development", NotifyProvider: ProviderSlack}, ProviderLog, false},
		{"slack without key in production", config.Config{AppEnv: "production", NotifyProvider: ProviderSlack}, "", true},
		{"webhook", config.Config{NotifyProvider: ProviderWebhook, WebhookURL: "https://example.com/hook"}, ProviderWebhook, false},
		{"webhook without url", config.Config{NotifyProvider: ProviderWebhook}, "", true},
		{"email", config.Config{NotifyProvider: ProviderEmail, ResendAPIKey: "re_123", EmailFrom: "tasks@example.com", EmailTo: "team@example.com"}, ProviderEmail, false},
		{"email with bad recipient", config.Config{NotifyProvider: ProviderEmail, ResendAPIKey: "re_123", EmailFrom: "tasks@example.com", EmailTo: "team"}, "", true},
		{"email without recipient", config.Config{NotifyProvider: ProviderEmail, ResendAPIKey: "re_123"}, "", true},
		{"log", config.Config{NotifyProvider: ProviderLog}, ProviderLog, false},
		{"retry keeps name", config.Config{NotifyProvider: ProviderLog, NotifyMaxRetries: 2, NotifyRetryBase: time.Millisecond}, ProviderLog, false},
		{"retry with zero base", config.Config{NotifyProvider: ProviderLog, NotifyMaxRetries: 2}, "", true},
		{"retry with negative base", config.Config{NotifyProvider: ProviderLog, NotifyMaxRetries: 2, NotifyRetryBase: -time.Second}, "", true},
		{"zero base ignored without retries", config.Config{NotifyProvider: ProviderLog}, ProviderLog, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewProvider(&tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Name())
		})
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(&config.Config{NotifyProvider: "carrier-pigeon"})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestNewProvider_RetryingProviderDelivers(t *testing.T) {
	p, err := NewProvider(&config.Config{
		AppEnv:           "development",
		NotifyProvider:   ProviderLog,
		NotifyMaxRetries: 2,
		NotifyRetryBase:  time.Millisecond,
	})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		assert.NoError(t, p.TaskCompleted(context.Background(), &model.Task{ID: 1, Title: "Water plants"}))
	})
}
