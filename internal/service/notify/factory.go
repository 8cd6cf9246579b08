package notify

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/templui/tasklist/internal/config"
	"github.com/templui/tasklist/internal/validation"
)

var ErrUnknownProvider = errors.New("unknown notification provider")

// NewProvider creates a notification provider based on configuration
func NewProvider(cfg *config.Config) (Provider, error) {
	provider, err := newBaseProvider(cfg)
	if err != nil {
		return nil, err
	}

	slog.Info("initializing notification provider", "provider", provider.Name(), "max_retries", cfg.NotifyMaxRetries)

	if cfg.NotifyMaxRetries > 0 {
		if cfg.NotifyRetryBase <= 0 {
			return nil, fmt.Errorf("NOTIFY_RETRY_BASE must be positive when NOTIFY_MAX_RETRIES is set, got %s", cfg.NotifyRetryBase)
		}
		provider = WithRetry(provider, uint64(cfg.NotifyMaxRetries), cfg.NotifyRetryBase)
	}

	return Instrument(provider), nil
}

func newBaseProvider(cfg *config.Config) (Provider, error) {
	switch cfg.NotifyProvider {
	case ProviderSlack:
		if cfg.SlackAPIKey == "" {
			if cfg.IsDevelopment() {
				slog.Warn("SLACK_API_KEY not set, logging notifications instead (dev mode)")
				return NewLogProvider(), nil
			}
			return nil, fmt.Errorf("SLACK_API_KEY is required when using Slack provider")
		}
		return NewSlackProvider(cfg.SlackAPIKey, cfg.SlackChannel, cfg.SlackAPIURL), nil

	case ProviderWebhook:
		if cfg.WebhookURL == "" {
			return nil, fmt.Errorf("NOTIFY_WEBHOOK_URL is required when using webhook provider")
		}
		return NewWebhookProvider(cfg.WebhookURL, cfg.WebhookSecret, http.DefaultClient)

	case ProviderEmail:
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("RESEND_API_KEY is required when using email provider")
		}
		if cfg.EmailTo == "" {
			return nil, fmt.Errorf("NOTIFY_EMAIL_TO is required when using email provider")
		}
		err := validation.ValidateEmail(cfg.EmailTo)
		if err != nil {
			return nil, fmt.Errorf("NOTIFY_EMAIL_TO: %w", err)
		}
		err = validation.ValidateEmail(cfg.EmailFrom)
		if err != nil {
			return nil, fmt.Errorf("EMAIL_FROM: %w", err)
		}
		return NewEmailProvider(cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailTo), nil

	case ProviderLog:
		return NewLogProvider(), nil

	default:
		return nil, fmt.Errorf("%w: %s (supported: slack, webhook, email, log)", ErrUnknownProvider, cfg.NotifyProvider)
	}
}
