package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// HTTP server
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	ShutdownTimeout  time.Duration

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Observability (optional)
	SentryDSN      string
	MetricsEnabled bool

	// Notifications
	NotifyProvider   string // "slack", "webhook", "email" or "log"
	NotifyMaxRetries int
	NotifyRetryBase  time.Duration
	// Notifications - Slack
	SlackAPIKey  string
	SlackChannel string
	SlackAPIURL  string // Optional: override for Slack-compatible APIs and tests
	// Notifications - signed webhook
	WebhookURL    string
	WebhookSecret string
	// Notifications - email
	ResendAPIKey string
	EmailFrom    string
	EmailTo      string

	// Rate limit for mark_complete, which calls out to the notification provider
	CompleteRateLimit  int
	CompleteRateWindow time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "tasklist"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:    envString("PORT", "8090"),

		// HTTP server
		HTTPReadTimeout:  envDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		HTTPWriteTimeout: envDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout:  envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/tasklist.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Observability
		SentryDSN:      envString("SENTRY_DSN", ""),
		MetricsEnabled: envBool("METRICS_ENABLED", true),

		// Notifications
		NotifyProvider:   envString("NOTIFY_PROVIDER", "slack"),
		NotifyMaxRetries: envInt("NOTIFY_MAX_RETRIES", 0), // 0 = single attempt
		NotifyRetryBase:  envDuration("NOTIFY_RETRY_BASE", 200*time.Millisecond),
		SlackAPIKey:      envString("SLACK_API_KEY", ""),
		SlackChannel:     envString("SLACK_CHANNEL", "task-notifications"),
		SlackAPIURL:      envString("SLACK_API_URL", ""),
		WebhookURL:       envString("NOTIFY_WEBHOOK_URL", ""),
		WebhookSecret:    envString("NOTIFY_WEBHOOK_SECRET", ""),
		ResendAPIKey:     envString("RESEND_API_KEY", ""),
		EmailFrom:        envString("EMAIL_FROM", "noreply@example.com"),
		EmailTo:          envString("NOTIFY_EMAIL_TO", ""),

		// Rate limiting
		CompleteRateLimit:  envInt("COMPLETE_RATE_LIMIT", 30),
		CompleteRateWindow: envDuration("COMPLETE_RATE_WINDOW", time.Minute),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures the selected notification provider is configured.
// Development falls back to log mode when Slack has no key.
func validateProduction(cfg *Config) {
	var missing string
	switch cfg.NotifyProvider {
	case "slack":
		if cfg.SlackAPIKey == "" {
			missing = "SLACK_API_KEY"
		}
	case "webhook":
		if cfg.WebhookURL == "" {
			missing = "NOTIFY_WEBHOOK_URL"
		}
	case "email":
		if cfg.ResendAPIKey == "" {
			missing = "RESEND_API_KEY"
		}
	}

	if missing != "" {
		slog.Error("production deployment requires "+missing,
			"provider", cfg.NotifyProvider,
			"hint", "set APP_ENV=development for local testing with log notifications")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
