package notify

import (
	"context"
	"fmt"

	"github.com/templui/tasklist/internal/model"
)

const (
	ProviderSlack   = "slack"
	ProviderWebhook = "webhook"
	ProviderEmail   = "email"
	ProviderLog     = "log"
)

// Provider defines the interface that all notification providers must implement
type Provider interface {
	// TaskCompleted announces that task was just completed.
	// Errors are returned to the caller unchanged in meaning.
	TaskCompleted(ctx context.Context, task *model.Task) error

	// Name returns the provider name (e.g., "slack", "webhook")
	Name() string
}

// CompletionText is the human readable message sent for a completed task
func CompletionText(task *model.Task) string {
	return fmt.Sprintf("Someone just completed the task %s", task.Title)
}
