package notify

import (
	"context"
	"log/slog"

	"github.com/templui/tasklist/internal/model"
)

// LogProvider only logs. Used in development and when notifications are off.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) TaskCompleted(_ context.Context, task *model.Task) error {
	slog.Info("notification sent (log mode)", "task_id", task.ID, "text", CompletionText(task))
	return nil
}

func (p *LogProvider) Name() string {
	return ProviderLog
}
