package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/templui/tasklist/internal/model"
)

type retryProvider struct {
	next       Provider
	maxRetries uint64
	base       time.Duration
}

// WithRetry retries failed deliveries up to maxRetries times with
// exponential backoff starting at base. The last error is returned.
func WithRetry(p Provider, maxRetries uint64, base time.Duration) Provider {
	return &retryProvider{next: p, maxRetries: maxRetries, base: base}
}

func (r *retryProvider) TaskCompleted(ctx context.Context, task *model.Task) error {
	backoff := retry.WithMaxRetries(r.maxRetries, retry.NewExponential(r.base))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := r.next.TaskCompleted(ctx, task)
		if err != nil {
			slog.Warn("notification attempt failed", "provider", r.next.Name(), "task_id", task.ID, "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}

func (r *retryProvider) Name() string {
	return r.next.Name()
}
