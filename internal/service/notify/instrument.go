package notify

import (
	"context"
	"time"

	"github.com/templui/tasklist/internal/metrics"
	"github.com/templui/tasklist/internal/model"
)

type instrumentedProvider struct {
	next Provider
}

// Instrument records outcome and latency of every delivery in Prometheus
func Instrument(p Provider) Provider {
	return &instrumentedProvider{next: p}
}

func (i *instrumentedProvider) TaskCompleted(ctx context.Context, task *model.Task) error {
	start := time.Now()
	err := i.next.TaskCompleted(ctx, task)

	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	metrics.NotificationDuration.WithLabelValues(i.next.Name()).Observe(time.Since(start).Seconds())
	metrics.NotificationsTotal.WithLabelValues(i.next.Name(), status).Inc()
	return err
}

func (i *instrumentedProvider) Name() string {
	return i.next.Name()
}
