package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/slack-go/slack"
	"github.com/templui/tasklist/internal/model"
)

// SlackProvider posts completion messages with chat.postMessage
type SlackProvider struct {
	client  *slack.Client
	channel string
}

// NewSlackProvider creates a Slack provider. apiURL is optional
// (e.g. "http://localhost:9999/api/"); a missing trailing slash is added.
func NewSlackProvider(token, channel, apiURL string) *SlackProvider {
	var opts []slack.Option
	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		opts = append(opts, slack.OptionAPIURL(apiURL))
	}

	return &SlackProvider{
		client:  slack.New(token, opts...),
		channel: channel,
	}
}

func (p *SlackProvider) TaskCompleted(ctx context.Context, task *model.Task) error {
	_, ts, err := p.client.PostMessageContext(ctx, p.channel,
		slack.MsgOptionText(CompletionText(task), false),
	)
	if err != nil {
		return fmt.Errorf("slack post message: %w", err)
	}

	slog.Info("slack notification sent", "task_id", task.ID, "channel", p.channel, "ts", ts)
	return nil
}

func (p *SlackProvider) Name() string {
	return ProviderSlack
}
