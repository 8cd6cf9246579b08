package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	standardwebhooks "github.com/standard-webhooks/standard-webhooks/libraries/go"
	"github.com/templui/tasklist/internal/model"
)

const EventTaskCompleted = "task.completed"

// WebhookEvent is the JSON body delivered to the webhook endpoint
type WebhookEvent struct {
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Text      string         `json:"text"`
	Data      model.TaskView `json:"data"`
}

// WebhookProvider delivers Standard Webhooks signed events over HTTP POST.
// Without a secret the events are sent unsigned.
type WebhookProvider struct {
	url    string
	signer *standardwebhooks.Webhook
	client *http.Client
}

func NewWebhookProvider(url, secret string, client *http.Client) (*WebhookProvider, error) {
	p := &WebhookProvider{url: url, client: client}

	if secret == "" {
		slog.Warn("webhook no secret configured, deliveries will be unsigned")
		return p, nil
	}

	signer, err := standardwebhooks.NewWebhookRaw([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook signer: %w", err)
	}
	p.signer = signer

	return p, nil
}

func (p *WebhookProvider) TaskCompleted(ctx context.Context, task *model.Task) error {
	now := time.Now().UTC()

	payload, err := json.Marshal(WebhookEvent{
		Type:      EventTaskCompleted,
		Timestamp: now,
		Text:      CompletionText(task),
		Data:      task.View(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode webhook event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}

	msgID := "msg_" + uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("webhook-id", msgID)
	req.Header.Set("webhook-timestamp", strconv.FormatInt(now.Unix(), 10))

	if p.signer != nil {
		signature, err := p.signer.Sign(msgID, now, payload)
		if err != nil {
			return fmt.Errorf("failed to sign webhook: %w", err)
		}
		req.Header.Set("webhook-signature", signature)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook delivery: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook delivery: unexpected status %d", resp.StatusCode)
	}

	slog.Info("webhook notification sent", "task_id", task.ID, "webhook_id", msgID)
	return nil
}

func (p *WebhookProvider) Name() string {
	return ProviderWebhook
}
