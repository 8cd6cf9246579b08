package notify

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/resend/resend-go/v2"
	"github.com/templui/tasklist/internal/markdown"
	"github.com/templui/tasklist/internal/model"
)

// EmailProvider sends completion notices through Resend
type EmailProvider struct {
	client *resend.Client
	md     *markdown.Parser
	from   string
	to     string
}

func NewEmailProvider(apiKey, from, to string) *EmailProvider {
	return newEmailProvider(resend.NewClient(apiKey), from, to)
}

func newEmailProvider(client *resend.Client, from, to string) *EmailProvider {
	return &EmailProvider{
		client: client,
		md:     markdown.NewParser(),
		from:   from,
		to:     to,
	}
}

func (p *EmailProvider) TaskCompleted(ctx context.Context, task *model.Task) error {
	body, err := p.htmlBody(task)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    p.from,
		To:      []string{p.to},
		Subject: fmt.Sprintf("Task completed: %s", task.Title),
		Text:    CompletionText(task) + "\n\n" + task.Description,
		Html:    body,
	}

	_, err = p.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send completion email: %w", err)
	}

	slog.Info("email notification sent", "task_id", task.ID, "to", p.to)
	return nil
}

// htmlBody renders the completion line followed by the task description,
// which is treated as Markdown.
func (p *EmailProvider) htmlBody(task *model.Task) (string, error) {
	description, err := p.md.ParseString(task.Description)
	if err != nil {
		return "", fmt.Errorf("render task description: %w", err)
	}

	return "<p>" + html.EscapeString(CompletionText(task)) + "</p>\n" + description, nil
}

func (p *EmailProvider) Name() string {
	return ProviderEmail
}
