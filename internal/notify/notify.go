// Package notify delivers rendered alert messages to their destination.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single webhook delivery.
const DefaultTimeout = 10 * time.Second

// Notifier delivers one rendered message per evaluation pass.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// slackPayload is the incoming-webhook body. mrkdwn keeps Slack parsing
// the <url|label> links inside the message.
type slackPayload struct {
	Text   string `json:"text"`
	Mrkdwn bool   `json:"mrkdwn"`
}

// SlackNotifier posts messages to a Slack incoming webhook.
type SlackNotifier struct {
	url    string
	client *http.Client
}

// NewSlackNotifier creates a notifier for the given webhook URL. A zero
// or negative timeout selects DefaultTimeout.
func NewSlackNotifier(url string, timeout time.Duration) *SlackNotifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &SlackNotifier{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send posts the message as a single webhook request.
func (s *SlackNotifier) Send(ctx context.Context, text string) error {
	body, err := json.Marshal(slackPayload{Text: text, Mrkdwn: true})
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "KabukaAlert/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
