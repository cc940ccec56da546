package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const payloadSource = "sbl_onboarding_form"

// Envelope is the wire shape the automation workflows expect. Every call
// carries the event code, an ISO timestamp and a source marker.
type Envelope struct {
	Event     string                 `json:"event"`
	Timestamp string                 `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// Client posts events to the configured n8n webhook. A client with an
// empty URL is valid and drops every notification.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Enabled() bool {
	return c.webhookURL != ""
}

// Notify posts one event. Callers treat failures as best effort, only the
// automation worker retries via its queue.
func (c *Client) Notify(ctx context.Context, event string, data map[string]interface{}) error {
	if !c.Enabled() {
		return nil
	}

	envelope := Envelope{
		Event:     event,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
		Metadata: map[string]interface{}{
			"source": payloadSource,
		},
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook event %s: %w", event, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook event %s rejected with status %d", event, resp.StatusCode)
	}
	return nil
}
