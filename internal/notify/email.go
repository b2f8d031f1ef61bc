package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// MailClient posts to a transactional-email HTTP API.
type MailClient struct {
	apiURL string
	apiKey string
	from   string
	client *http.Client
}

func NewMailClient(apiURL, apiKey, from string) *MailClient {
	return &MailClient{
		apiURL: apiURL,
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type emailRecipient struct {
	Email string `json:"email"`
}

type emailRequest struct {
	From    emailRecipient   `json:"from"`
	To      []emailRecipient `json:"to"`
	Subject string           `json:"subject"`
	Text    string           `json:"text"`
}

func (m *MailClient) SendEmail(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(emailRequest{
		From:    emailRecipient{Email: m.from},
		To:      []emailRecipient{{Email: to}},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Token", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email api status %d", resp.StatusCode)
	}
	return nil
}
