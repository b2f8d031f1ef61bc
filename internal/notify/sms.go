package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SMSClient posts to an SMS gateway HTTP API. Phone numbers are expected in
// E.164 form.
type SMSClient struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewSMSClient(apiURL, apiKey string) *SMSClient {
	return &SMSClient{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type smsRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

func (s *SMSClient) SendSMS(ctx context.Context, phone, message string) error {
	payload, err := json.Marshal(smsRequest{
		PhoneNumber: phone,
		Message:     message,
	})
	if err != nil {
		return fmt.Errorf("marshal sms: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms api status %d", resp.StatusCode)
	}
	return nil
}
