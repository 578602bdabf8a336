package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// Mailer sends transactional mail. Services call it from a background
// goroutine; delivery failures are logged, never surfaced to the request.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, name, token string) error
	SendPasswordResetEmail(ctx context.Context, to, name, token string) error
}

// ResendMailer delivers mail through the Resend HTTP API.
type ResendMailer struct {
	apiKey      string
	from        string
	frontendURL string
	client      *http.Client
}

// NewResendMailer creates a mailer. An empty apiKey yields a mailer that
// silently drops mail, which keeps local development working without keys.
func NewResendMailer(apiKey, from, frontendURL string) *ResendMailer {
	return &ResendMailer{
		apiKey:      apiKey,
		from:        from,
		frontendURL: frontendURL,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// SendVerificationEmail mails the one-time email verification link.
func (m *ResendMailer) SendVerificationEmail(ctx context.Context, to, name, token string) error {
	link := fmt.Sprintf("%s/verify-email/%s", m.frontendURL, token)
	body := fmt.Sprintf("Hi %s,\n\nWelcome to LagTalk. Verify your email address: %s\n", name, link)
	return m.send(ctx, to, "Verify your LagTalk email", body)
}

// SendPasswordResetEmail mails the one-time password reset link.
func (m *ResendMailer) SendPasswordResetEmail(ctx context.Context, to, name, token string) error {
	link := fmt.Sprintf("%s/reset-password/%s", m.frontendURL, token)
	body := fmt.Sprintf("Hi %s,\n\nReset your LagTalk password: %s\n\nIgnore this email if you did not request a reset.\n", name, link)
	return m.send(ctx, to, "Reset your LagTalk password", body)
}

func (m *ResendMailer) send(ctx context.Context, to, subject, text string) error {
	if m.apiKey == "" {
		return nil
	}

	payload, err := json.Marshal(map[string]interface{}{
		"from":    m.from,
		"to":      []string{to},
		"subject": subject,
		"text":    text,
	})
	if err != nil {
		return fmt.Errorf("marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("send mail: unexpected status %d", resp.StatusCode)
	}
	return nil
}
