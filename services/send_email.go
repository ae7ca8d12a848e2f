package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// resendEmailRequest represents the request payload for the Resend API
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// resendEmailResponse represents the success response from the Resend API
type resendEmailResponse struct {
	ID string `json:"id"`
}

// resendErrorResponse represents an error response from the Resend API
type resendErrorResponse struct {
	Message string `json:"message"`
}

// ResendMailer relays contact-form submissions to the site owner through the
// Resend transactional-email API. Construct it once at startup with values
// from the environment; an unconfigured mailer reports every send as a
// distinct not-configured failure instead of erroring at boot, so the site
// keeps accepting messages without delivery.
type ResendMailer struct {
	apiKey   string
	from     string
	to       []string
	endpoint string
	client   *http.Client
	logger   zerolog.Logger
}

func NewResendMailer(apiKey, from string, to []string) *ResendMailer {
	return &ResendMailer{
		apiKey:   apiKey,
		from:     from,
		to:       to,
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   log.With().Str("service", "resendMailer").Logger(),
	}
}

func (m *ResendMailer) Configured() bool {
	return m.apiKey != "" && m.from != "" && len(m.to) > 0
}

// SendContact relays one contact-form submission. The reply-to header is set
// to the submitter so the owner can answer directly.
func (m *ResendMailer) SendContact(ctx context.Context, name, email, message string) error {
	if !m.Configured() {
		m.logger.Info().Msg("Resend not configured, skipping email send")
		return errs.NewEmailNotConfiguredError()
	}

	payload := resendEmailRequest{
		From:    m.from,
		To:      m.to,
		Subject: contactSubject(name, message),
		Html:    contactBody(name, email, message),
		ReplyTo: email,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return errs.NewEmailDeliveryError("failed to marshal email payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(jsonPayload))
	if err != nil {
		return errs.NewEmailDeliveryError("failed to build Resend request", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errs.NewEmailDeliveryError("failed to reach Resend", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewEmailDeliveryError("failed to read Resend response", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp resendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return errs.NewEmailDeliveryError(fmt.Sprintf("Resend error (status %d): %s", resp.StatusCode, errorResp.Message), nil)
		}
		return errs.NewEmailDeliveryError(fmt.Sprintf("Resend error (status %d)", resp.StatusCode), nil)
	}

	var emailResponse resendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to parse Resend response, but email was sent")
	} else {
		m.logger.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}
	return nil
}

// contactSubject flattens newlines and caps the preview at 50 characters so
// the subject line stays a single clean header.
func contactSubject(name, message string) string {
	flat := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(message)
	runes := []rune(flat)
	if len(runes) > 50 {
		flat = string(runes[:50])
	}
	return fmt.Sprintf("Contact from %s: %s", name, flat)
}

func contactBody(name, email, message string) string {
	escaped := strings.ReplaceAll(html.EscapeString(message), "\n", "<br>")
	return fmt.Sprintf(
		"<p><strong>From:</strong> %s (%s)</p><p><strong>Message:</strong></p><p>%s</p>",
		html.EscapeString(name), html.EscapeString(email), escaped,
	)
}
