// Package contact relays the site's contact form to an email service.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nepal-utilities/backend/internal/models"
)

const emailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Relay delivers one contact message.
type Relay interface {
	Send(ctx context.Context, msg models.ContactRequest) error
}

type EmailJSConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
}

// EmailJS sends through the EmailJS REST API using the same template
// parameters the site's browser form used.
type EmailJS struct {
	cfg      EmailJSConfig
	endpoint string
	client   *http.Client
}

func NewEmailJS(cfg EmailJSConfig, client *http.Client) *EmailJS {
	if client == nil {
		client = http.DefaultClient
	}
	return &EmailJS{cfg: cfg, endpoint: emailJSEndpoint, client: client}
}

type emailJSPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func (e *EmailJS) Send(ctx context.Context, msg models.ContactRequest) error {
	body, err := json.Marshal(emailJSPayload{
		ServiceID:   e.cfg.ServiceID,
		TemplateID:  e.cfg.TemplateID,
		UserID:      e.cfg.PublicKey,
		AccessToken: e.cfg.PrivateKey,
		TemplateParams: map[string]string{
			"from_name":  msg.Name,
			"from_email": msg.Email,
			"message":    msg.Message,
		},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs returned status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
