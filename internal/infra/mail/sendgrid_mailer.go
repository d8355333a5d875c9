// Package mail sends transactional email through Sendgrid.
package mail

import (
	"context"
	"net/http"

	"vouch/config"
	"vouch/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridMailer struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

// NewSendgridMailer creates a Mailer backed by the Sendgrid API. Returns nil
// when mail is not configured; callers treat a nil Mailer as "notifications
// disabled".
func NewSendgridMailer(cfg *config.MailConfig) service.Mailer {
	if cfg == nil || cfg.APIKey == "" {
		return nil
	}

	return &sendgridMailer{
		client:   sendgrid.NewSendClient(cfg.APIKey),
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

func (m *sendgridMailer) Send(ctx context.Context, msg *service.Message) error {
	from := sgmail.NewEmail(m.fromName, m.from)
	to := sgmail.NewEmail("", msg.To)
	message := sgmail.NewSingleEmail(from, msg.Subject, to, msg.TextBody, msg.HTMLBody)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(err, "sendgrid send failed")
	}
	if resp.StatusCode != http.StatusAccepted {
		return errors.Errorf("unexpected sendgrid status code: %d", resp.StatusCode)
	}

	return nil
}
