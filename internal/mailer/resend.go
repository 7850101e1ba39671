package mailer

import (
	"context"

	"github.com/resend/resend-go/v2"

	"github.com/BERSERKRobot/chess-website-v2/internal/config"
)

// resendMailer sends through Resend with a fixed sender identity. The client
// is created once at process start and reused across requests.
type resendMailer struct {
	client *resend.Client
	from   string
}

// NewMailer builds the Resend mailer from configuration. With no API key
// every send fails with ErrMailerDisabled.
func NewMailer(cfg config.EmailConfig) Mailer {
	if cfg.ResendAPIKey == "" {
		return disabledMailer{}
	}
	return &resendMailer{
		client: resend.NewClient(cfg.ResendAPIKey),
		from:   cfg.From,
	}
}

// Send delivers one email and returns Resend's receipt id.
func (m *resendMailer) Send(ctx context.Context, email Email) (string, error) {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email.To},
		Subject: email.Subject,
		ReplyTo: email.ReplyTo,
		Html:    email.HTML,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}
