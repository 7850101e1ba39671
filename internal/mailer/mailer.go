// Package mailer wraps the Resend email API behind a small interface.
package mailer

import (
	"context"
	"errors"
)

// ErrMailerDisabled is returned when no delivery service key was configured.
var ErrMailerDisabled = errors.New("mailer disabled: no api key configured")

// Email is one outbound message. From is fixed by configuration; callers
// only choose recipient, subject, reply-to and body.
type Email struct {
	To      string
	Subject string
	ReplyTo string
	HTML    string
}

// Mailer sends a single email and returns the delivery service's receipt id,
// opaque to callers.
type Mailer interface {
	Send(ctx context.Context, email Email) (string, error)
}

type disabledMailer struct{}

func (disabledMailer) Send(context.Context, Email) (string, error) {
	return "", ErrMailerDisabled
}
