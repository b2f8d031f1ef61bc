// Package notify owns the best-effort notification side of moderation. The
// api process only enqueues; the worker dispatches through the channel
// clients. Channel failures are logged and isolated — they never undo or
// fail the transition that triggered them.
package notify

import (
	"context"

	"github.com/rs/zerolog"
)

type Kind string

const (
	KindApproval  Kind = "approval"
	KindRejection Kind = "rejection"
)

// EmailSender delivers one email. Implementations are fire-and-forget from
// the dispatcher's point of view.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SMSSender delivers one SMS to an E.164 phone number.
type SMSSender interface {
	SendSMS(ctx context.Context, phone, message string) error
}

type Dispatcher struct {
	email EmailSender
	sms   SMSSender
	log   zerolog.Logger
}

func NewDispatcher(email EmailSender, sms SMSSender, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		email: email,
		sms:   sms,
		log:   log,
	}
}

// Dispatch attempts every available channel once: email always, SMS only
// when a phone number is present. Each channel is tried independently; the
// return value reports whether all attempted channels succeeded.
func (d *Dispatcher) Dispatch(ctx context.Context, kind Kind, fullName, email, phone string) bool {
	ok := true

	subject, body := emailTemplate(kind, fullName)
	if err := d.email.SendEmail(ctx, email, subject, body); err != nil {
		d.log.Error().Err(err).Str("to", email).Str("kind", string(kind)).Msg("email send failed")
		ok = false
	}

	if phone != "" {
		if err := d.sms.SendSMS(ctx, phone, smsTemplate(kind, fullName)); err != nil {
			d.log.Error().Err(err).Str("phone", phone).Str("kind", string(kind)).Msg("sms send failed")
			ok = false
		}
	}

	return ok
}
