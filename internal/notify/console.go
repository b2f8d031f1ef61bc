package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// ConsoleEmail and ConsoleSMS log instead of delivering. Used in
// development when no channel API is configured.
type ConsoleEmail struct {
	Log zerolog.Logger
}

func (c ConsoleEmail) SendEmail(ctx context.Context, to, subject, body string) error {
	c.Log.Info().Str("to", to).Str("subject", subject).Msg("email (console)")
	return nil
}

type ConsoleSMS struct {
	Log zerolog.Logger
}

func (c ConsoleSMS) SendSMS(ctx context.Context, phone, message string) error {
	c.Log.Info().Str("phone", phone).Str("message", message).Msg("sms (console)")
	return nil
}
