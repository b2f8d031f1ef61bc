package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"impilo/registry/internal/notify"
)

// Processor routes dispatch-stream tasks to the notification channels.
type Processor struct {
	dispatcher *notify.Dispatcher
	email      notify.EmailSender
	logger     zerolog.Logger
}

type TaskPayload struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	Status   string `json:"status"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	To       string `json:"to"`
	Pending  int    `json:"pending,string"`
}

func NewProcessor(dispatcher *notify.Dispatcher, email notify.EmailSender, logger zerolog.Logger) *Processor {
	return &Processor{
		dispatcher: dispatcher,
		email:      email,
		logger:     logger,
	}
}

func (p *Processor) Handle(ctx context.Context, msg redis.XMessage) error {
	var payload TaskPayload
	if err := decodePayload(msg.Values, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	switch payload.Type {
	case "transition":
		return p.handleTransition(ctx, payload)
	case "digest":
		return p.handleDigest(ctx, payload)
	default:
		p.logger.Warn().Str("type", payload.Type).Msg("unknown task type")
		return nil
	}
}

func decodePayload(values map[string]interface{}, out *TaskPayload) error {
	bytes, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, out)
}

func (p *Processor) handleTransition(ctx context.Context, payload TaskPayload) error {
	var kind notify.Kind
	switch payload.Status {
	case "approved":
		kind = notify.KindApproval
	case "rejected":
		kind = notify.KindRejection
	default:
		p.logger.Warn().Str("status", payload.Status).Msg("transition task without notification")
		return nil
	}

	ok := p.dispatcher.Dispatch(ctx, kind, payload.FullName, payload.Email, payload.Phone)
	p.logger.Info().
		Str("registration_id", payload.ID).
		Str("kind", string(kind)).
		Bool("delivered", ok).
		Msg("transition notification dispatched")

	// Delivery is best effort: a failed channel is logged by the
	// dispatcher and the message is still acked.
	return nil
}

func (p *Processor) handleDigest(ctx context.Context, payload TaskPayload) error {
	subject := "Pending registrations digest"
	body := fmt.Sprintf("There are %d registrations awaiting review.", payload.Pending)

	if err := p.email.SendEmail(ctx, payload.To, subject, body); err != nil {
		p.logger.Error().Err(err).Str("to", payload.To).Msg("digest email failed")
	}
	return nil
}
