package service

import (
	"context"

	"github.com/rs/zerolog"

	"impilo/registry/internal/models"
)

type ModerationService struct {
	regs     RegistrationStore
	enqueuer TransitionEnqueuer
	log      zerolog.Logger
}

func NewModerationService(regs RegistrationStore, enqueuer TransitionEnqueuer, log zerolog.Logger) *ModerationService {
	return &ModerationService{
		regs:     regs,
		enqueuer: enqueuer,
		log:      log,
	}
}

// Transition sets a registration's status. Any of the three statuses is a
// legal target from any current one; an admin can reverse a decision.
// Approval and rejection hand a notification to the dispatch stream after
// the row is committed; a failed enqueue is logged and never surfaces.
func (s *ModerationService) Transition(ctx context.Context, id string, status models.RegistrationStatus) (models.Registration, error) {
	if !models.ValidStatus(status) {
		return models.Registration{}, validationErrorf("status must be one of 'pending', 'approved', 'rejected'")
	}

	updated, err := s.regs.UpdateStatus(ctx, id, status)
	if err != nil {
		return models.Registration{}, err
	}

	if status == models.StatusApproved || status == models.StatusRejected {
		if err := s.enqueuer.EnqueueTransition(ctx, updated); err != nil {
			s.log.Warn().
				Err(err).
				Str("registration_id", updated.ID).
				Str("status", string(status)).
				Msg("enqueue notification failed")
		}
	}

	return updated, nil
}
