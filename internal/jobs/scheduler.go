package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"impilo/registry/internal/models"
	"impilo/registry/internal/notify"
	"impilo/registry/internal/service"
)

// Scheduler enqueues the daily pending-review digest for the admin inbox.
type Scheduler struct {
	cron     *cron.Cron
	regs     service.RegistrationStore
	enqueuer *notify.Enqueuer
	digestTo string
	log      zerolog.Logger
}

func NewScheduler(regs service.RegistrationStore, enqueuer *notify.Enqueuer, digestTo string, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:     c,
		regs:     regs,
		enqueuer: enqueuer,
		digestTo: digestTo,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if s.digestTo == "" {
		return nil
	}

	// 08:00 UTC daily.
	if _, err := s.cron.AddFunc("0 0 8 * * *", s.enqueueDigest); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) enqueueDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pending, err := s.regs.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		s.log.Error().Err(err).Msg("count pending failed")
		return
	}
	if pending == 0 {
		return
	}

	if err := s.enqueuer.EnqueueDigest(ctx, s.digestTo, pending); err != nil {
		s.log.Error().Err(err).Msg("enqueue digest failed")
	}
}
