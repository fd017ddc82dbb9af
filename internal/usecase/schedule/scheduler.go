// Package schedule enqueues periodic full-feed refresh jobs.
package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portfolio-pulse/internal/domain"
	"portfolio-pulse/internal/infra/metrics"
)

// Scheduler publishes a refresh job on a fixed interval.
type Scheduler struct {
	queue    domain.RefreshQueue
	interval time.Duration
	log      zerolog.Logger
}

// NewScheduler creates the scheduler.
func NewScheduler(queue domain.RefreshQueue, interval time.Duration, logger zerolog.Logger) *Scheduler {
	return &Scheduler{queue: queue, interval: interval, log: logger}
}

// Run enqueues one job immediately, then one per interval until the context
// is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.enqueue(ctx); err != nil {
		s.log.Warn().Err(err).Msg("schedule: initial refresh enqueue failed")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.enqueue(ctx); err != nil {
				s.log.Warn().Err(err).Msg("schedule: refresh enqueue failed")
			}
		}
	}
}

func (s *Scheduler) enqueue(ctx context.Context) error {
	job := domain.RefreshJob{
		ID:          uuid.NewString(),
		Scope:       domain.RefreshScopeAll,
		RequestedAt: time.Now().UTC(),
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		return err
	}
	metrics.RefreshJobsTotal.Inc()
	s.log.Debug().Str("job_id", job.ID).Msg("schedule: refresh job enqueued")
	return nil
}
