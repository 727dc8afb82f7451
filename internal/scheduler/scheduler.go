// Package scheduler runs the partner agent sync on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

// DefaultRunTimeout bounds a single sync run.
const DefaultRunTimeout = 5 * time.Minute

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

type Scheduler struct {
	syncer     Syncer
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(syncer Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:     syncer,
		interval:   interval,
		runTimeout: DefaultRunTimeout,
		logger:     logger,
	}
}

// Start runs one sync immediately and then one per interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	stats, err := s.syncer.Sync(syncCtx)
	if err != nil {
		s.logger.Error("agent sync failed", "error", err)
		return
	}
	s.logger.Info("scheduled agent sync finished", "synced", stats.Synced, "failed", stats.Failed)
}
