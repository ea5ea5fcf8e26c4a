// Package reconcile runs the periodic cleanup of orphaned public entries.
//
// Sharing writes two rows without a transaction: the public copy first, then
// the back reference on the source entry. When the second write fails, the
// public copy survives unreferenced. The sweep deletes such rows, and their
// likes, out of band.
package reconcile

import (
	"context"
	"log/slog"

	"shukran/internal/middleware"
	"shukran/internal/observability"
	"shukran/internal/repository"

	"github.com/robfig/cron/v3"
)

// Sweeper deletes orphaned public entries on a cron schedule.
type Sweeper struct {
	publics repository.PublicEntryRepository
	cron    *cron.Cron
}

// NewSweeper creates a Sweeper over the public entry gateway.
func NewSweeper(publics repository.PublicEntryRepository) *Sweeper {
	return &Sweeper{
		publics: publics,
		cron:    cron.New(),
	}
}

// Start schedules the sweep with the given cron spec and begins running it.
func (s *Sweeper) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// RunOnce performs a single sweep and returns the number of rows removed.
func (s *Sweeper) RunOnce(ctx context.Context) int64 {
	removed, err := s.publics.DeleteOrphans(ctx)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "orphan sweep failed",
			slog.String("error", err.Error()),
		)
		return 0
	}
	if removed > 0 {
		observability.OrphansReconciled.Add(float64(removed))
		middleware.Logger.InfoContext(ctx, "orphan sweep removed public entries",
			slog.Int64("removed", removed),
		)
	}
	return removed
}
