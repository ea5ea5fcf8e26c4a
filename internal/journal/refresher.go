package journal

import (
	"context"
	"log/slog"
	"time"

	"shukran/internal/middleware"
	"shukran/internal/models"
)

// FetchFunc loads an account's entries from the persistence gateway, ordered
// by creation time descending.
type FetchFunc func(ctx context.Context, userID uint) ([]models.Entry, error)

// Refresher re-fetches active mirrors in the narrow window around local
// midnight so the daily-limit gate resets without user interaction. This is a
// convenience refresh only; the live existence check before every entry
// creation stays authoritative.
type Refresher struct {
	store    *Store
	fetch    FetchFunc
	loc      *time.Location
	interval time.Duration
	now      func() time.Time

	stop chan struct{}
	done chan struct{}

	// day of the last completed refresh, to refresh once per crossing
	lastDay string
}

// NewRefresher creates a refresher polling once per second, matching the
// presentation-layer countdown cadence.
func NewRefresher(store *Store, fetch FetchFunc, loc *time.Location) *Refresher {
	if loc == nil {
		loc = time.Local
	}
	return &Refresher{
		store:    store,
		fetch:    fetch,
		loc:      loc,
		interval: time.Second,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the polling loop until Stop is called or ctx is cancelled.
func (r *Refresher) Start(ctx context.Context) {
	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stop:
				return
			case <-ticker.C:
				r.tick(ctx)
			}
		}
	}()
}

// Stop halts the polling loop and waits for it to exit.
func (r *Refresher) Stop() {
	close(r.stop)
	<-r.done
}

func (r *Refresher) tick(ctx context.Context) {
	now := r.now().In(r.loc)
	if !InMidnightWindow(now) {
		return
	}

	day := now.Format("2006-01-02")
	if day == r.lastDay {
		return
	}
	r.lastDay = day

	for _, userID := range r.store.ActiveUsers() {
		entries, err := r.fetch(ctx, userID)
		if err != nil {
			// Best effort: the mirror keeps its previous contents.
			middleware.Logger.WarnContext(ctx, "midnight mirror refresh failed",
				slog.Uint64("user_id", uint64(userID)),
				slog.String("error", err.Error()),
			)
			continue
		}
		r.store.ReplaceAll(userID, entries)
	}
}
