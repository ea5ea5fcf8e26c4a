// Package service implements the business rules of the journal: the entry
// lifecycle with its one-entry-per-day invariant, the share/unshare
// transitions, and the public feed with likes and favorites.
package service

import (
	"context"
	"log/slog"
	"time"

	"shukran/internal/cache"
	"shukran/internal/journal"
	"shukran/internal/middleware"
	"shukran/internal/models"
	"shukran/internal/observability"
	"shukran/internal/repository"
	"shukran/internal/validation"
)

// EntryService is the single source of truth for "can this account add an
// entry today" and the keeper of the per-account entry mirrors. Every
// mutation runs one gateway round trip at a time; there is no retry,
// batching, or cross-step atomicity.
type EntryService struct {
	entries repository.EntryRepository
	publics repository.PublicEntryRepository
	mirror  *journal.Store
	loc     *time.Location
	now     func() time.Time
}

// NewEntryService creates an EntryService evaluating the daily window in loc.
func NewEntryService(entries repository.EntryRepository, publics repository.PublicEntryRepository, mirror *journal.Store, loc *time.Location) *EntryService {
	if loc == nil {
		loc = time.Local
	}
	return &EntryService{
		entries: entries,
		publics: publics,
		mirror:  mirror,
		loc:     loc,
		now:     time.Now,
	}
}

// Mirror exposes the underlying store, e.g. for wiring the midnight refresher.
func (s *EntryService) Mirror() *journal.Store {
	return s.mirror
}

// FetchEntries reloads the account's entries from the gateway, newest first,
// replacing the mirror wholesale.
func (s *EntryService) FetchEntries(ctx context.Context, userID uint) ([]models.Entry, error) {
	entries, err := s.entries.ListByOwner(ctx, userID)
	if err != nil {
		return nil, models.NewRequestFailedError(err)
	}
	s.mirror.ReplaceAll(userID, entries)
	return entries, nil
}

// CanAddEntryToday reports whether the account may create an entry for the
// current day in the journal's timezone. A failed existence check reads as
// "cannot add": the gate fails closed rather than surfacing the error.
func (s *EntryService) CanAddEntryToday(ctx context.Context, userID uint) bool {
	if userID == 0 {
		return false
	}
	start, end := journal.DayWindow(s.now().In(s.loc))
	exists, err := s.entries.ExistsInWindow(ctx, userID, start, end)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "daily-limit check failed, treating as cannot add",
			slog.Uint64("user_id", uint64(userID)),
			slog.String("error", err.Error()),
		)
		return false
	}
	return !exists
}

// TodaysEntry returns the account's entry for the current day, or nil.
func (s *EntryService) TodaysEntry(ctx context.Context, userID uint) (*models.Entry, error) {
	if userID == 0 {
		return nil, models.NewNotAuthenticatedError()
	}
	start, end := journal.DayWindow(s.now().In(s.loc))
	entry, err := s.entries.GetInWindow(ctx, userID, start, end)
	if err != nil {
		return nil, models.NewRequestFailedError(err)
	}
	return entry, nil
}

// AddEntry creates a new entry for the account, enforcing the daily limit
// with a live check. The created entry becomes the newest mirror item
// regardless of timestamp ordering against existing items.
func (s *EntryService) AddEntry(ctx context.Context, userID uint, text string) (*models.Entry, error) {
	if userID == 0 {
		return nil, models.NewNotAuthenticatedError()
	}
	if err := validation.ValidateEntryText(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if !s.CanAddEntryToday(ctx, userID) {
		observability.DailyLimitRejections.Inc()
		return nil, models.NewDuplicateDailyEntryError()
	}

	entry := &models.Entry{
		UserID:   userID,
		Text:     text,
		IsShared: false,
		PublicID: nil,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, models.NewRequestFailedError(err)
	}

	s.mirror.Prepend(userID, *entry)
	observability.EntriesCreated.Inc()
	return entry, nil
}

// UpdateEntry replaces the text of the account's entry. Date and share state
// are never touched by an edit.
func (s *EntryService) UpdateEntry(ctx context.Context, userID, id uint, text string) (*models.Entry, error) {
	if userID == 0 {
		return nil, models.NewNotAuthenticatedError()
	}
	if err := validation.ValidateEntryText(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	entry, err := s.ownedEntry(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.entries.UpdateText(ctx, id, text); err != nil {
		return nil, models.NewRequestFailedError(err)
	}

	entry.Text = text
	s.mirror.ReplaceByID(userID, *entry)
	return entry, nil
}

// DeleteEntry removes the entry and cascades: likes referencing its public
// mirror first, then the public mirror, then the entry itself.
func (s *EntryService) DeleteEntry(ctx context.Context, userID, id uint) error {
	if userID == 0 {
		return models.NewNotAuthenticatedError()
	}

	entry, err := s.ownedEntry(ctx, userID, id)
	if err != nil {
		return err
	}

	if entry.IsShared && entry.PublicID != nil {
		// The public copy's own creation time decides which feed day to evict.
		sharedDay := s.now()
		if pub, pubErr := s.publics.GetByID(ctx, *entry.PublicID); pubErr == nil {
			sharedDay = pub.CreatedAt
		}
		if err := s.publics.DeleteLikesFor(ctx, *entry.PublicID); err != nil {
			return models.NewRequestFailedError(err)
		}
		if err := s.publics.Delete(ctx, *entry.PublicID); err != nil {
			return models.NewRequestFailedError(err)
		}
		s.invalidateFeedDay(ctx, sharedDay)
	}

	if err := s.entries.Delete(ctx, id); err != nil {
		return models.NewRequestFailedError(err)
	}

	s.mirror.RemoveByID(userID, id)
	return nil
}

// ToggleShare flips the entry between private and shared. Sharing first
// creates the public copy, then marks the source; if the second write fails
// the orphaned public copy is left for the reconciliation sweep. Unsharing
// cascades likes, then the public copy, then clears the source flags.
func (s *EntryService) ToggleShare(ctx context.Context, userID, id uint) (*models.Entry, error) {
	if userID == 0 {
		return nil, models.NewNotAuthenticatedError()
	}

	entry, err := s.ownedEntry(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if entry.IsShared && entry.PublicID != nil {
		if err := s.publics.DeleteLikesFor(ctx, *entry.PublicID); err != nil {
			return nil, models.NewRequestFailedError(err)
		}
		if err := s.publics.Delete(ctx, *entry.PublicID); err != nil {
			return nil, models.NewRequestFailedError(err)
		}
		if err := s.entries.SetShareState(ctx, id, false, nil); err != nil {
			return nil, models.NewRequestFailedError(err)
		}

		entry.IsShared = false
		entry.PublicID = nil
		observability.ShareToggles.WithLabelValues("unshare").Inc()
	} else {
		pub := &models.PublicEntry{
			OriginalAuthorID: entry.UserID,
			OriginalDocID:    entry.ID,
			Text:             entry.Text,
		}
		if err := s.publics.Create(ctx, pub); err != nil {
			return nil, models.NewRequestFailedError(err)
		}
		if err := s.entries.SetShareState(ctx, id, true, &pub.ID); err != nil {
			// The public copy now exists without a back reference; the
			// reconciliation sweep deletes such orphans.
			return nil, models.NewRequestFailedError(err)
		}

		entry.IsShared = true
		entry.PublicID = &pub.ID
		observability.ShareToggles.WithLabelValues("share").Inc()
	}

	s.mirror.ReplaceByID(userID, *entry)
	s.invalidateFeedDay(ctx, s.now())
	return entry, nil
}

// ownedEntry loads an entry and verifies ownership.
func (s *EntryService) ownedEntry(ctx context.Context, userID, id uint) (*models.Entry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only modify your own entries")
	}
	return entry, nil
}

func (s *EntryService) invalidateFeedDay(ctx context.Context, t time.Time) {
	cache.InvalidateFeedDay(ctx, t.UTC().Format("2006-01-02"))
}
