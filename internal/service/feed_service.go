package service

import (
	"context"
	"time"

	"shukran/internal/cache"
	"shukran/internal/journal"
	"shukran/internal/models"
	"shukran/internal/observability"
	"shukran/internal/repository"
)

// FeedService serves the public feed, the like toggle, and favorites.
// The feed groups shared entries by UTC calendar day; like counts are
// recomputed from like rows on every read.
type FeedService struct {
	publics repository.PublicEntryRepository
}

// NewFeedService creates a FeedService.
func NewFeedService(publics repository.PublicEntryRepository) *FeedService {
	return &FeedService{publics: publics}
}

// PublicEntriesForDate lists the shared entries of the UTC day containing
// date, newest first. currentUserID may be zero for anonymous browsing; only
// anonymous reads go through the cache since IsLiked is per account.
func (s *FeedService) PublicEntriesForDate(ctx context.Context, date time.Time, currentUserID uint) ([]models.PublicEntry, error) {
	start, end := journal.UTCDayWindow(date)

	if currentUserID == 0 {
		var pubs []models.PublicEntry
		key := cache.FeedDayKey(start.Format("2006-01-02"))
		err := cache.Aside(ctx, key, &pubs, cache.FeedDayTTL, func() error {
			var fetchErr error
			pubs, fetchErr = s.publics.ListForWindow(ctx, start, end, 0)
			return fetchErr
		})
		if err != nil {
			return nil, models.NewRequestFailedError(err)
		}
		return pubs, nil
	}

	pubs, err := s.publics.ListForWindow(ctx, start, end, currentUserID)
	if err != nil {
		return nil, models.NewRequestFailedError(err)
	}
	return pubs, nil
}

// ToggleLike flips the account's like on a public entry: check the existing
// row, delete or insert, then recount distinct likers. The sequence is
// multi-step with no transaction; the unique index keeps a racing double
// toggle from leaving two rows behind.
func (s *FeedService) ToggleLike(ctx context.Context, userID, publicID uint) (models.LikeStatus, error) {
	if userID == 0 {
		return models.LikeStatus{}, models.NewNotAuthenticatedError()
	}

	pub, err := s.publics.GetByID(ctx, publicID)
	if err != nil {
		return models.LikeStatus{}, err
	}

	liked, err := s.publics.IsLiked(ctx, userID, publicID)
	if err != nil {
		return models.LikeStatus{}, models.NewRequestFailedError(err)
	}

	if liked {
		if err := s.publics.RemoveLike(ctx, userID, publicID); err != nil {
			return models.LikeStatus{}, models.NewRequestFailedError(err)
		}
		observability.LikeToggles.WithLabelValues("unlike").Inc()
	} else {
		if err := s.publics.InsertLike(ctx, userID, publicID); err != nil {
			return models.LikeStatus{}, models.NewRequestFailedError(err)
		}
		observability.LikeToggles.WithLabelValues("like").Inc()
	}

	count, err := s.publics.CountLikes(ctx, publicID)
	if err != nil {
		return models.LikeStatus{}, models.NewRequestFailedError(err)
	}

	cache.InvalidateFeedDay(ctx, pub.CreatedAt.UTC().Format("2006-01-02"))
	return models.LikeStatus{IsLiked: !liked, LikeCount: count}, nil
}

// LikeStatus reports whether the account has liked the public entry and the
// live liker count.
func (s *FeedService) LikeStatus(ctx context.Context, userID, publicID uint) (models.LikeStatus, error) {
	liked := false
	if userID != 0 {
		var err error
		liked, err = s.publics.IsLiked(ctx, userID, publicID)
		if err != nil {
			return models.LikeStatus{}, models.NewRequestFailedError(err)
		}
	}

	count, err := s.publics.CountLikes(ctx, publicID)
	if err != nil {
		return models.LikeStatus{}, models.NewRequestFailedError(err)
	}
	return models.LikeStatus{IsLiked: liked, LikeCount: count}, nil
}

// Favorites returns exactly the public entries the account has an active like
// for, sorted by date descending.
func (s *FeedService) Favorites(ctx context.Context, userID uint) ([]models.PublicEntry, error) {
	if userID == 0 {
		return nil, models.NewNotAuthenticatedError()
	}
	pubs, err := s.publics.Favorites(ctx, userID)
	if err != nil {
		return nil, models.NewRequestFailedError(err)
	}
	return pubs, nil
}
