package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"shukran/internal/models"
	"shukran/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PublicEntryRepository defines the gateway operations for the public feed,
// likes, and favorites. Like counts are always derived by counting like rows;
// the like_count column is never read back.
type PublicEntryRepository interface {
	Create(ctx context.Context, pub *models.PublicEntry) error
	GetByID(ctx context.Context, id uint) (*models.PublicEntry, error)
	Delete(ctx context.Context, id uint) error
	// DeleteLikesFor removes every like referencing the public entry.
	DeleteLikesFor(ctx context.Context, publicID uint) error
	// ListForWindow returns public entries with created_at in [start, end),
	// newest first, with Likes and IsLiked derived for the requesting account
	// (currentUserID may be zero for anonymous browsing).
	ListForWindow(ctx context.Context, start, end time.Time, currentUserID uint) ([]models.PublicEntry, error)
	IsLiked(ctx context.Context, userID, publicID uint) (bool, error)
	// CountLikes counts distinct accounts liking the public entry.
	CountLikes(ctx context.Context, publicID uint) (int, error)
	InsertLike(ctx context.Context, userID, publicID uint) error
	RemoveLike(ctx context.Context, userID, publicID uint) error
	// Favorites returns the public entries the account has liked, sorted by
	// creation time descending. The join's natural order is not trusted.
	Favorites(ctx context.Context, userID uint) ([]models.PublicEntry, error)
	// DeleteOrphans removes public entries whose source gratitude no longer
	// exists or no longer references them, together with their likes. Returns
	// the number of public entries removed.
	DeleteOrphans(ctx context.Context) (int64, error)
}

type publicEntryRepository struct {
	db *gorm.DB
}

// NewPublicEntryRepository returns a new PublicEntryRepository implementation.
func NewPublicEntryRepository(db *gorm.DB) PublicEntryRepository {
	return &publicEntryRepository{db: db}
}

func (r *publicEntryRepository) Create(ctx context.Context, pub *models.PublicEntry) error {
	defer observability.TrackQuery("create", "public_gratitudes")()
	return r.db.WithContext(ctx).Create(pub).Error
}

func (r *publicEntryRepository) GetByID(ctx context.Context, id uint) (*models.PublicEntry, error) {
	defer observability.TrackQuery("read", "public_gratitudes")()
	var pub models.PublicEntry
	err := r.db.WithContext(ctx).First(&pub, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("PublicEntry", id)
	}
	if err != nil {
		return nil, err
	}
	return &pub, nil
}

func (r *publicEntryRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "public_gratitudes")()
	return r.db.WithContext(ctx).Delete(&models.PublicEntry{}, id).Error
}

func (r *publicEntryRepository) DeleteLikesFor(ctx context.Context, publicID uint) error {
	defer observability.TrackQuery("delete", "likes")()
	return r.db.WithContext(ctx).
		Where("gratitude_id = ?", publicID).
		Delete(&models.Like{}).Error
}

func (r *publicEntryRepository) ListForWindow(ctx context.Context, start, end time.Time, currentUserID uint) ([]models.PublicEntry, error) {
	defer observability.TrackQuery("read", "public_gratitudes")()
	var pubs []models.PublicEntry
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&pubs).Error
	if err != nil {
		return nil, err
	}
	if err := r.deriveLikeState(ctx, pubs, currentUserID); err != nil {
		return nil, err
	}
	return pubs, nil
}

func (r *publicEntryRepository) IsLiked(ctx context.Context, userID, publicID uint) (bool, error) {
	defer observability.TrackQuery("read", "likes")()
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND gratitude_id = ?", userID, publicID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *publicEntryRepository) CountLikes(ctx context.Context, publicID uint) (int, error) {
	defer observability.TrackQuery("read", "likes")()
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("gratitude_id = ?", publicID).
		Distinct("user_id").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *publicEntryRepository) InsertLike(ctx context.Context, userID, publicID uint) error {
	defer observability.TrackQuery("create", "likes")()
	// The unique index on (user_id, gratitude_id) makes a racing double toggle
	// a no-op instead of a duplicate key error.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Like{UserID: userID, GratitudeID: publicID}).Error
}

func (r *publicEntryRepository) RemoveLike(ctx context.Context, userID, publicID uint) error {
	defer observability.TrackQuery("delete", "likes")()
	return r.db.WithContext(ctx).
		Where("user_id = ? AND gratitude_id = ?", userID, publicID).
		Delete(&models.Like{}).Error
}

func (r *publicEntryRepository) Favorites(ctx context.Context, userID uint) ([]models.PublicEntry, error) {
	defer observability.TrackQuery("read", "likes")()
	var pubs []models.PublicEntry
	err := r.db.WithContext(ctx).
		Joins("JOIN likes ON likes.gratitude_id = public_gratitudes.id").
		Where("likes.user_id = ?", userID).
		Find(&pubs).Error
	if err != nil {
		return nil, err
	}

	if err := r.deriveLikeState(ctx, pubs, userID); err != nil {
		return nil, err
	}

	sort.Slice(pubs, func(i, j int) bool {
		return pubs[i].CreatedAt.After(pubs[j].CreatedAt)
	})
	return pubs, nil
}

func (r *publicEntryRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	defer observability.TrackQuery("delete", "public_gratitudes")()

	// Public entries whose source row is gone, or whose source no longer
	// points back at them (unshare raced or the second write failed).
	orphanCondition := `NOT EXISTS (
		SELECT 1 FROM gratitudes g
		WHERE g.id = public_gratitudes.original_doc_id
		  AND g.public_id = public_gratitudes.id
	)`

	var orphanIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.PublicEntry{}).
		Where(orphanCondition).
		Pluck("id", &orphanIDs).Error; err != nil {
		return 0, err
	}
	if len(orphanIDs) == 0 {
		return 0, nil
	}

	if err := r.db.WithContext(ctx).
		Where("gratitude_id IN ?", orphanIDs).
		Delete(&models.Like{}).Error; err != nil {
		return 0, err
	}

	res := r.db.WithContext(ctx).Delete(&models.PublicEntry{}, orphanIDs)
	return res.RowsAffected, res.Error
}

// deriveLikeState fills the computed Likes and IsLiked fields from the likes
// table in two batched queries.
func (r *publicEntryRepository) deriveLikeState(ctx context.Context, pubs []models.PublicEntry, currentUserID uint) error {
	if len(pubs) == 0 {
		return nil
	}

	ids := make([]uint, len(pubs))
	for i := range pubs {
		ids[i] = pubs[i].ID
	}

	type likeCount struct {
		GratitudeID uint
		Cnt         int
	}
	var counts []likeCount
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Select("gratitude_id, COUNT(DISTINCT user_id) AS cnt").
		Where("gratitude_id IN ?", ids).
		Group("gratitude_id").
		Scan(&counts).Error
	if err != nil {
		return err
	}
	countByID := make(map[uint]int, len(counts))
	for _, c := range counts {
		countByID[c.GratitudeID] = c.Cnt
	}

	likedByID := make(map[uint]bool)
	if currentUserID != 0 {
		var likedIDs []uint
		err = r.db.WithContext(ctx).
			Model(&models.Like{}).
			Where("user_id = ? AND gratitude_id IN ?", currentUserID, ids).
			Pluck("gratitude_id", &likedIDs).Error
		if err != nil {
			return err
		}
		for _, id := range likedIDs {
			likedByID[id] = true
		}
	}

	for i := range pubs {
		pubs[i].Likes = countByID[pubs[i].ID]
		pubs[i].IsLiked = likedByID[pubs[i].ID]
	}
	return nil
}
