package repository

import (
	"context"
	"errors"
	"time"

	"shukran/internal/models"
	"shukran/internal/observability"

	"gorm.io/gorm"
)

// EntryRepository defines the gateway operations for private gratitude entries.
type EntryRepository interface {
	Create(ctx context.Context, entry *models.Entry) error
	GetByID(ctx context.Context, id uint) (*models.Entry, error)
	// ListByOwner returns the account's entries ordered by creation time descending.
	ListByOwner(ctx context.Context, userID uint) ([]models.Entry, error)
	// ExistsInWindow reports whether the owner has any entry with
	// created_at in [start, end), limited to one row.
	ExistsInWindow(ctx context.Context, userID uint, start, end time.Time) (bool, error)
	// GetInWindow returns the newest entry in [start, end), or nil.
	GetInWindow(ctx context.Context, userID uint, start, end time.Time) (*models.Entry, error)
	// UpdateText replaces the text of an entry; date and share state are untouched.
	UpdateText(ctx context.Context, id uint, text string) error
	// SetShareState writes is_shared and public_id together.
	SetShareState(ctx context.Context, id uint, isShared bool, publicID *uint) error
	Delete(ctx context.Context, id uint) error
}

type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository returns a new EntryRepository implementation.
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Create(ctx context.Context, entry *models.Entry) error {
	defer observability.TrackQuery("create", "gratitudes")()
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepository) GetByID(ctx context.Context, id uint) (*models.Entry, error) {
	defer observability.TrackQuery("read", "gratitudes")()
	var entry models.Entry
	err := r.db.WithContext(ctx).First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Entry", id)
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) ListByOwner(ctx context.Context, userID uint) ([]models.Entry, error) {
	defer observability.TrackQuery("read", "gratitudes")()
	var entries []models.Entry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *entryRepository) ExistsInWindow(ctx context.Context, userID uint, start, end time.Time) (bool, error) {
	defer observability.TrackQuery("read", "gratitudes")()
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Entry{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

func (r *entryRepository) GetInWindow(ctx context.Context, userID uint, start, end time.Time) (*models.Entry, error) {
	defer observability.TrackQuery("read", "gratitudes")()
	var entries []models.Entry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at DESC").
		Limit(1).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

func (r *entryRepository) UpdateText(ctx context.Context, id uint, text string) error {
	defer observability.TrackQuery("update", "gratitudes")()
	return r.db.WithContext(ctx).
		Model(&models.Entry{}).
		Where("id = ?", id).
		Updates(map[string]any{"text": text, "updated_at": time.Now()}).Error
}

func (r *entryRepository) SetShareState(ctx context.Context, id uint, isShared bool, publicID *uint) error {
	defer observability.TrackQuery("update", "gratitudes")()
	return r.db.WithContext(ctx).
		Model(&models.Entry{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_shared":  isShared,
			"public_id":  publicID,
			"updated_at": time.Now(),
		}).Error
}

func (r *entryRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "gratitudes")()
	return r.db.WithContext(ctx).Delete(&models.Entry{}, id).Error
}
