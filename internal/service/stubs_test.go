package service

import (
	"context"
	"time"

	"shukran/internal/models"
)

// entryRepoStub is a stub for repository.EntryRepository.
type entryRepoStub struct {
	createFn         func(context.Context, *models.Entry) error
	getByIDFn        func(context.Context, uint) (*models.Entry, error)
	listByOwnerFn    func(context.Context, uint) ([]models.Entry, error)
	existsInWindowFn func(context.Context, uint, time.Time, time.Time) (bool, error)
	getInWindowFn    func(context.Context, uint, time.Time, time.Time) (*models.Entry, error)
	updateTextFn     func(context.Context, uint, string) error
	setShareStateFn  func(context.Context, uint, bool, *uint) error
	deleteFn         func(context.Context, uint) error
}

func (s *entryRepoStub) Create(ctx context.Context, entry *models.Entry) error {
	return s.createFn(ctx, entry)
}
func (s *entryRepoStub) GetByID(ctx context.Context, id uint) (*models.Entry, error) {
	return s.getByIDFn(ctx, id)
}
func (s *entryRepoStub) ListByOwner(ctx context.Context, userID uint) ([]models.Entry, error) {
	return s.listByOwnerFn(ctx, userID)
}
func (s *entryRepoStub) ExistsInWindow(ctx context.Context, userID uint, start, end time.Time) (bool, error) {
	return s.existsInWindowFn(ctx, userID, start, end)
}
func (s *entryRepoStub) GetInWindow(ctx context.Context, userID uint, start, end time.Time) (*models.Entry, error) {
	return s.getInWindowFn(ctx, userID, start, end)
}
func (s *entryRepoStub) UpdateText(ctx context.Context, id uint, text string) error {
	return s.updateTextFn(ctx, id, text)
}
func (s *entryRepoStub) SetShareState(ctx context.Context, id uint, isShared bool, publicID *uint) error {
	return s.setShareStateFn(ctx, id, isShared, publicID)
}
func (s *entryRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopEntryRepo() *entryRepoStub {
	return &entryRepoStub{
		createFn:      func(_ context.Context, _ *models.Entry) error { return nil },
		getByIDFn:     func(_ context.Context, _ uint) (*models.Entry, error) { return &models.Entry{}, nil },
		listByOwnerFn: func(_ context.Context, _ uint) ([]models.Entry, error) { return nil, nil },
		existsInWindowFn: func(_ context.Context, _ uint, _, _ time.Time) (bool, error) {
			return false, nil
		},
		getInWindowFn: func(_ context.Context, _ uint, _, _ time.Time) (*models.Entry, error) {
			return nil, nil
		},
		updateTextFn:    func(_ context.Context, _ uint, _ string) error { return nil },
		setShareStateFn: func(_ context.Context, _ uint, _ bool, _ *uint) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
	}
}

// publicRepoStub is a stub for repository.PublicEntryRepository.
type publicRepoStub struct {
	createFn         func(context.Context, *models.PublicEntry) error
	getByIDFn        func(context.Context, uint) (*models.PublicEntry, error)
	deleteFn         func(context.Context, uint) error
	deleteLikesForFn func(context.Context, uint) error
	listForWindowFn  func(context.Context, time.Time, time.Time, uint) ([]models.PublicEntry, error)
	isLikedFn        func(context.Context, uint, uint) (bool, error)
	countLikesFn     func(context.Context, uint) (int, error)
	insertLikeFn     func(context.Context, uint, uint) error
	removeLikeFn     func(context.Context, uint, uint) error
	favoritesFn      func(context.Context, uint) ([]models.PublicEntry, error)
	deleteOrphansFn  func(context.Context) (int64, error)
}

func (s *publicRepoStub) Create(ctx context.Context, pub *models.PublicEntry) error {
	return s.createFn(ctx, pub)
}
func (s *publicRepoStub) GetByID(ctx context.Context, id uint) (*models.PublicEntry, error) {
	return s.getByIDFn(ctx, id)
}
func (s *publicRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *publicRepoStub) DeleteLikesFor(ctx context.Context, publicID uint) error {
	return s.deleteLikesForFn(ctx, publicID)
}
func (s *publicRepoStub) ListForWindow(ctx context.Context, start, end time.Time, currentUserID uint) ([]models.PublicEntry, error) {
	return s.listForWindowFn(ctx, start, end, currentUserID)
}
func (s *publicRepoStub) IsLiked(ctx context.Context, userID, publicID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, publicID)
}
func (s *publicRepoStub) CountLikes(ctx context.Context, publicID uint) (int, error) {
	return s.countLikesFn(ctx, publicID)
}
func (s *publicRepoStub) InsertLike(ctx context.Context, userID, publicID uint) error {
	return s.insertLikeFn(ctx, userID, publicID)
}
func (s *publicRepoStub) RemoveLike(ctx context.Context, userID, publicID uint) error {
	return s.removeLikeFn(ctx, userID, publicID)
}
func (s *publicRepoStub) Favorites(ctx context.Context, userID uint) ([]models.PublicEntry, error) {
	return s.favoritesFn(ctx, userID)
}
func (s *publicRepoStub) DeleteOrphans(ctx context.Context) (int64, error) {
	return s.deleteOrphansFn(ctx)
}

func noopPublicRepo() *publicRepoStub {
	return &publicRepoStub{
		createFn: func(_ context.Context, _ *models.PublicEntry) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.PublicEntry, error) {
			return &models.PublicEntry{}, nil
		},
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		deleteLikesForFn: func(_ context.Context, _ uint) error { return nil },
		listForWindowFn: func(_ context.Context, _, _ time.Time, _ uint) ([]models.PublicEntry, error) {
			return nil, nil
		},
		isLikedFn:       func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		countLikesFn:    func(_ context.Context, _ uint) (int, error) { return 0, nil },
		insertLikeFn:    func(_ context.Context, _, _ uint) error { return nil },
		removeLikeFn:    func(_ context.Context, _, _ uint) error { return nil },
		favoritesFn:     func(_ context.Context, _ uint) ([]models.PublicEntry, error) { return nil, nil },
		deleteOrphansFn: func(_ context.Context) (int64, error) { return 0, nil },
	}
}
