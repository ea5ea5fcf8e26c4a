package server

import (
	"context"
	"time"

	"shukran/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockEntryRepository is a mock of the EntryRepository interface
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *models.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id uint) (*models.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListByOwner(ctx context.Context, userID uint) ([]models.Entry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entry), args.Error(1)
}

func (m *MockEntryRepository) ExistsInWindow(ctx context.Context, userID uint, start, end time.Time) (bool, error) {
	args := m.Called(ctx, userID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntryRepository) GetInWindow(ctx context.Context, userID uint, start, end time.Time) (*models.Entry, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Entry), args.Error(1)
}

func (m *MockEntryRepository) UpdateText(ctx context.Context, id uint, text string) error {
	args := m.Called(ctx, id, text)
	return args.Error(0)
}

func (m *MockEntryRepository) SetShareState(ctx context.Context, id uint, isShared bool, publicID *uint) error {
	args := m.Called(ctx, id, isShared, publicID)
	return args.Error(0)
}

func (m *MockEntryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPublicEntryRepository is a mock of the PublicEntryRepository interface
type MockPublicEntryRepository struct {
	mock.Mock
}

func (m *MockPublicEntryRepository) Create(ctx context.Context, pub *models.PublicEntry) error {
	args := m.Called(ctx, pub)
	return args.Error(0)
}

func (m *MockPublicEntryRepository) GetByID(ctx context.Context, id uint) (*models.PublicEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublicEntry), args.Error(1)
}

func (m *MockPublicEntryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPublicEntryRepository) DeleteLikesFor(ctx context.Context, publicID uint) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

func (m *MockPublicEntryRepository) ListForWindow(ctx context.Context, start, end time.Time, currentUserID uint) ([]models.PublicEntry, error) {
	args := m.Called(ctx, start, end, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PublicEntry), args.Error(1)
}

func (m *MockPublicEntryRepository) IsLiked(ctx context.Context, userID, publicID uint) (bool, error) {
	args := m.Called(ctx, userID, publicID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPublicEntryRepository) CountLikes(ctx context.Context, publicID uint) (int, error) {
	args := m.Called(ctx, publicID)
	return args.Int(0), args.Error(1)
}

func (m *MockPublicEntryRepository) InsertLike(ctx context.Context, userID, publicID uint) error {
	args := m.Called(ctx, userID, publicID)
	return args.Error(0)
}

func (m *MockPublicEntryRepository) RemoveLike(ctx context.Context, userID, publicID uint) error {
	args := m.Called(ctx, userID, publicID)
	return args.Error(0)
}

func (m *MockPublicEntryRepository) Favorites(ctx context.Context, userID uint) ([]models.PublicEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PublicEntry), args.Error(1)
}

func (m *MockPublicEntryRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
