package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"shukran/internal/journal"
	"shukran/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntryService(entries *entryRepoStub, publics *publicRepoStub) *EntryService {
	svc := NewEntryService(entries, publics, journal.NewStore(), time.UTC)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestEntryService_CanAddEntryToday(t *testing.T) {
	t.Parallel()

	t.Run("no entry today allows adding", func(t *testing.T) {
		t.Parallel()
		svc := newTestEntryService(noopEntryRepo(), noopPublicRepo())
		assert.True(t, svc.CanAddEntryToday(context.Background(), 1))
	})

	t.Run("existing entry blocks adding", func(t *testing.T) {
		t.Parallel()
		repo := noopEntryRepo()
		repo.existsInWindowFn = func(_ context.Context, _ uint, _, _ time.Time) (bool, error) {
			return true, nil
		}
		svc := newTestEntryService(repo, noopPublicRepo())
		assert.False(t, svc.CanAddEntryToday(context.Background(), 1))
	})

	t.Run("gateway error fails closed", func(t *testing.T) {
		t.Parallel()
		repo := noopEntryRepo()
		repo.existsInWindowFn = func(_ context.Context, _ uint, _, _ time.Time) (bool, error) {
			return false, errors.New("connection reset")
		}
		svc := newTestEntryService(repo, noopPublicRepo())
		assert.False(t, svc.CanAddEntryToday(context.Background(), 1))
	})

	t.Run("anonymous caller cannot add", func(t *testing.T) {
		t.Parallel()
		svc := newTestEntryService(noopEntryRepo(), noopPublicRepo())
		assert.False(t, svc.CanAddEntryToday(context.Background(), 0))
	})
}

func TestEntryService_CanAddEntryToday_WindowBounds(t *testing.T) {
	t.Parallel()

	var gotStart, gotEnd time.Time
	repo := noopEntryRepo()
	repo.existsInWindowFn = func(_ context.Context, _ uint, start, end time.Time) (bool, error) {
		gotStart, gotEnd = start, end
		return false, nil
	}
	svc := newTestEntryService(repo, noopPublicRepo())

	svc.CanAddEntryToday(context.Background(), 1)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), gotStart)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), gotEnd)
}

func TestEntryService_AddEntry(t *testing.T) {
	t.Parallel()

	t.Run("creates and prepends to mirror", func(t *testing.T) {
		t.Parallel()
		repo := noopEntryRepo()
		repo.createFn = func(_ context.Context, e *models.Entry) error {
			e.ID = 42
			return nil
		}
		svc := newTestEntryService(repo, noopPublicRepo())
		svc.mirror.ReplaceAll(1, []models.Entry{{ID: 1, UserID: 1}})

		entry, err := svc.AddEntry(context.Background(), 1, "grateful for tea")
		require.NoError(t, err)
		assert.Equal(t, uint(42), entry.ID)
		assert.False(t, entry.IsShared)
		assert.Nil(t, entry.PublicID)

		snap, ok := svc.mirror.Snapshot(1)
		require.True(t, ok)
		require.Len(t, snap, 2)
		assert.Equal(t, uint(42), snap[0].ID, "new entry must be first")
	})

	t.Run("rejects a second entry the same day", func(t *testing.T) {
		t.Parallel()
		repo := noopEntryRepo()
		repo.existsInWindowFn = func(_ context.Context, _ uint, _, _ time.Time) (bool, error) {
			return true, nil
		}
		created := false
		repo.createFn = func(_ context.Context, _ *models.Entry) error {
			created = true
			return nil
		}
		svc := newTestEntryService(repo, noopPublicRepo())

		_, err := svc.AddEntry(context.Background(), 1, "second thoughts")
		assertCode(t, err, "DUPLICATE_DAILY_ENTRY")
		assert.False(t, created, "create must not be attempted after a limit rejection")
	})

	t.Run("rejects when the limit check errors", func(t *testing.T) {
		t.Parallel()
		repo := noopEntryRepo()
		repo.existsInWindowFn = func(_ context.Context, _ uint, _, _ time.Time) (bool, error) {
			return false, errors.New("timeout")
		}
		svc := newTestEntryService(repo, noopPublicRepo())

		_, err := svc.AddEntry(context.Background(), 1, "text")
		assertCode(t, err, "DUPLICATE_DAILY_ENTRY")
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()
		svc := newTestEntryService(noopEntryRepo(), noopPublicRepo())
		_, err := svc.AddEntry(context.Background(), 1, "   ")
		assertCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("requires an account", func(t *testing.T) {
		t.Parallel()
		svc := newTestEntryService(noopEntryRepo(), noopPublicRepo())
		_, err := svc.AddEntry(context.Background(), 0, "text")
		assertCode(t, err, "NOT_AUTHENTICATED")
	})
}

func TestEntryService_UpdateEntry(t *testing.T) {
	t.Parallel()

	t.Run("updates text only", func(t *testing.T) {
		t.Parallel()
		pubID := uint(7)
		repo := noopEntryRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Entry, error) {
			return &models.Entry{ID: id, UserID: 1, Text: "old", IsShared: true, PublicID: &pubID}, nil
		}
		var gotText string
		repo.updateTextFn = func(_ context.Context, _ uint, text string) error {
			gotText = text
			return nil
		}
		svc := newTestEntryService(repo, noopPublicRepo())

		entry, err := svc.UpdateEntry(context.Background(), 1, 5, "new")
		require.NoError(t, err)
		assert.Equal(t, "new", gotText)
		assert.Equal(t, "new", entry.Text)
		assert.True(t, entry.IsShared, "share state survives an edit")
	})

	t.Run("rejects another account's entry", func(t *testing.T) {
		t.Parallel()
		repo := noopEntryRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Entry, error) {
			return &models.Entry{ID: id, UserID: 2}, nil
		}
		svc := newTestEntryService(repo, noopPublicRepo())

		_, err := svc.UpdateEntry(context.Background(), 1, 5, "new")
		assertCode(t, err, "UNAUTHORIZED")
	})
}

func TestEntryService_DeleteEntry(t *testing.T) {
	t.Parallel()

	t.Run("shared entry cascades likes then public copy then entry", func(t *testing.T) {
		t.Parallel()
		pubID := uint(7)
		var order []string

		repo := noopEntryRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Entry, error) {
			return &models.Entry{ID: id, UserID: 1, IsShared: true, PublicID: &pubID}, nil
		}
		repo.deleteFn = func(_ context.Context, _ uint) error {
			order = append(order, "entry")
			return nil
		}

		pubs := noopPublicRepo()
		pubs.deleteLikesForFn = func(_ context.Context, id uint) error {
			assert.Equal(t, pubID, id)
			order = append(order, "likes")
			return nil
		}
		pubs.deleteFn = func(_ context.Context, id uint) error {
			assert.Equal(t, pubID, id)
			order = append(order, "public")
			return nil
		}

		svc := newTestEntryService(repo, pubs)
		svc.mirror.ReplaceAll(1, []models.Entry{{ID: 5, UserID: 1}})

		require.NoError(t, svc.DeleteEntry(context.Background(), 1, 5))
		assert.Equal(t, []string{"likes", "public", "entry"}, order)

		snap, _ := svc.mirror.Snapshot(1)
		assert.Empty(t, snap)
	})

	t.Run("private entry touches no public state", func(t *testing.T) {
		t.Parallel()
		repo := noopEntryRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Entry, error) {
			return &models.Entry{ID: id, UserID: 1}, nil
		}
		pubs := noopPublicRepo()
		pubs.deleteFn = func(_ context.Context, _ uint) error {
			t.Error("public delete must not be called for a private entry")
			return nil
		}
		svc := newTestEntryService(repo, pubs)

		require.NoError(t, svc.DeleteEntry(context.Background(), 1, 5))
	})

	t.Run("like cascade failure aborts the delete", func(t *testing.T) {
		t.Parallel()
		pubID := uint(7)
		repo := noopEntryRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Entry, error) {
			return &models.Entry{ID: id, UserID: 1, IsShared: true, PublicID: &pubID}, nil
		}
		deleted := false
		repo.deleteFn = func(_ context.Context, _ uint) error {
			deleted = true
			return nil
		}
		pubs := noopPublicRepo()
		pubs.deleteLikesForFn = func(_ context.Context, _ uint) error {
			return errors.New("gateway down")
		}
		svc := newTestEntryService(repo, pubs)

		err := svc.DeleteEntry(context.Background(), 1, 5)
		assertCode(t, err, "REQUEST_FAILED")
		assert.False(t, deleted, "entry must survive when the cascade fails")
	})
}

func TestEntryService_ToggleShare(t *testing.T) {
	t.Parallel()

	t.Run("share creates the public copy before marking the source", func(t *testing.T) {
		t.Parallel()
		var order []string

		repo := noopEntryRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Entry, error) {
			return &models.Entry{ID: id, UserID: 1, Text: "sunlight"}, nil
		}
		var gotShared bool
		var gotPublicID *uint
		repo.setShareStateFn = func(_ context.Context, _ uint, isShared bool, publicID *uint) error {
			order = append(order, "mark")
			gotShared, gotPublicID = isShared, publicID
			return nil
		}

		pubs := noopPublicRepo()
		pubs.createFn = func(_ context.Context, pub *models.PublicEntry) error {
			order = append(order, "create")
			pub.ID = 9
			assert.Equal(t, "sunlight", pub.Text)
			assert.Equal(t, uint(1), pub.OriginalAuthorID)
			assert.Equal(t, uint(5), pub.OriginalDocID)
			return nil
		}

		svc := newTestEntryService(repo, pubs)
		entry, err := svc.ToggleShare(context.Background(), 1, 5)
		require.NoError(t, err)

		assert.Equal(t, []string{"create", "mark"}, order)
		assert.True(t, gotShared)
		require.NotNil(t, gotPublicID)
		assert.Equal(t, uint(9), *gotPublicID)
		assert.True(t, entry.IsShared)
	})

	t.Run("unshare cascades likes then public copy then clears flags", func(t *testing.T) {
		t.Parallel()
		pubID := uint(9)
		var order []string

		repo := noopEntryRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Entry, error) {
			return &models.Entry{ID: id, UserID: 1, IsShared: true, PublicID: &pubID}, nil
		}
		repo.setShareStateFn = func(_ context.Context, _ uint, isShared bool, publicID *uint) error {
			order = append(order, "clear")
			assert.False(t, isShared)
			assert.Nil(t, publicID)
			return nil
		}

		pubs := noopPublicRepo()
		pubs.deleteLikesForFn = func(_ context.Context, _ uint) error {
			order = append(order, "likes")
			return nil
		}
		pubs.deleteFn = func(_ context.Context, _ uint) error {
			order = append(order, "public")
			return nil
		}

		svc := newTestEntryService(repo, pubs)
		entry, err := svc.ToggleShare(context.Background(), 1, 5)
		require.NoError(t, err)

		assert.Equal(t, []string{"likes", "public", "clear"}, order)
		assert.False(t, entry.IsShared)
		assert.Nil(t, entry.PublicID)
	})

	t.Run("mark failure leaves the public copy for the sweep", func(t *testing.T) {
		t.Parallel()
		repo := noopEntryRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Entry, error) {
			return &models.Entry{ID: id, UserID: 1, Text: "x"}, nil
		}
		repo.setShareStateFn = func(_ context.Context, _ uint, _ bool, _ *uint) error {
			return errors.New("write failed")
		}

		pubDeleted := false
		pubs := noopPublicRepo()
		pubs.createFn = func(_ context.Context, pub *models.PublicEntry) error {
			pub.ID = 9
			return nil
		}
		pubs.deleteFn = func(_ context.Context, _ uint) error {
			pubDeleted = true
			return nil
		}

		svc := newTestEntryService(repo, pubs)
		_, err := svc.ToggleShare(context.Background(), 1, 5)
		assertCode(t, err, "REQUEST_FAILED")
		assert.False(t, pubDeleted, "no compensating delete; reconciliation owns orphans")
	})
}

func TestEntryService_FetchEntries_RefreshesMirror(t *testing.T) {
	t.Parallel()

	repo := noopEntryRepo()
	repo.listByOwnerFn = func(_ context.Context, userID uint) ([]models.Entry, error) {
		return []models.Entry{{ID: 3, UserID: userID}, {ID: 1, UserID: userID}}, nil
	}
	svc := newTestEntryService(repo, noopPublicRepo())
	svc.mirror.ReplaceAll(1, []models.Entry{{ID: 99, UserID: 1}})

	entries, err := svc.FetchEntries(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	snap, ok := svc.mirror.Snapshot(1)
	require.True(t, ok)
	assert.Equal(t, uint(3), snap[0].ID)
	assert.Len(t, snap, 2, "mirror is replaced wholesale, not merged")
}

func TestEntryService_TodaysEntry(t *testing.T) {
	t.Parallel()

	t.Run("returns nil without error when nothing written", func(t *testing.T) {
		t.Parallel()
		svc := newTestEntryService(noopEntryRepo(), noopPublicRepo())
		entry, err := svc.TodaysEntry(context.Background(), 1)
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("wraps gateway failures", func(t *testing.T) {
		t.Parallel()
		repo := noopEntryRepo()
		repo.getInWindowFn = func(_ context.Context, _ uint, _, _ time.Time) (*models.Entry, error) {
			return nil, errors.New("boom")
		}
		svc := newTestEntryService(repo, noopPublicRepo())
		_, err := svc.TodaysEntry(context.Background(), 1)
		assertCode(t, err, "REQUEST_FAILED")
	})
}
