package repository

import (
	"context"
	"testing"

	"shukran/internal/cache"
	"shukran/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGetByID(t *testing.T) {
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	user := &models.User{
		Username:    "quiet-otter-4821",
		Email:       "anon-abc@shukran.local",
		Password:    "hashed",
		IsAnonymous: true,
		Language:    "en",
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "quiet-otter-4821", got.Username)
	assert.True(t, got.IsAnonymous)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo := NewUserRepository(testDB)

	_, err := repo.GetByID(context.Background(), 424242)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepository_GetByID_CachesAside(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	repo := NewUserRepository(testDB)
	ctx := context.Background()
	user := createTestUser(t)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)

	// A second read is served from Redis; mutate the row to prove it.
	require.NoError(t, testDB.Model(&models.User{}).
		Where("id = ?", user.ID).Update("username", "renamed").Error)

	got, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username, "cached copy wins within TTL")
}

func TestUserRepository_GetByEmailAndUsername(t *testing.T) {
	repo := NewUserRepository(testDB)
	ctx := context.Background()
	user := createTestUser(t)

	got, err := repo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)

	got, err = repo.GetByEmail(ctx, "nobody@test.local")
	require.NoError(t, err)
	assert.Nil(t, got, "missing email is not an error")

	got, err = repo.GetByUsername(ctx, user.Username)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)

	got, err = repo.GetByUsername(ctx, "no-such-name")
	require.NoError(t, err)
	assert.Nil(t, got)
}
