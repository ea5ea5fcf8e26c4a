package repository

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"shukran/internal/config"
	"shukran/internal/database"
	"shukran/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	// Set environment to test: Connect swaps in the shared in-memory SQLite.
	os.Setenv("APP_ENV", "test")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Repository tests skipped: failed to load test config: %v", err)
		os.Exit(0)
	}

	testDB, err = database.Connect(cfg)
	if err != nil {
		log.Printf("Repository tests skipped: test database unavailable: %v", err)
		os.Exit(0)
	}

	os.Exit(m.Run())
}

var userSeq atomic.Uint64

// createTestUser inserts a fresh user so tests never collide on unique columns.
func createTestUser(t *testing.T) *models.User {
	t.Helper()
	n := userSeq.Add(1)
	user := &models.User{
		Username:    fmt.Sprintf("test-user-%d", n),
		Email:       fmt.Sprintf("test-user-%d@test.local", n),
		Password:    "x",
		IsAnonymous: true,
	}
	require.NoError(t, testDB.Create(user).Error)
	return user
}

func createTestEntry(t *testing.T, userID uint, at time.Time, text string) *models.Entry {
	t.Helper()
	entry := &models.Entry{
		UserID:    userID,
		Text:      text,
		CreatedAt: at,
	}
	require.NoError(t, testDB.Create(entry).Error)
	return entry
}

func createTestPublic(t *testing.T, authorID, docID uint, at time.Time, text string) *models.PublicEntry {
	t.Helper()
	pub := &models.PublicEntry{
		OriginalAuthorID: authorID,
		OriginalDocID:    docID,
		Text:             text,
		CreatedAt:        at,
	}
	require.NoError(t, testDB.Create(pub).Error)
	return pub
}
