package journal

import (
	"sync"

	"shukran/internal/models"
)

// Store keeps an ordered in-memory mirror of each account's own entries,
// newest first. All mutations go through a single method per operation so the
// mirror can never drift through ad-hoc writes; the persistence layer remains
// the source of truth and the mirror is replaced wholesale on refresh.
type Store struct {
	mu      sync.RWMutex
	mirrors map[uint][]models.Entry
}

// NewStore creates an empty mirror store.
func NewStore() *Store {
	return &Store{mirrors: make(map[uint][]models.Entry)}
}

// ReplaceAll swaps the account's mirror for the given list, which must already
// be ordered by creation time descending.
func (s *Store) ReplaceAll(userID uint, entries []models.Entry) {
	cp := make([]models.Entry, len(entries))
	copy(cp, entries)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mirrors[userID] = cp
}

// Prepend inserts a freshly created entry at position 0. Insertion order is
// "newest created wins", regardless of how the server-assigned timestamp
// compares to existing items.
func (s *Store) Prepend(userID uint, e models.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mirrors[userID] = append([]models.Entry{e}, s.mirrors[userID]...)
}

// ReplaceByID swaps the mirror item with the same ID for the given copy,
// keeping its position. Returns false when no item matches.
func (s *Store) ReplaceByID(userID uint, e models.Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	mirror := s.mirrors[userID]
	for i := range mirror {
		if mirror[i].ID == e.ID {
			mirror[i] = e
			return true
		}
	}
	return false
}

// RemoveByID deletes the mirror item with the given ID, if present.
func (s *Store) RemoveByID(userID, id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mirror := s.mirrors[userID]
	for i := range mirror {
		if mirror[i].ID == id {
			s.mirrors[userID] = append(mirror[:i], mirror[i+1:]...)
			return
		}
	}
}

// Snapshot returns a copy of the account's mirror and whether one exists.
func (s *Store) Snapshot(userID uint) ([]models.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mirror, ok := s.mirrors[userID]
	if !ok {
		return nil, false
	}
	cp := make([]models.Entry, len(mirror))
	copy(cp, mirror)
	return cp, true
}

// Drop discards the account's mirror entirely.
func (s *Store) Drop(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.mirrors, userID)
}

// ActiveUsers lists the accounts that currently hold a mirror.
func (s *Store) ActiveUsers() []uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uint, 0, len(s.mirrors))
	for id := range s.mirrors {
		ids = append(ids, id)
	}
	return ids
}
