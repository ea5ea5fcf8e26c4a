package seed

import (
	"fmt"
	"log"
	"time"

	"shukran/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	MaxDaysBack int
	// ShareRatio is the fraction of entries (0..1) that get a public copy.
	ShareRatio  float64
	ShouldClean bool
}

// DefaultOptions returns a small demo dataset configuration.
func DefaultOptions() Options {
	return Options{
		NumUsers:    10,
		MaxDaysBack: 21,
		ShareRatio:  0.4,
		ShouldClean: false,
	}
}

// Seeder populates the database with demo journal data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB, loc *time.Location) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, loc)}
}

// ClearAll removes all seeded data. Order matters for foreign keys: likes,
// then public copies, then entries, then users.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{
		&models.Like{}, &models.PublicEntry{}, &models.Entry{}, &models.User{},
	} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// SeedJournal creates users each with a run of backdated daily entries, a
// share of which get public copies, and cross-likes between users. At most
// one entry per user per day is created, matching the journal's rule.
func (s *Seeder) SeedJournal(opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := s.factory.CreateAnonymousUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}

	var pubs []*models.PublicEntry
	for _, user := range users {
		// Each user journals on a random subset of recent days.
		entries := make([]*models.Entry, 0, opts.MaxDaysBack)
		for day := 0; day < opts.MaxDaysBack; day++ {
			if s.factory.rng.Float64() < 0.6 {
				entries = append(entries, s.factory.BuildEntry(user, day))
			}
		}
		if err := s.factory.CreateEntriesBatch(entries); err != nil {
			return fmt.Errorf("create entries for user %d: %w", user.ID, err)
		}

		for _, entry := range entries {
			if s.factory.rng.Float64() < opts.ShareRatio {
				pub, err := s.factory.ShareEntry(entry)
				if err != nil {
					return fmt.Errorf("share entry %d: %w", entry.ID, err)
				}
				pubs = append(pubs, pub)
			}
		}
	}

	likes := 0
	for _, pub := range pubs {
		for _, user := range users {
			if user.ID == pub.OriginalAuthorID {
				continue
			}
			if s.factory.rng.Float64() < 0.25 {
				if err := s.factory.AddLike(user.ID, pub.ID); err != nil {
					return fmt.Errorf("add like: %w", err)
				}
				likes++
			}
		}
	}

	log.Printf("Seeded %d users, %d public entries, %d likes", len(users), len(pubs), likes)
	return nil
}
