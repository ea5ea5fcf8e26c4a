// Package bootstrap wires up runtime dependencies (database, Redis, seed
// data) for commands and tests.
package bootstrap

import (
	"fmt"

	"shukran/internal/cache"
	"shukran/internal/config"
	"shukran/internal/database"
	"shukran/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemo bool
}

// InitRuntime connects to DB and Redis and optionally seeds demo data.
// The Redis client may be nil when the server is unreachable; callers must
// tolerate that (caching and rate limiting degrade, nothing else).
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemo {
		loc, locErr := cfg.Location()
		if locErr != nil {
			return nil, nil, fmt.Errorf("invalid journal timezone: %w", locErr)
		}
		s := seed.NewSeeder(db, loc)
		if err := s.SeedJournal(seed.DefaultOptions()); err != nil {
			return nil, nil, fmt.Errorf("demo seeding failed: %w", err)
		}
	}

	return db, r, nil
}
