// Command main runs the database seeder for Shukran.
package main

import (
	"flag"
	"log"

	"shukran/internal/config"
	"shukran/internal/database"
	"shukran/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 10, "Number of users to create")
	daysBack := flag.Int("days", 21, "How many days of journal history to backfill")
	shareRatio := flag.Float64("share", 0.4, "Fraction of entries shared publicly")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d days, share=%.2f, clean=%v\n",
		*numUsers, *daysBack, *shareRatio, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Invalid journal timezone: %v", err)
	}

	s := seed.NewSeeder(database.DB, loc)
	if err := s.SeedJournal(seed.Options{
		NumUsers:    *numUsers,
		MaxDaysBack: *daysBack,
		ShareRatio:  *shareRatio,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
