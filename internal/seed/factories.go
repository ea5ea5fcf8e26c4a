// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"shukran/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db  *gorm.DB
	loc *time.Location
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB. Backdated
// entries are placed at midday in loc so they land squarely inside their
// calendar day.
func NewFactory(db *gorm.DB, loc *time.Location) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		loc: loc,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateAnonymousUser persists a user shaped like the anonymous signup flow
// produces: generated display name, synthesized email, random credential.
func (f *Factory) CreateAnonymousUser() (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(gofakeit.UUID()), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:    fmt.Sprintf("%s-%s-%d", gofakeit.AdjectiveDescriptive(), gofakeit.NounAbstract(), f.rng.Intn(9000)+1000),
		Email:       fmt.Sprintf("anon-%s@shukran.local", gofakeit.UUID()),
		Password:    string(hashed),
		IsAnonymous: true,
		Language:    "en",
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildEntry constructs a journal entry for the given user, backdated the
// given number of days, without persisting it.
func (f *Factory) BuildEntry(user *models.User, daysBack int) *models.Entry {
	day := time.Now().In(f.loc).AddDate(0, 0, -daysBack)
	createdAt := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, f.loc).
		Add(time.Duration(f.rng.Intn(8*60)) * time.Minute)

	return &models.Entry{
		UserID:    user.ID,
		Text:      gratitudeText(f.rng),
		CreatedAt: createdAt,
	}
}

// CreateEntriesBatch persists multiple entries in a single DB call.
func (f *Factory) CreateEntriesBatch(entries []*models.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return f.db.Create(&entries).Error
}

// ShareEntry creates the anonymized public copy for an entry and links the
// two, the same two-step write the share flow performs.
func (f *Factory) ShareEntry(entry *models.Entry) (*models.PublicEntry, error) {
	pub := &models.PublicEntry{
		OriginalAuthorID: entry.UserID,
		OriginalDocID:    entry.ID,
		Text:             entry.Text,
		CreatedAt:        entry.CreatedAt,
	}
	if err := f.db.Create(pub).Error; err != nil {
		return nil, err
	}

	err := f.db.Model(&models.Entry{}).Where("id = ?", entry.ID).
		Updates(map[string]any{"is_shared": true, "public_id": pub.ID}).Error
	if err != nil {
		return nil, err
	}
	entry.IsShared = true
	entry.PublicID = &pub.ID
	return pub, nil
}

// AddLike persists a like from the user on the public entry. Duplicate likes
// are rejected by the unique index; callers seed distinct pairs.
func (f *Factory) AddLike(userID, publicID uint) error {
	return f.db.Create(&models.Like{UserID: userID, GratitudeID: publicID}).Error
}

var gratitudePrompts = []string{
	"Grateful for %s today.",
	"Today I appreciated %s more than usual.",
	"Thankful for %s, even on a busy day.",
	"A small thing that made today better: %s.",
	"I noticed %s today and it made me smile.",
}

func gratitudeText(rng *rand.Rand) string {
	subject := gofakeit.RandomString([]string{
		"a long walk in the morning sun",
		"a quiet cup of coffee before everyone woke up",
		"a friend checking in out of nowhere",
		"my family being healthy",
		"finishing something I'd been putting off",
		"the smell of rain",
		"a stranger holding the door",
		"music that fit the moment exactly",
		"having enough, and knowing it",
	})
	return fmt.Sprintf(gratitudePrompts[rng.Intn(len(gratitudePrompts))], subject)
}
