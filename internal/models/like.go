package models

import (
	"time"
)

// Like represents an account's endorsement of a PublicEntry.
// The combination of UserID and GratitudeID must be unique; its presence is
// the sole "favorite" signal.
type Like struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_gratitude" json:"user_id"`
	GratitudeID uint      `gorm:"not null;uniqueIndex:idx_user_gratitude" json:"gratitude_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	User        User        `gorm:"foreignKey:UserID" json:"-"`
	PublicEntry PublicEntry `gorm:"foreignKey:GratitudeID" json:"-"`
}

// LikeStatus reports the outcome of a like toggle or status query. The count
// is always derived by counting like rows, never read from a cached column.
type LikeStatus struct {
	IsLiked   bool `json:"is_liked"`
	LikeCount int  `json:"like_count"`
}
