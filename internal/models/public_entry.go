package models

import (
	"time"
)

// PublicEntry is an anonymized, author-detached copy of a shared Entry's text.
// It is created when the owner shares and destroyed when the owner unshares or
// deletes the source entry; it must never outlive its source.
//
// LikeCount is persisted for read optimization only and is NOT the source of
// truth: every read path recomputes counts from the likes table. Likes and
// IsLiked are computed at query time.
type PublicEntry struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OriginalAuthorID uint      `gorm:"not null;index" json:"original_author_id"`
	OriginalDocID    uint      `gorm:"not null;index" json:"original_doc_id"`
	Text             string    `gorm:"not null" json:"text"`
	LikeCount        int       `gorm:"not null;default:0" json:"-"`
	CreatedAt        time.Time `json:"created_at"`

	// Likes is the live count derived from the likes table; computed at query time
	Likes int `gorm:"-" json:"like_count"`
	// IsLiked indicates whether the requesting account has liked this entry (computed)
	IsLiked bool `gorm:"-" json:"is_liked"`
}

// TableName maps PublicEntry onto the public_gratitudes table.
func (PublicEntry) TableName() string {
	return "public_gratitudes"
}
