package models

import (
	"time"
)

// Entry is a private gratitude record owned by one account. At most one entry
// may exist per (owner, calendar day) in the journal's configured timezone;
// CreatedAt is the daily key.
//
// IsShared is true iff PublicID references a live PublicEntry. The two fields
// are written together by the share/unshare flow.
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Text      string    `gorm:"not null" json:"text"`
	IsShared  bool      `gorm:"not null;default:false" json:"is_shared"`
	PublicID  *uint     `json:"public_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName maps Entry onto the gratitudes table.
func (Entry) TableName() string {
	return "gratitudes"
}
