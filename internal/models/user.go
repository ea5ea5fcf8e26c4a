// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account in the Shukran application. Accounts are created
// anonymously: the username is a generated display name and the email is a
// synthesized address, mirroring the anonymous-auth boundary the app consumes.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"unique;not null" json:"username"`
	Email       string    `gorm:"unique;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	IsAnonymous bool      `gorm:"default:true" json:"is_anonymous"`
	Language    string    `gorm:"size:8" json:"language,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Entries     []Entry   `gorm:"foreignKey:UserID" json:"entries,omitempty"`
}
