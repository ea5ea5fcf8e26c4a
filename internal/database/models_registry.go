package database

import "shukran/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Entry{},
		&models.PublicEntry{},
		&models.Like{},
	}
}
