package auth

import (
	"strings"

	"gorm.io/gorm"
)

// OwnedBy returns a GORM scope that filters rows by owner.
func OwnedBy(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// TitleMatch returns a GORM scope that applies a case-insensitive substring
// filter on title. An empty search is a no-op.
func TitleMatch(search string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		pattern := "%" + strings.ToLower(search) + "%"
		return db.Where("LOWER(title) LIKE ?", pattern)
	}
}

// Page returns a GORM scope for 1-based pagination.
func Page(page, size int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(size).Offset((page - 1) * size)
	}
}
