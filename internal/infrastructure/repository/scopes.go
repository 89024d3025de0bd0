package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// GroupScope filters a party registry by its group column. An empty group is a no-op.
// column must come from static party metadata, never from user input.
func GroupScope(column, group string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if group == "" {
			return db
		}
		return db.Where(fmt.Sprintf("%s = ?", column), group)
	}
}

// CodesScope restricts results to the given party codes. An empty list is a no-op.
func CodesScope(codes []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(codes) == 0 {
			return db
		}
		return db.Where("code IN ?", codes)
	}
}

// ActiveScope hides soft-deleted registry rows
func ActiveScope(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}
