package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Paginate applies LIMIT/OFFSET for a 1-based page.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 || pageSize < 1 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// ForUpdate takes a row lock when the dialect supports SELECT ... FOR UPDATE.
// SQLite serialises writers on the database file, so the clause is skipped there.
func ForUpdate() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if db.Dialector != nil && db.Dialector.Name() == "sqlite" {
			return db
		}
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
}
