// Package softdelete holds the record shape shared by every entity and the
// one repository that applies the default scope (is_deleted = false).
package softdelete

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound is returned when the target row is absent or soft-deleted.
var ErrNotFound = errors.New("record not found")

// Record is embedded by every entity model.
type Record struct {
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:false;index" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// Deleted reports whether the record has been soft-deleted.
func (r Record) Deleted() bool { return r.IsDeleted }

// Alive is the default scope. Every ordinary lookup goes through it.
func Alive(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// Newest orders most recent first; id breaks created_at ties by insertion order.
func Newest(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}
