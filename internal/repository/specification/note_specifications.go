package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByNotebookID struct {
	NotebookID uuid.UUID
}

func (s ByNotebookID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notebook_id = ?", s.NotebookID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByPinned struct {
	Pinned bool
}

func (s ByPinned) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_pinned = ?", s.Pinned)
}

type ByTrashed struct {
	Trashed bool
}

func (s ByTrashed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_trashed = ?", s.Trashed)
}

// NoteSearchQuery matches the query as a case-insensitive substring of
// title or content.
type NoteSearchQuery struct {
	Query string
}

func (s NoteSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + strings.ToLower(s.Query) + "%"
	return db.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
}

// NoteDefaultOrder is the listing order: pinned notes first, then most
// recently updated.
type NoteDefaultOrder struct{}

func (s NoteDefaultOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("is_pinned DESC, updated_at DESC")
}
