package model

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_tags_user_name"`
	Color     string    `gorm:"type:varchar(7);not null;default:'#268bd2'"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_tags_user_name"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Tag) TableName() string {
	return "tags"
}

// NoteTag is the explicit join table between notes and tags. Links are
// rewritten wholesale when a note's tag list changes.
type NoteTag struct {
	NoteId    uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagId     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (NoteTag) TableName() string {
	return "note_tags"
}
