package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Content    string    `gorm:"type:text;not null;default:''"`
	Preview    string    `gorm:"type:varchar(255);not null;default:''"`
	Status     string    `gorm:"type:note_status;not null;default:'draft';index"`
	IsPinned   bool      `gorm:"not null;default:false"`
	IsTrashed  bool      `gorm:"not null;default:false;index"`
	TrashedAt  *time.Time
	NotebookId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}
