package model

import (
	"time"

	"github.com/google/uuid"
)

type Notebook struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_notebooks_user_name"`
	Color     string    `gorm:"type:varchar(7);not null;default:'#268bd2'"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_notebooks_user_name"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Notebook) TableName() string {
	return "notebooks"
}
