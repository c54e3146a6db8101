package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultNotebookName is the notebook every user starts with. Notes from a
// deleted notebook are reassigned to it.
const DefaultNotebookName = "Personal"

// DefaultColor is applied to notebooks and tags created without one.
const DefaultColor = "#268bd2"

type Notebook struct {
	Id        uuid.UUID
	Name      string
	Color     string
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
