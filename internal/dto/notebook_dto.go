package dto

import (
	"time"

	"github.com/google/uuid"
)

type NotebookResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	NoteCount int64     `json:"noteCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateNotebookRequest struct {
	Name  string `json:"name" validate:"required,min=1"`
	Color string `json:"color" validate:"omitempty,hexcolor6"`
}

type UpdateNotebookRequest struct {
	Id    uuid.UUID `json:"-"`
	Name  *string   `json:"name" validate:"omitempty,min=1"`
	Color *string   `json:"color" validate:"omitempty,hexcolor6"`
}
