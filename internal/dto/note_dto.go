package dto

import (
	"time"

	"github.com/google/uuid"
)

type NoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Preview   string     `json:"preview"`
	Notebook  string     `json:"notebook"`
	Status    string     `json:"status"`
	IsPinned  bool       `json:"isPinned"`
	IsTrashed bool       `json:"isTrashed"`
	TrashedAt *time.Time `json:"trashedAt"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type ListNotesRequest struct {
	Notebook string `query:"notebook"`
	Status   string `query:"status" validate:"omitempty,oneof=draft in-progress review completed archived"`
	Pinned   *bool  `query:"pinned"`
	Trashed  *bool  `query:"trashed"`
	Search   string `query:"search"`
	Tags     string `query:"tags"` // comma-separated names
	Limit    *int   `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset   *int   `query:"offset" validate:"omitempty,min=0"`
}

type ListNotesResponse struct {
	Notes   []*NoteResponse `json:"notes"`
	Total   int64           `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
	HasMore bool            `json:"hasMore"`
}

type CreateNoteRequest struct {
	Title    string   `json:"title" validate:"required,min=1"`
	Content  string   `json:"content"`
	Notebook string   `json:"notebook"`
	Status   string   `json:"status" validate:"omitempty,oneof=draft in-progress review completed archived"`
	IsPinned bool     `json:"isPinned"`
	Tags     []string `json:"tags"`
}

// UpdateNoteRequest is partial: only non-nil fields are applied.
type UpdateNoteRequest struct {
	Id        uuid.UUID `json:"-"`
	Title     *string   `json:"title" validate:"omitempty,min=1"`
	Content   *string   `json:"content"`
	Notebook  *string   `json:"notebook" validate:"omitempty,min=1"`
	Status    *string   `json:"status" validate:"omitempty,oneof=draft in-progress review completed archived"`
	IsPinned  *bool     `json:"isPinned"`
	IsTrashed *bool     `json:"isTrashed"`
	Tags      *[]string `json:"tags"`
}
