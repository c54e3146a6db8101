package entity

import (
	"time"

	"github.com/google/uuid"
)

type NoteStatus string

const (
	NoteStatusDraft      NoteStatus = "draft"
	NoteStatusInProgress NoteStatus = "in-progress"
	NoteStatusReview     NoteStatus = "review"
	NoteStatusCompleted  NoteStatus = "completed"
	NoteStatusArchived   NoteStatus = "archived"
)

func (s NoteStatus) Valid() bool {
	switch s {
	case NoteStatusDraft, NoteStatusInProgress, NoteStatusReview, NoteStatusCompleted, NoteStatusArchived:
		return true
	}
	return false
}

type Note struct {
	Id         uuid.UUID
	Title      string
	Content    string
	Preview    string
	Status     NoteStatus
	IsPinned   bool
	IsTrashed  bool
	TrashedAt  *time.Time
	NotebookId uuid.UUID
	UserId     uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
