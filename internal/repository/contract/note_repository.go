package contract

import (
	"context"

	"github.com/tomymaritano/viny-sub011/internal/entity"
	"github.com/tomymaritano/viny-sub011/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error // permanent
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// CountByNotebook returns the owner's non-trashed note count per notebook.
	CountByNotebook(ctx context.Context, userId uuid.UUID) (map[uuid.UUID]int64, error)
	// ReassignNotebook bulk-moves the owner's notes from one notebook to another.
	ReassignNotebook(ctx context.Context, userId, fromId, toId uuid.UUID) error
	DeleteAllByUser(ctx context.Context, userId uuid.UUID) error
}
