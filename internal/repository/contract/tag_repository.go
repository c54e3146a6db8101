package contract

import (
	"context"

	"github.com/tomymaritano/viny-sub011/internal/entity"
	"github.com/tomymaritano/viny-sub011/internal/repository/specification"

	"github.com/google/uuid"
)

type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	// Upsert inserts the tag unless a row with the same (user, name) already
	// exists. The database constraint is the duplicate guard, not a prior read.
	Upsert(ctx context.Context, tag *entity.Tag) error
	Update(ctx context.Context, tag *entity.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteAllByUser(ctx context.Context, userId uuid.UUID) error
}

type NoteTagRepository interface {
	CreateLinks(ctx context.Context, noteId uuid.UUID, tagIds []uuid.UUID) error
	DeleteByNoteID(ctx context.Context, noteId uuid.UUID) error
	DeleteByTagID(ctx context.Context, tagId uuid.UUID) error
	FindByNoteIDs(ctx context.Context, noteIds []uuid.UUID) ([]*entity.NoteTag, error)
	FindNoteIDsByTagIDs(ctx context.Context, tagIds []uuid.UUID) ([]uuid.UUID, error)
	// CountNotesByTag returns the owner's non-trashed note count per tag.
	CountNotesByTag(ctx context.Context, userId uuid.UUID) (map[uuid.UUID]int64, error)
	DeleteAllByUser(ctx context.Context, userId uuid.UUID) error
}
