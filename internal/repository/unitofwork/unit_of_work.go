package unitofwork

import (
	"context"

	"github.com/tomymaritano/viny-sub011/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NotebookRepository() contract.NotebookRepository
	NoteRepository() contract.NoteRepository
	TagRepository() contract.TagRepository
	NoteTagRepository() contract.NoteTagRepository
}
