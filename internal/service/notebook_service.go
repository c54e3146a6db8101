package service

import (
	"context"
	"time"

	"github.com/tomymaritano/viny-sub011/internal/dto"
	"github.com/tomymaritano/viny-sub011/internal/entity"
	"github.com/tomymaritano/viny-sub011/internal/pkg/serverutils"
	"github.com/tomymaritano/viny-sub011/internal/repository/specification"
	"github.com/tomymaritano/viny-sub011/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INotebookService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.NotebookResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NotebookResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type notebookService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNotebookService(uowFactory unitofwork.RepositoryFactory) INotebookService {
	return &notebookService{
		uowFactory: uowFactory,
	}
}

func (s *notebookService) toResponse(notebook *entity.Notebook, noteCount int64) *dto.NotebookResponse {
	return &dto.NotebookResponse{
		Id:        notebook.Id,
		Name:      notebook.Name,
		Color:     notebook.Color,
		NoteCount: noteCount,
		CreatedAt: notebook.CreatedAt,
		UpdatedAt: notebook.UpdatedAt,
	}
}

func (s *notebookService) List(ctx context.Context, userId uuid.UUID) ([]*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	counts, err := uow.NoteRepository().CountByNotebook(ctx, userId)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.NotebookResponse, len(notebooks))
	for i, notebook := range notebooks {
		items[i] = s.toResponse(notebook, counts[notebook.Id])
	}
	return items, nil
}

func (s *notebookService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, serverutils.NewNotFoundError("Notebook not found")
	}

	counts, err := uow.NoteRepository().CountByNotebook(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.toResponse(notebook, counts[notebook.Id]), nil
}

func (s *notebookService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	color := req.Color
	if color == "" {
		color = entity.DefaultColor
	}

	notebook := &entity.Notebook{
		Id:        uuid.New(),
		Name:      req.Name,
		Color:     color,
		UserId:    userId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.NotebookRepository().Create(ctx, notebook); err != nil {
		return nil, err
	}
	return s.toResponse(notebook, 0), nil
}

func (s *notebookService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, serverutils.NewNotFoundError("Notebook not found")
	}

	if req.Name != nil && *req.Name != notebook.Name {
		if notebook.Name == entity.DefaultNotebookName {
			return nil, serverutils.NewValidationError("The default notebook cannot be renamed", nil)
		}
		notebook.Name = *req.Name
	}
	if req.Color != nil {
		notebook.Color = *req.Color
	}
	notebook.UpdatedAt = time.Now()

	if err := uow.NotebookRepository().Update(ctx, notebook); err != nil {
		return nil, err
	}

	counts, err := uow.NoteRepository().CountByNotebook(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.toResponse(notebook, counts[notebook.Id]), nil
}

// Delete removes a notebook after moving its notes to the default notebook,
// so no note is ever orphaned. The default notebook itself is protected.
func (s *notebookService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if notebook == nil {
		return serverutils.NewNotFoundError("Notebook not found")
	}
	if notebook.Name == entity.DefaultNotebookName {
		return serverutils.NewValidationError("The default notebook cannot be deleted", nil)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	fallback, err := findOrCreateNotebook(ctx, uow, userId, entity.DefaultNotebookName)
	if err != nil {
		return err
	}
	if err := uow.NoteRepository().ReassignNotebook(ctx, userId, id, fallback.Id); err != nil {
		return err
	}
	if err := uow.NotebookRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}
