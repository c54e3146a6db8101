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

type ITagService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.TagResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TagResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTagRequest) (*dto.TagResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTagService(uowFactory unitofwork.RepositoryFactory) ITagService {
	return &tagService{
		uowFactory: uowFactory,
	}
}

func (s *tagService) toResponse(tag *entity.Tag, noteCount int64) *dto.TagResponse {
	return &dto.TagResponse{
		Id:        tag.Id,
		Name:      tag.Name,
		Color:     tag.Color,
		NoteCount: noteCount,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}

func (s *tagService) List(ctx context.Context, userId uuid.UUID) ([]*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags, err := uow.TagRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	counts, err := uow.NoteTagRepository().CountNotesByTag(ctx, userId)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.TagResponse, len(tags))
	for i, tag := range tags {
		items[i] = s.toResponse(tag, counts[tag.Id])
	}
	return items, nil
}

func (s *tagService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, serverutils.NewNotFoundError("Tag not found")
	}

	counts, err := uow.NoteTagRepository().CountNotesByTag(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.toResponse(tag, counts[tag.Id]), nil
}

func (s *tagService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	color := req.Color
	if color == "" {
		color = entity.DefaultColor
	}

	tag := &entity.Tag{
		Id:        uuid.New(),
		Name:      req.Name,
		Color:     color,
		UserId:    userId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.TagRepository().Create(ctx, tag); err != nil {
		return nil, err
	}
	return s.toResponse(tag, 0), nil
}

func (s *tagService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTagRequest) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, serverutils.NewNotFoundError("Tag not found")
	}

	if req.Name != nil {
		tag.Name = *req.Name
	}
	if req.Color != nil {
		tag.Color = *req.Color
	}
	tag.UpdatedAt = time.Now()

	if err := uow.TagRepository().Update(ctx, tag); err != nil {
		return nil, err
	}

	counts, err := uow.NoteTagRepository().CountNotesByTag(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.toResponse(tag, counts[tag.Id]), nil
}

// Delete removes a tag together with its note links. The notes themselves
// are untouched.
func (s *tagService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if tag == nil {
		return serverutils.NewNotFoundError("Tag not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteTagRepository().DeleteByTagID(ctx, id); err != nil {
		return err
	}
	if err := uow.TagRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}
