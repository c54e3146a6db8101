package service

import (
	"context"
	"strings"
	"time"

	"github.com/tomymaritano/viny-sub011/internal/dto"
	"github.com/tomymaritano/viny-sub011/internal/entity"
	"github.com/tomymaritano/viny-sub011/internal/pkg/serverutils"
	"github.com/tomymaritano/viny-sub011/internal/repository/specification"
	"github.com/tomymaritano/viny-sub011/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMigrationService interface {
	Import(ctx context.Context, userId uuid.UUID, req *dto.ImportRequest) (*dto.ImportResponse, error)
	Export(ctx context.Context, userId uuid.UUID) (*dto.ExportResponse, error)
	Stats(ctx context.Context, userId uuid.UUID) (*dto.StatsResponse, error)
	Reset(ctx context.Context, userId uuid.UUID) (*dto.ResetResponse, error)
}

type migrationService struct {
	uowFactory      unitofwork.RepositoryFactory
	noteService     INoteService
	notebookService INotebookService
	tagService      ITagService
	allowReset      bool
}

func NewMigrationService(
	uowFactory unitofwork.RepositoryFactory,
	noteService INoteService,
	notebookService INotebookService,
	tagService ITagService,
	allowReset bool,
) IMigrationService {
	return &migrationService{
		uowFactory:      uowFactory,
		noteService:     noteService,
		notebookService: notebookService,
		tagService:      tagService,
		allowReset:      allowReset,
	}
}

// Import loads legacy note records in a single transaction. Records without
// a title are counted as skipped instead of failing the batch.
func (s *migrationService) Import(ctx context.Context, userId uuid.UUID, req *dto.ImportRequest) (*dto.ImportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	imported, skipped := 0, 0
	for _, record := range req.Notes {
		if strings.TrimSpace(record.Title) == "" {
			skipped++
			continue
		}

		notebook, err := findOrCreateNotebook(ctx, uow, userId, record.Notebook)
		if err != nil {
			return nil, err
		}

		status := entity.NoteStatus(record.Status)
		if !status.Valid() {
			status = entity.NoteStatusDraft
		}

		now := time.Now()
		createdAt := now
		if record.CreatedAt != nil {
			createdAt = *record.CreatedAt
		}

		note := &entity.Note{
			Id:         uuid.New(),
			Title:      record.Title,
			Content:    record.Content,
			Preview:    makePreview(record.Content),
			Status:     status,
			IsPinned:   record.IsPinned,
			IsTrashed:  record.IsTrashed,
			NotebookId: notebook.Id,
			UserId:     userId,
			CreatedAt:  createdAt,
			UpdatedAt:  now,
		}
		if record.IsTrashed {
			note.TrashedAt = &now
		}

		if err := uow.NoteRepository().Create(ctx, note); err != nil {
			return nil, err
		}

		tags, err := resolveTags(ctx, uow, userId, record.Tags)
		if err != nil {
			return nil, err
		}
		if err := relinkTags(ctx, uow, note.Id, tags); err != nil {
			return nil, err
		}

		imported++
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &dto.ImportResponse{Imported: imported, Skipped: skipped}, nil
}

// Export returns the full account snapshot, trashed notes included.
func (s *migrationService) Export(ctx context.Context, userId uuid.UUID) (*dto.ExportResponse, error) {
	stats, err := s.Stats(ctx, userId)
	if err != nil {
		return nil, err
	}

	notes := make([]*dto.NoteResponse, 0)
	for _, trashed := range []bool{false, true} {
		t := trashed
		offset := 0
		for {
			limit := 100
			page, err := s.noteService.List(ctx, userId, &dto.ListNotesRequest{
				Trashed: &t,
				Limit:   &limit,
				Offset:  &offset,
			})
			if err != nil {
				return nil, err
			}
			notes = append(notes, page.Notes...)
			if !page.HasMore {
				break
			}
			offset += limit
		}
	}

	notebooks, err := s.notebookService.List(ctx, userId)
	if err != nil {
		return nil, err
	}
	tags, err := s.tagService.List(ctx, userId)
	if err != nil {
		return nil, err
	}

	return &dto.ExportResponse{
		Notes:      notes,
		Notebooks:  notebooks,
		Tags:       tags,
		Stats:      *stats,
		ExportedAt: time.Now(),
	}, nil
}

func (s *migrationService) Stats(ctx context.Context, userId uuid.UUID) (*dto.StatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	owned := specification.UserOwnedBy{UserID: userId}

	active, err := uow.NoteRepository().Count(ctx, owned, specification.ByTrashed{Trashed: false})
	if err != nil {
		return nil, err
	}
	trashed, err := uow.NoteRepository().Count(ctx, owned, specification.ByTrashed{Trashed: true})
	if err != nil {
		return nil, err
	}
	notebooks, err := uow.NotebookRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}
	tags, err := uow.TagRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		ActiveNotes:  active,
		TrashedNotes: trashed,
		Notebooks:    notebooks,
		Tags:         tags,
	}, nil
}

// Reset wipes the account's data and recreates the default notebook. It is
// disabled outside development environments.
func (s *migrationService) Reset(ctx context.Context, userId uuid.UUID) (*dto.ResetResponse, error) {
	if !s.allowReset {
		return nil, serverutils.NewForbiddenError("Reset is disabled in this environment")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteTagRepository().DeleteAllByUser(ctx, userId); err != nil {
		return nil, err
	}
	if err := uow.NoteRepository().DeleteAllByUser(ctx, userId); err != nil {
		return nil, err
	}
	if err := uow.TagRepository().DeleteAllByUser(ctx, userId); err != nil {
		return nil, err
	}
	if err := uow.NotebookRepository().DeleteAllByUser(ctx, userId); err != nil {
		return nil, err
	}
	if _, err := findOrCreateNotebook(ctx, uow, userId, entity.DefaultNotebookName); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &dto.ResetResponse{Message: "All data has been reset"}, nil
}
