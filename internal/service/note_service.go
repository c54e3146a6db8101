package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tomymaritano/viny-sub011/internal/dto"
	"github.com/tomymaritano/viny-sub011/internal/entity"
	"github.com/tomymaritano/viny-sub011/internal/pkg/serverutils"
	"github.com/tomymaritano/viny-sub011/internal/repository/specification"
	"github.com/tomymaritano/viny-sub011/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	previewLength    = 100
)

type INoteService interface {
	List(ctx context.Context, userId uuid.UUID, req *dto.ListNotesRequest) (*dto.ListNotesResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{
		uowFactory: uowFactory,
	}
}

// makePreview derives the stored preview: the first 100 characters of the
// content, with an ellipsis when truncated.
func makePreview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength]) + "..."
}

// normalizeTagNames trims, drops empties and dedupes while preserving order.
func normalizeTagNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// findOrCreateNotebook resolves a notebook by name within the owner scope,
// creating it when absent. An empty name falls back to the default notebook.
func findOrCreateNotebook(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, name string) (*entity.Notebook, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = entity.DefaultNotebookName
	}

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByName{Name: name},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook != nil {
		return notebook, nil
	}

	notebook = &entity.Notebook{
		Id:        uuid.New(),
		Name:      name,
		Color:     entity.DefaultColor,
		UserId:    userId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.NotebookRepository().Create(ctx, notebook); err != nil {
		return nil, err
	}
	return notebook, nil
}

// resolveTags reuses existing tag rows and upserts the missing names. The
// (user_id, name) constraint absorbs concurrent identical creates; the final
// read returns the canonical rows either way.
func resolveTags(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, names []string) ([]*entity.Tag, error) {
	names = normalizeTagNames(names)
	if len(names) == 0 {
		return []*entity.Tag{}, nil
	}

	existing, err := uow.TagRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByNames{Names: names},
	)
	if err != nil {
		return nil, err
	}

	have := make(map[string]bool, len(existing))
	for _, tag := range existing {
		have[tag.Name] = true
	}

	for _, name := range names {
		if have[name] {
			continue
		}
		tag := &entity.Tag{
			Id:        uuid.New(),
			Name:      name,
			Color:     entity.DefaultColor,
			UserId:    userId,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := uow.TagRepository().Upsert(ctx, tag); err != nil {
			return nil, err
		}
	}

	return uow.TagRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByNames{Names: names},
	)
}

// relinkTags rewrites the note's tag links wholesale: stale links from the
// previous set are cleared before the new set is linked.
func relinkTags(ctx context.Context, uow unitofwork.UnitOfWork, noteId uuid.UUID, tags []*entity.Tag) error {
	if err := uow.NoteTagRepository().DeleteByNoteID(ctx, noteId); err != nil {
		return err
	}
	tagIds := make([]uuid.UUID, len(tags))
	for i, tag := range tags {
		tagIds[i] = tag.Id
	}
	return uow.NoteTagRepository().CreateLinks(ctx, noteId, tagIds)
}

// tagNamesByNote loads the linked tag names for a batch of notes.
func tagNamesByNote(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, noteIds []uuid.UUID) (map[uuid.UUID][]string, error) {
	names := make(map[uuid.UUID][]string, len(noteIds))
	for _, id := range noteIds {
		names[id] = []string{}
	}
	if len(noteIds) == 0 {
		return names, nil
	}

	links, err := uow.NoteTagRepository().FindByNoteIDs(ctx, noteIds)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return names, nil
	}

	tagIds := make([]uuid.UUID, 0, len(links))
	seen := make(map[uuid.UUID]bool, len(links))
	for _, link := range links {
		if !seen[link.TagId] {
			seen[link.TagId] = true
			tagIds = append(tagIds, link.TagId)
		}
	}

	tags, err := uow.TagRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByIDs{IDs: tagIds},
	)
	if err != nil {
		return nil, err
	}

	tagName := make(map[uuid.UUID]string, len(tags))
	for _, tag := range tags {
		tagName[tag.Id] = tag.Name
	}

	for _, link := range links {
		if name, ok := tagName[link.TagId]; ok {
			names[link.NoteId] = append(names[link.NoteId], name)
		}
	}
	for id := range names {
		sort.Strings(names[id])
	}
	return names, nil
}

func (s *noteService) toResponse(note *entity.Note, notebookName string, tags []string) *dto.NoteResponse {
	if tags == nil {
		tags = []string{}
	}
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		Preview:   note.Preview,
		Notebook:  notebookName,
		Status:    string(note.Status),
		IsPinned:  note.IsPinned,
		IsTrashed: note.IsTrashed,
		TrashedAt: note.TrashedAt,
		Tags:      tags,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID, req *dto.ListNotesRequest) (*dto.ListNotesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	limit := defaultListLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	offset := 0
	if req.Offset != nil {
		offset = *req.Offset
	}

	empty := &dto.ListNotesResponse{
		Notes:  []*dto.NoteResponse{},
		Limit:  limit,
		Offset: offset,
	}

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
	}

	// The active view hides trashed notes unless asked for explicitly.
	trashed := false
	if req.Trashed != nil {
		trashed = *req.Trashed
	}
	specs = append(specs, specification.ByTrashed{Trashed: trashed})

	if req.Notebook != "" {
		notebook, err := uow.NotebookRepository().FindOne(ctx,
			specification.ByName{Name: req.Notebook},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if notebook == nil {
			return empty, nil
		}
		specs = append(specs, specification.ByNotebookID{NotebookID: notebook.Id})
	}

	if req.Status != "" {
		specs = append(specs, specification.ByStatus{Status: req.Status})
	}
	if req.Pinned != nil {
		specs = append(specs, specification.ByPinned{Pinned: *req.Pinned})
	}
	if req.Search != "" {
		specs = append(specs, specification.NoteSearchQuery{Query: req.Search})
	}

	if req.Tags != "" {
		tagNames := normalizeTagNames(strings.Split(req.Tags, ","))
		tags, err := uow.TagRepository().FindAll(ctx,
			specification.UserOwnedBy{UserID: userId},
			specification.ByNames{Names: tagNames},
		)
		if err != nil {
			return nil, err
		}
		if len(tags) == 0 {
			return empty, nil
		}
		tagIds := make([]uuid.UUID, len(tags))
		for i, tag := range tags {
			tagIds[i] = tag.Id
		}
		noteIds, err := uow.NoteTagRepository().FindNoteIDsByTagIDs(ctx, tagIds)
		if err != nil {
			return nil, err
		}
		if len(noteIds) == 0 {
			return empty, nil
		}
		specs = append(specs, specification.ByIDs{IDs: noteIds})
	}

	total, err := uow.NoteRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	pageSpecs := append(specs,
		specification.NoteDefaultOrder{},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	notes, err := uow.NoteRepository().FindAll(ctx, pageSpecs...)
	if err != nil {
		return nil, err
	}

	noteIds := make([]uuid.UUID, len(notes))
	notebookIds := make([]uuid.UUID, 0, len(notes))
	seenNotebook := make(map[uuid.UUID]bool)
	for i, note := range notes {
		noteIds[i] = note.Id
		if !seenNotebook[note.NotebookId] {
			seenNotebook[note.NotebookId] = true
			notebookIds = append(notebookIds, note.NotebookId)
		}
	}

	tagNames, err := tagNamesByNote(ctx, uow, userId, noteIds)
	if err != nil {
		return nil, err
	}

	notebookName := make(map[uuid.UUID]string, len(notebookIds))
	if len(notebookIds) > 0 {
		notebooks, err := uow.NotebookRepository().FindAll(ctx,
			specification.UserOwnedBy{UserID: userId},
			specification.ByIDs{IDs: notebookIds},
		)
		if err != nil {
			return nil, err
		}
		for _, notebook := range notebooks {
			notebookName[notebook.Id] = notebook.Name
		}
	}

	items := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		items[i] = s.toResponse(note, notebookName[note.NotebookId], tagNames[note.Id])
	}

	return &dto.ListNotesResponse{
		Notes:   items,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+limit) < total,
	}, nil
}

func (s *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NewNotFoundError("Note not found")
	}

	return s.hydrate(ctx, uow, userId, note)
}

// hydrate attaches the notebook name and tag names to a note entity.
func (s *noteService) hydrate(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, note *entity.Note) (*dto.NoteResponse, error) {
	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: note.NotebookId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	notebookName := ""
	if notebook != nil {
		notebookName = notebook.Name
	}

	tagNames, err := tagNamesByNote(ctx, uow, userId, []uuid.UUID{note.Id})
	if err != nil {
		return nil, err
	}

	return s.toResponse(note, notebookName, tagNames[note.Id]), nil
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	notebook, err := findOrCreateNotebook(ctx, uow, userId, req.Notebook)
	if err != nil {
		return nil, err
	}

	status := entity.NoteStatus(req.Status)
	if req.Status == "" {
		status = entity.NoteStatusDraft
	}

	now := time.Now()
	note := &entity.Note{
		Id:         uuid.New(),
		Title:      req.Title,
		Content:    req.Content,
		Preview:    makePreview(req.Content),
		Status:     status,
		IsPinned:   req.IsPinned,
		NotebookId: notebook.Id,
		UserId:     userId,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	tags, err := resolveTags(ctx, uow, userId, req.Tags)
	if err != nil {
		return nil, err
	}
	if err := relinkTags(ctx, uow, note.Id, tags); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	tagNames := make([]string, len(tags))
	for i, tag := range tags {
		tagNames[i] = tag.Name
	}
	sort.Strings(tagNames)

	return s.toResponse(note, notebook.Name, tagNames), nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NewNotFoundError("Note not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
		note.Preview = makePreview(*req.Content)
	}
	if req.Status != nil {
		note.Status = entity.NoteStatus(*req.Status)
	}
	if req.IsPinned != nil {
		note.IsPinned = *req.IsPinned
	}
	if req.IsTrashed != nil && *req.IsTrashed != note.IsTrashed {
		note.IsTrashed = *req.IsTrashed
		if note.IsTrashed {
			now := time.Now()
			note.TrashedAt = &now
		} else {
			note.TrashedAt = nil
		}
	}
	if req.Notebook != nil {
		notebook, err := findOrCreateNotebook(ctx, uow, userId, *req.Notebook)
		if err != nil {
			return nil, err
		}
		note.NotebookId = notebook.Id
	}
	note.UpdatedAt = time.Now()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	if req.Tags != nil {
		tags, err := resolveTags(ctx, uow, userId, *req.Tags)
		if err != nil {
			return nil, err
		}
		if err := relinkTags(ctx, uow, note.Id, tags); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return s.hydrate(ctx, uow, userId, note)
}

func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return serverutils.NewNotFoundError("Note not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteTagRepository().DeleteByNoteID(ctx, id); err != nil {
		return err
	}
	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}
