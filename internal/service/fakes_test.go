package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tomymaritano/viny-sub011/internal/entity"
	"github.com/tomymaritano/viny-sub011/internal/repository/contract"
	"github.com/tomymaritano/viny-sub011/internal/repository/specification"
	"github.com/tomymaritano/viny-sub011/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeStore is the in-memory backing for the fake repositories. The fakes
// interpret the same specification values the GORM implementations translate
// to SQL, so service logic is exercised end to end without a database.
type fakeStore struct {
	users     []*entity.User
	notebooks []*entity.Notebook
	notes     []*entity.Note
	tags      []*entity.Tag
	noteTags  []entity.NoteTag
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepository{store: u.store}
}

func (u *fakeUnitOfWork) NotebookRepository() contract.NotebookRepository {
	return &fakeNotebookRepository{store: u.store}
}

func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepository{store: u.store}
}

func (u *fakeUnitOfWork) TagRepository() contract.TagRepository {
	return &fakeTagRepository{store: u.store}
}

func (u *fakeUnitOfWork) NoteTagRepository() contract.NoteTagRepository {
	return &fakeNoteTagRepository{store: u.store}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: newFakeStore()}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

// --- users ---

type fakeUserRepository struct {
	store *fakeStore
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		}
	}
	return true
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	clone := *user
	r.store.users = append(r.store.users, &clone)
	return nil
}

func (r *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	for i, u := range r.store.users {
		if u.Id == user.Id {
			clone := *user
			r.store.users[i] = &clone
		}
	}
	return nil
}

func (r *fakeUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepository) UpdateRefreshTokenHash(ctx context.Context, userId uuid.UUID, hash *string) error {
	for _, u := range r.store.users {
		if u.Id == userId {
			u.RefreshTokenHash = hash
		}
	}
	return nil
}

func (r *fakeUserRepository) UpdatePassword(ctx context.Context, userId uuid.UUID, passwordHash string) error {
	for _, u := range r.store.users {
		if u.Id == userId {
			u.PasswordHash = passwordHash
		}
	}
	return nil
}

func (r *fakeUserRepository) UpdateLastLogin(ctx context.Context, userId uuid.UUID, at time.Time) error {
	for _, u := range r.store.users {
		if u.Id == userId {
			t := at
			u.LastLogin = &t
		}
	}
	return nil
}

// --- notebooks ---

type fakeNotebookRepository struct {
	store *fakeStore
}

func matchNotebook(nb *entity.Notebook, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if nb.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if nb.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.UserOwnedBy:
			if nb.UserId != s.UserID {
				return false
			}
		case specification.ByName:
			if nb.Name != s.Name {
				return false
			}
		}
	}
	return true
}

func (r *fakeNotebookRepository) Create(ctx context.Context, notebook *entity.Notebook) error {
	clone := *notebook
	r.store.notebooks = append(r.store.notebooks, &clone)
	return nil
}

func (r *fakeNotebookRepository) Update(ctx context.Context, notebook *entity.Notebook) error {
	for i, nb := range r.store.notebooks {
		if nb.Id == notebook.Id {
			clone := *notebook
			r.store.notebooks[i] = &clone
		}
	}
	return nil
}

func (r *fakeNotebookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	out := r.store.notebooks[:0]
	for _, nb := range r.store.notebooks {
		if nb.Id != id {
			out = append(out, nb)
		}
	}
	r.store.notebooks = out
	return nil
}

func (r *fakeNotebookRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Notebook, error) {
	for _, nb := range r.store.notebooks {
		if matchNotebook(nb, specs) {
			clone := *nb
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeNotebookRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error) {
	var out []*entity.Notebook
	for _, nb := range r.store.notebooks {
		if matchNotebook(nb, specs) {
			clone := *nb
			out = append(out, &clone)
		}
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "name" {
			sort.Slice(out, func(i, j int) bool {
				if s.Desc {
					return out[i].Name > out[j].Name
				}
				return out[i].Name < out[j].Name
			})
		}
	}
	return out, nil
}

func (r *fakeNotebookRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, nb := range r.store.notebooks {
		if matchNotebook(nb, specs) {
			n++
		}
	}
	return n, nil
}

func (r *fakeNotebookRepository) DeleteAllByUser(ctx context.Context, userId uuid.UUID) error {
	out := r.store.notebooks[:0]
	for _, nb := range r.store.notebooks {
		if nb.UserId != userId {
			out = append(out, nb)
		}
	}
	r.store.notebooks = out
	return nil
}

// --- notes ---

type fakeNoteRepository struct {
	store *fakeStore
}

func matchNote(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if n.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.UserOwnedBy:
			if n.UserId != s.UserID {
				return false
			}
		case specification.ByNotebookID:
			if n.NotebookId != s.NotebookID {
				return false
			}
		case specification.ByStatus:
			if string(n.Status) != s.Status {
				return false
			}
		case specification.ByPinned:
			if n.IsPinned != s.Pinned {
				return false
			}
		case specification.ByTrashed:
			if n.IsTrashed != s.Trashed {
				return false
			}
		case specification.NoteSearchQuery:
			q := strings.ToLower(s.Query)
			if !strings.Contains(strings.ToLower(n.Title), q) &&
				!strings.Contains(strings.ToLower(n.Content), q) {
				return false
			}
		}
	}
	return true
}

func (r *fakeNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	clone := *note
	r.store.notes = append(r.store.notes, &clone)
	return nil
}

func (r *fakeNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	for i, n := range r.store.notes {
		if n.Id == note.Id {
			clone := *note
			r.store.notes[i] = &clone
		}
	}
	return nil
}

func (r *fakeNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	out := r.store.notes[:0]
	for _, n := range r.store.notes {
		if n.Id != id {
			out = append(out, n)
		}
	}
	r.store.notes = out
	return nil
}

func (r *fakeNoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for _, n := range r.store.notes {
		if matchNote(n, specs) {
			clone := *n
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var out []*entity.Note
	for _, n := range r.store.notes {
		if matchNote(n, specs) {
			clone := *n
			out = append(out, &clone)
		}
	}

	for _, spec := range specs {
		if _, ok := spec.(specification.NoteDefaultOrder); ok {
			sort.SliceStable(out, func(i, j int) bool {
				if out[i].IsPinned != out[j].IsPinned {
					return out[i].IsPinned
				}
				return out[i].UpdatedAt.After(out[j].UpdatedAt)
			})
		}
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.Pagination); ok {
			if s.Offset >= len(out) {
				return []*entity.Note{}, nil
			}
			out = out[s.Offset:]
			if s.Limit < len(out) {
				out = out[:s.Limit]
			}
		}
	}
	return out, nil
}

func (r *fakeNoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, note := range r.store.notes {
		if matchNote(note, specs) {
			n++
		}
	}
	return n, nil
}

func (r *fakeNoteRepository) CountByNotebook(ctx context.Context, userId uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64)
	for _, n := range r.store.notes {
		if n.UserId == userId && !n.IsTrashed {
			counts[n.NotebookId]++
		}
	}
	return counts, nil
}

func (r *fakeNoteRepository) ReassignNotebook(ctx context.Context, userId, fromId, toId uuid.UUID) error {
	for _, n := range r.store.notes {
		if n.UserId == userId && n.NotebookId == fromId {
			n.NotebookId = toId
		}
	}
	return nil
}

func (r *fakeNoteRepository) DeleteAllByUser(ctx context.Context, userId uuid.UUID) error {
	out := r.store.notes[:0]
	for _, n := range r.store.notes {
		if n.UserId != userId {
			out = append(out, n)
		}
	}
	r.store.notes = out
	return nil
}

// --- tags ---

type fakeTagRepository struct {
	store *fakeStore
}

func matchTag(t *entity.Tag, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if t.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if t.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.UserOwnedBy:
			if t.UserId != s.UserID {
				return false
			}
		case specification.ByName:
			if t.Name != s.Name {
				return false
			}
		case specification.ByNames:
			found := false
			for _, name := range s.Names {
				if t.Name == name {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

func (r *fakeTagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	clone := *tag
	r.store.tags = append(r.store.tags, &clone)
	return nil
}

func (r *fakeTagRepository) Upsert(ctx context.Context, tag *entity.Tag) error {
	for _, t := range r.store.tags {
		if t.UserId == tag.UserId && t.Name == tag.Name {
			return nil
		}
	}
	return r.Create(ctx, tag)
}

func (r *fakeTagRepository) Update(ctx context.Context, tag *entity.Tag) error {
	for i, t := range r.store.tags {
		if t.Id == tag.Id {
			clone := *tag
			r.store.tags[i] = &clone
		}
	}
	return nil
}

func (r *fakeTagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	out := r.store.tags[:0]
	for _, t := range r.store.tags {
		if t.Id != id {
			out = append(out, t)
		}
	}
	r.store.tags = out
	return nil
}

func (r *fakeTagRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error) {
	for _, t := range r.store.tags {
		if matchTag(t, specs) {
			clone := *t
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeTagRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	var out []*entity.Tag
	for _, t := range r.store.tags {
		if matchTag(t, specs) {
			clone := *t
			out = append(out, &clone)
		}
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "name" {
			sort.Slice(out, func(i, j int) bool {
				if s.Desc {
					return out[i].Name > out[j].Name
				}
				return out[i].Name < out[j].Name
			})
		}
	}
	return out, nil
}

func (r *fakeTagRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, t := range r.store.tags {
		if matchTag(t, specs) {
			n++
		}
	}
	return n, nil
}

func (r *fakeTagRepository) DeleteAllByUser(ctx context.Context, userId uuid.UUID) error {
	out := r.store.tags[:0]
	for _, t := range r.store.tags {
		if t.UserId != userId {
			out = append(out, t)
		}
	}
	r.store.tags = out
	return nil
}

// --- note/tag links ---

type fakeNoteTagRepository struct {
	store *fakeStore
}

func (r *fakeNoteTagRepository) CreateLinks(ctx context.Context, noteId uuid.UUID, tagIds []uuid.UUID) error {
	for _, tagId := range tagIds {
		r.store.noteTags = append(r.store.noteTags, entity.NoteTag{NoteId: noteId, TagId: tagId})
	}
	return nil
}

func (r *fakeNoteTagRepository) DeleteByNoteID(ctx context.Context, noteId uuid.UUID) error {
	out := r.store.noteTags[:0]
	for _, link := range r.store.noteTags {
		if link.NoteId != noteId {
			out = append(out, link)
		}
	}
	r.store.noteTags = out
	return nil
}

func (r *fakeNoteTagRepository) DeleteByTagID(ctx context.Context, tagId uuid.UUID) error {
	out := r.store.noteTags[:0]
	for _, link := range r.store.noteTags {
		if link.TagId != tagId {
			out = append(out, link)
		}
	}
	r.store.noteTags = out
	return nil
}

func (r *fakeNoteTagRepository) FindByNoteIDs(ctx context.Context, noteIds []uuid.UUID) ([]*entity.NoteTag, error) {
	want := make(map[uuid.UUID]bool, len(noteIds))
	for _, id := range noteIds {
		want[id] = true
	}
	var out []*entity.NoteTag
	for _, link := range r.store.noteTags {
		if want[link.NoteId] {
			clone := link
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeNoteTagRepository) FindNoteIDsByTagIDs(ctx context.Context, tagIds []uuid.UUID) ([]uuid.UUID, error) {
	want := make(map[uuid.UUID]bool, len(tagIds))
	for _, id := range tagIds {
		want[id] = true
	}
	seen := make(map[uuid.UUID]bool)
	var out []uuid.UUID
	for _, link := range r.store.noteTags {
		if want[link.TagId] && !seen[link.NoteId] {
			seen[link.NoteId] = true
			out = append(out, link.NoteId)
		}
	}
	return out, nil
}

func (r *fakeNoteTagRepository) CountNotesByTag(ctx context.Context, userId uuid.UUID) (map[uuid.UUID]int64, error) {
	active := make(map[uuid.UUID]bool)
	for _, n := range r.store.notes {
		if n.UserId == userId && !n.IsTrashed {
			active[n.Id] = true
		}
	}
	counts := make(map[uuid.UUID]int64)
	for _, link := range r.store.noteTags {
		if active[link.NoteId] {
			counts[link.TagId]++
		}
	}
	return counts, nil
}

func (r *fakeNoteTagRepository) DeleteAllByUser(ctx context.Context, userId uuid.UUID) error {
	owned := make(map[uuid.UUID]bool)
	for _, n := range r.store.notes {
		if n.UserId == userId {
			owned[n.Id] = true
		}
	}
	out := r.store.noteTags[:0]
	for _, link := range r.store.noteTags {
		if !owned[link.NoteId] {
			out = append(out, link)
		}
	}
	r.store.noteTags = out
	return nil
}
