package service

import (
	"context"
	"testing"

	"github.com/tomymaritano/viny-sub011/internal/dto"
	"github.com/tomymaritano/viny-sub011/internal/entity"
	"github.com/tomymaritano/viny-sub011/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagServiceCreateAndList(t *testing.T) {
	ctx := context.Background()
	factory := newFakeFactory()
	svc := NewTagService(factory)
	userId := uuid.New()

	for _, name := range []string{"zulu", "alpha"} {
		res, err := svc.Create(ctx, userId, &dto.CreateTagRequest{Name: name})
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultColor, res.Color)
	}

	tags, err := svc.List(ctx, userId)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "alpha", tags[0].Name)
	assert.Equal(t, "zulu", tags[1].Name)
}

func TestTagServiceCountsExcludeTrashedNotes(t *testing.T) {
	ctx := context.Background()
	factory := newFakeFactory()
	tagSvc := NewTagService(factory)
	noteSvc := NewNoteService(factory)
	userId := uuid.New()

	_, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "a", Tags: []string{"shared"}})
	require.NoError(t, err)
	binned, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "b", Tags: []string{"shared"}})
	require.NoError(t, err)
	trashed := true
	_, err = noteSvc.Update(ctx, userId, &dto.UpdateNoteRequest{Id: binned.Id, IsTrashed: &trashed})
	require.NoError(t, err)

	tags, err := tagSvc.List(ctx, userId)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, int64(1), tags[0].NoteCount)
}

func TestTagServiceShow(t *testing.T) {
	ctx := context.Background()
	factory := newFakeFactory()
	tagSvc := NewTagService(factory)
	noteSvc := NewNoteService(factory)
	userId := uuid.New()

	created, err := tagSvc.Create(ctx, userId, &dto.CreateTagRequest{Name: "work"})
	require.NoError(t, err)
	_, err = noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "t", Tags: []string{"work"}})
	require.NoError(t, err)

	res, err := tagSvc.Show(ctx, userId, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "work", res.Name)
	assert.Equal(t, int64(1), res.NoteCount)

	var appErr *serverutils.AppError

	_, err = tagSvc.Show(ctx, userId, uuid.New())
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)

	// Another account cannot read it.
	_, err = tagSvc.Show(ctx, uuid.New(), created.Id)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestTagServiceUpdate(t *testing.T) {
	ctx := context.Background()
	factory := newFakeFactory()
	svc := NewTagService(factory)
	userId := uuid.New()

	created, err := svc.Create(ctx, userId, &dto.CreateTagRequest{Name: "old"})
	require.NoError(t, err)

	newName := "new"
	newColor := "#abcdef"
	updated, err := svc.Update(ctx, userId, &dto.UpdateTagRequest{Id: created.Id, Name: &newName, Color: &newColor})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Name)
	assert.Equal(t, "#abcdef", updated.Color)
}

func TestTagServiceDeleteCascadesLinks(t *testing.T) {
	ctx := context.Background()
	factory := newFakeFactory()
	tagSvc := NewTagService(factory)
	noteSvc := NewNoteService(factory)
	userId := uuid.New()

	note, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "t", Tags: []string{"doomed", "kept"}})
	require.NoError(t, err)

	tags, err := tagSvc.List(ctx, userId)
	require.NoError(t, err)
	require.Len(t, tags, 2)

	var doomedId uuid.UUID
	for _, tag := range tags {
		if tag.Name == "doomed" {
			doomedId = tag.Id
		}
	}
	require.NoError(t, tagSvc.Delete(ctx, userId, doomedId))

	// The note loses only the deleted tag.
	res, err := noteSvc.Show(ctx, userId, note.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, res.Tags)

	remaining, err := tagSvc.List(ctx, userId)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "kept", remaining[0].Name)
}

func TestTagServiceOwnerScoping(t *testing.T) {
	ctx := context.Background()
	factory := newFakeFactory()
	svc := NewTagService(factory)
	owner := uuid.New()
	stranger := uuid.New()

	created, err := svc.Create(ctx, owner, &dto.CreateTagRequest{Name: "private"})
	require.NoError(t, err)

	// Same name in another account is a distinct tag.
	_, err = svc.Create(ctx, stranger, &dto.CreateTagRequest{Name: "private"})
	require.NoError(t, err)

	var appErr *serverutils.AppError
	err = svc.Delete(ctx, stranger, created.Id)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)

	tags, err := svc.List(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}
