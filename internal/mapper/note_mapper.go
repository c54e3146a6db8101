package mapper

import (
	"github.com/tomymaritano/viny-sub011/internal/entity"
	"github.com/tomymaritano/viny-sub011/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	return &entity.Note{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		Preview:    n.Preview,
		Status:     entity.NoteStatus(n.Status),
		IsPinned:   n.IsPinned,
		IsTrashed:  n.IsTrashed,
		TrashedAt:  n.TrashedAt,
		NotebookId: n.NotebookId,
		UserId:     n.UserId,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		Preview:    n.Preview,
		Status:     string(n.Status),
		IsPinned:   n.IsPinned,
		IsTrashed:  n.IsTrashed,
		TrashedAt:  n.TrashedAt,
		NotebookId: n.NotebookId,
		UserId:     n.UserId,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
