package implementation

import (
	"context"

	"github.com/tomymaritano/viny-sub011/internal/entity"
	"github.com/tomymaritano/viny-sub011/internal/model"
	"github.com/tomymaritano/viny-sub011/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteTagRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteTagRepository(db *gorm.DB) contract.NoteTagRepository {
	return &NoteTagRepositoryImpl{db: db}
}

func (r *NoteTagRepositoryImpl) CreateLinks(ctx context.Context, noteId uuid.UUID, tagIds []uuid.UUID) error {
	if len(tagIds) == 0 {
		return nil
	}
	links := make([]*model.NoteTag, len(tagIds))
	for i, tagId := range tagIds {
		links[i] = &model.NoteTag{NoteId: noteId, TagId: tagId}
	}
	return r.db.WithContext(ctx).Create(links).Error
}

func (r *NoteTagRepositoryImpl) DeleteByNoteID(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteTag{}).Error
}

func (r *NoteTagRepositoryImpl) DeleteByTagID(ctx context.Context, tagId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("tag_id = ?", tagId).Delete(&model.NoteTag{}).Error
}

func (r *NoteTagRepositoryImpl) FindByNoteIDs(ctx context.Context, noteIds []uuid.UUID) ([]*entity.NoteTag, error) {
	if len(noteIds) == 0 {
		return []*entity.NoteTag{}, nil
	}
	var models []*model.NoteTag
	err := r.db.WithContext(ctx).Where("note_id IN ?", noteIds).Find(&models).Error
	if err != nil {
		return nil, err
	}

	links := make([]*entity.NoteTag, len(models))
	for i, m := range models {
		links[i] = &entity.NoteTag{NoteId: m.NoteId, TagId: m.TagId}
	}
	return links, nil
}

func (r *NoteTagRepositoryImpl) FindNoteIDsByTagIDs(ctx context.Context, tagIds []uuid.UUID) ([]uuid.UUID, error) {
	if len(tagIds) == 0 {
		return []uuid.UUID{}, nil
	}
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.NoteTag{}).
		Distinct("note_id").
		Where("tag_id IN ?", tagIds).
		Pluck("note_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *NoteTagRepositoryImpl) CountNotesByTag(ctx context.Context, userId uuid.UUID) (map[uuid.UUID]int64, error) {
	type row struct {
		TagId uuid.UUID
		Total int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.NoteTag{}).
		Select("note_tags.tag_id, COUNT(*) AS total").
		Joins("JOIN notes ON notes.id = note_tags.note_id").
		Where("notes.user_id = ? AND notes.is_trashed = ?", userId, false).
		Group("note_tags.tag_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.TagId] = r.Total
	}
	return counts, nil
}

func (r *NoteTagRepositoryImpl) DeleteAllByUser(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("note_id IN (?)", r.db.Model(&model.Note{}).Select("id").Where("user_id = ?", userId)).
		Delete(&model.NoteTag{}).Error
}
