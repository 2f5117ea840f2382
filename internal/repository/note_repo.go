package repository

import (
	"context"
	"errors"
	"time"

	"notely/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Note, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Note, error)
	ListByUserAndDate(ctx context.Context, userID uuid.UUID, day time.Time) ([]entity.Note, error)
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	var note entity.Note
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&note).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &note, err
}

func (r *noteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Note, error) {
	var notes []entity.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) ListByUserAndDate(ctx context.Context, userID uuid.UUID, day time.Time) ([]entity.Note, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var notes []entity.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Note{}).
		Error
}
