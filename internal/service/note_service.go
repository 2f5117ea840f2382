package service

import (
	"context"
	"time"

	"notely/internal/entity"
	"notely/internal/repository"

	"github.com/google/uuid"
)

type NoteService struct {
	notes repository.NoteRepository
}

func NewNoteService(notes repository.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

type NoteInput struct {
	Title    *string
	Content  *string
	Category *string
	Date     *time.Time
}

func (s *NoteService) CreateNote(ctx context.Context, userID uuid.UUID, input NoteInput) (*entity.Note, error) {
	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}
	note := &entity.Note{
		UserID:   userID,
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		Date:     date,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) GetNote(ctx context.Context, userID uuid.UUID, noteID uuid.UUID) (*entity.Note, error) {
	return s.ownedNote(ctx, userID, noteID)
}

func (s *NoteService) ListNotes(ctx context.Context, userID uuid.UUID) ([]entity.Note, error) {
	return s.notes.ListByUser(ctx, userID)
}

func (s *NoteService) ListNotesByDate(ctx context.Context, userID uuid.UUID, day time.Time) ([]entity.Note, error) {
	return s.notes.ListByUserAndDate(ctx, userID, day)
}

func (s *NoteService) UpdateNote(ctx context.Context, userID uuid.UUID, noteID uuid.UUID, input NoteInput) (*entity.Note, error) {
	note, err := s.ownedNote(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		note.Title = input.Title
	}
	if input.Content != nil {
		note.Content = input.Content
	}
	if input.Category != nil {
		note.Category = input.Category
	}
	if input.Date != nil {
		note.Date = *input.Date
	}

	if err := s.notes.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) DeleteNote(ctx context.Context, userID uuid.UUID, noteID uuid.UUID) error {
	note, err := s.ownedNote(ctx, userID, noteID)
	if err != nil {
		return err
	}
	return s.notes.Delete(ctx, note.ID)
}

func (s *NoteService) ownedNote(ctx context.Context, userID uuid.UUID, noteID uuid.UUID) (*entity.Note, error) {
	note, err := s.notes.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	if note.UserID != userID {
		return nil, ErrNotNoteOwner
	}
	return note, nil
}
