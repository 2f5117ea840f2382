package dto

import (
	"time"

	"notely/internal/entity"
)

type CreateNoteRequest struct {
	Title    *string    `json:"title" validate:"omitempty,max=255"`
	Content  *string    `json:"content" validate:"omitempty"`
	Category *string    `json:"category" validate:"omitempty,max=100"`
	Date     *time.Time `json:"date" validate:"omitempty"`
}

type UpdateNoteRequest struct {
	Title    *string    `json:"title" validate:"omitempty,max=255"`
	Content  *string    `json:"content" validate:"omitempty"`
	Category *string    `json:"category" validate:"omitempty,max=100"`
	Date     *time.Time `json:"date" validate:"omitempty"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Title     *string   `json:"title,omitempty"`
	Content   *string   `json:"content,omitempty"`
	Category  *string   `json:"category,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NoteResponseFromEntity(note *entity.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID.String(),
		Title:     note.Title,
		Content:   note.Content,
		Category:  note.Category,
		Date:      note.Date,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func NoteResponsesFromEntities(notes []entity.Note) []NoteResponse {
	responses := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, NoteResponseFromEntity(&notes[i]))
	}
	return responses
}
