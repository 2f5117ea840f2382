package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"notely/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoteRepo struct {
	mu    sync.Mutex
	notes map[uuid.UUID]*entity.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[uuid.UUID]*entity.Note)}
}

func (r *fakeNoteRepo) Create(_ context.Context, note *entity.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	stored := *note
	r.notes[note.ID] = &stored
	return nil
}

func (r *fakeNoteRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, ok := r.notes[id]
	if !ok {
		return nil, nil
	}
	copied := *note
	return &copied, nil
}

func (r *fakeNoteRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Note
	for _, note := range r.notes {
		if note.UserID == userID {
			result = append(result, *note)
		}
	}
	return result, nil
}

func (r *fakeNoteRepo) ListByUserAndDate(_ context.Context, userID uuid.UUID, day time.Time) ([]entity.Note, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Note
	for _, note := range r.notes {
		if note.UserID == userID && !note.Date.Before(start) && note.Date.Before(end) {
			result = append(result, *note)
		}
	}
	return result, nil
}

func (r *fakeNoteRepo) Update(_ context.Context, note *entity.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *note
	r.notes[note.ID] = &stored
	return nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.notes, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestNoteService_CreateAndGet(t *testing.T) {
	t.Parallel()
	svc := NewNoteService(newFakeNoteRepo())
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.CreateNote(ctx, owner, NoteInput{Title: strPtr("groceries"), Content: strPtr("milk")})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.GetNote(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "groceries", *got.Title)
}

func TestNoteService_OwnershipEnforced(t *testing.T) {
	t.Parallel()
	svc := NewNoteService(newFakeNoteRepo())
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	created, err := svc.CreateNote(ctx, owner, NoteInput{Title: strPtr("secret")})
	require.NoError(t, err)

	_, err = svc.GetNote(ctx, stranger, created.ID)
	assert.ErrorIs(t, err, ErrNotNoteOwner)

	_, err = svc.UpdateNote(ctx, stranger, created.ID, NoteInput{Title: strPtr("stolen")})
	assert.ErrorIs(t, err, ErrNotNoteOwner)

	err = svc.DeleteNote(ctx, stranger, created.ID)
	assert.ErrorIs(t, err, ErrNotNoteOwner)

	// still intact for the owner
	got, err := svc.GetNote(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "secret", *got.Title)
}

func TestNoteService_UpdateIsPartial(t *testing.T) {
	t.Parallel()
	svc := NewNoteService(newFakeNoteRepo())
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.CreateNote(ctx, owner, NoteInput{Title: strPtr("title"), Content: strPtr("body")})
	require.NoError(t, err)

	updated, err := svc.UpdateNote(ctx, owner, created.ID, NoteInput{Content: strPtr("new body")})
	require.NoError(t, err)
	assert.Equal(t, "title", *updated.Title)
	assert.Equal(t, "new body", *updated.Content)
}

func TestNoteService_ListByDate(t *testing.T) {
	t.Parallel()
	svc := NewNoteService(newFakeNoteRepo())
	ctx := context.Background()
	owner := uuid.New()

	day := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	other := day.AddDate(0, 0, 1)

	_, err := svc.CreateNote(ctx, owner, NoteInput{Title: strPtr("today"), Date: &day})
	require.NoError(t, err)
	_, err = svc.CreateNote(ctx, owner, NoteInput{Title: strPtr("tomorrow"), Date: &other})
	require.NoError(t, err)

	notes, err := svc.ListNotesByDate(ctx, owner, day)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "today", *notes[0].Title)
}

func TestNoteService_DeleteMissing(t *testing.T) {
	t.Parallel()
	svc := NewNoteService(newFakeNoteRepo())

	err := svc.DeleteNote(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNoteNotFound)
}
