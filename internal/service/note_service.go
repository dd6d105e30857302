package service

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/nickolss/madeforyou-server/internal/storage"
)

// Note represents a note in the service layer.
type Note struct {
	ID        int64
	Title     string
	Content   string
	Category  string
	Tags      []string
	Pinned    bool
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteCreate carries the fields for a new note.
type NoteCreate struct {
	Title    string
	Content  string
	Category string
	Tags     []string
	Pinned   bool
	Color    string
}

// NotePatch carries a partial note update. Unset fields keep their current
// values.
type NotePatch struct {
	Title    omit.Val[string]
	Content  omit.Val[string]
	Category omit.Val[string]
	Tags     omit.Val[[]string]
	Pinned   omit.Val[bool]
	Color    omit.Val[string]
}

// NoteService handles note business logic.
type NoteService struct {
	storage *storage.Storage
}

// NewNoteService creates a new NoteService.
func NewNoteService(store *storage.Storage) *NoteService {
	return &NoteService{storage: store}
}

// ListNotes returns all of the user's notes, pinned first.
func (s *NoteService) ListNotes(ctx context.Context, userID string) ([]*Note, error) {
	rows, err := s.storage.Notes.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	notes := make([]*Note, len(rows))
	for i, row := range rows {
		notes[i] = noteFromRow(row)
	}
	return notes, nil
}

// GetNote returns a single note by id.
func (s *NoteService) GetNote(ctx context.Context, userID string, id int64) (*Note, error) {
	row, err := s.storage.Notes.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return noteFromRow(row), nil
}

// CreateNote creates a new note.
func (s *NoteService) CreateNote(ctx context.Context, userID string, create NoteCreate) (*Note, error) {
	row, err := s.storage.Notes.Insert(ctx, &storage.NoteCreate{
		UserID:   userID,
		Title:    create.Title,
		Content:  create.Content,
		Category: create.Category,
		Tags:     create.Tags,
		Pinned:   create.Pinned,
		Color:    create.Color,
	})
	if err != nil {
		return nil, err
	}
	return noteFromRow(row), nil
}

// UpdateNote applies a partial update to a note.
func (s *NoteService) UpdateNote(ctx context.Context, userID string, id int64, patch NotePatch) (*Note, error) {
	row, err := s.storage.Notes.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if title, ok := patch.Title.Get(); ok {
		row.Title = title
	}
	if content, ok := patch.Content.Get(); ok {
		row.Content = content
	}
	if category, ok := patch.Category.Get(); ok {
		row.Category = category
	}
	if tags, ok := patch.Tags.Get(); ok {
		row.Tags = tags
	}
	if pinned, ok := patch.Pinned.Get(); ok {
		row.Pinned = pinned
	}
	if color, ok := patch.Color.Get(); ok {
		row.Color = color
	}

	if err := s.storage.Notes.Update(ctx, row); err != nil {
		return nil, err
	}
	return noteFromRow(row), nil
}

// DeleteNote removes a note.
func (s *NoteService) DeleteNote(ctx context.Context, userID string, id int64) error {
	return s.storage.Notes.Delete(ctx, userID, id)
}

func noteFromRow(row *storage.Note) *Note {
	return &Note{
		ID:        row.ID,
		Title:     row.Title,
		Content:   row.Content,
		Category:  row.Category,
		Tags:      row.Tags,
		Pinned:    row.Pinned,
		Color:     row.Color,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
