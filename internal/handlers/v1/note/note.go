package note

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

// Note is the API response model for a note.
type Note struct {
	ID        int64    `json:"id" doc:"Note id"`
	Title     string   `json:"title" doc:"Title"`
	Content   string   `json:"content" doc:"Body text"`
	Category  string   `json:"category" doc:"Free-form category label"`
	Tags      []string `json:"tags" doc:"Tag labels"`
	Pinned    bool     `json:"pinned" doc:"Pinned notes sort first"`
	Color     string   `json:"color" doc:"Display color"`
	CreatedAt string   `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string   `json:"updatedAt" doc:"RFC3339 last update time"`
}

func fromService(note *service.Note) Note {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	return Note{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Category:  note.Category,
		Tags:      tags,
		Pinned:    note.Pinned,
		Color:     note.Color,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}
}

func noteError(err error, msg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return huma.NewError(http.StatusNotFound, "note not found")
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}
