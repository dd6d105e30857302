package note

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// UpdateNoteBody is the request body for updating a note.
// Omitted fields keep their current values.
type UpdateNoteBody struct {
	Title    *string  `json:"title,omitempty" minLength:"1" doc:"Title"`
	Content  *string  `json:"content,omitempty" doc:"Body text"`
	Category *string  `json:"category,omitempty" doc:"Free-form category label"`
	Tags     []string `json:"tags,omitempty" doc:"Replacement tag labels"`
	Pinned   *bool    `json:"pinned,omitempty" doc:"Pin or unpin the note"`
	Color    *string  `json:"color,omitempty" doc:"Display color"`
}

// UpdateNoteInput is the Huma input for updating a note.
type UpdateNoteInput struct {
	ID     int64  `path:"id" doc:"Note id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	Body   UpdateNoteBody
}

// UpdateNoteOutput is the Huma output for updating a note.
type UpdateNoteOutput struct {
	Body Note
}

// noteUpdater is the interface for updating notes.
type noteUpdater interface {
	UpdateNote(ctx context.Context, userID string, id int64, patch service.NotePatch) (*service.Note, error)
}

// UpdateNoteHandler handles PATCH /v1/notes/{id}.
type UpdateNoteHandler struct {
	NoteService noteUpdater
}

// NewUpdateNoteHandler creates a new UpdateNoteHandler.
func NewUpdateNoteHandler(svc noteUpdater) *UpdateNoteHandler {
	return &UpdateNoteHandler{NoteService: svc}
}

// Register registers the update note endpoint with the Huma API.
func (h *UpdateNoteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-note",
		Method:      http.MethodPatch,
		Path:        "/v1/notes/{id}",
		Summary:     "Update note",
		Description: "Applies a partial update to a note. Tags, when present, replace the whole set.",
		Tags:        []string{"Notes"},
	}, h.handle)
}

func (h *UpdateNoteHandler) handle(ctx context.Context, input *UpdateNoteInput) (*UpdateNoteOutput, error) {
	patch := service.NotePatch{
		Title:    omit.FromPtr(input.Body.Title),
		Content:  omit.FromPtr(input.Body.Content),
		Category: omit.FromPtr(input.Body.Category),
		Pinned:   omit.FromPtr(input.Body.Pinned),
		Color:    omit.FromPtr(input.Body.Color),
	}
	if input.Body.Tags != nil {
		patch.Tags = omit.From(input.Body.Tags)
	}

	note, err := h.NoteService.UpdateNote(ctx, input.UserID, input.ID, patch)
	if err != nil {
		return nil, noteError(err, "failed to update note")
	}

	return &UpdateNoteOutput{Body: fromService(note)}, nil
}
