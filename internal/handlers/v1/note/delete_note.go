package note

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// DeleteNoteInput is the Huma input for deleting a note.
type DeleteNoteInput struct {
	ID     int64  `path:"id" doc:"Note id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// DeleteNoteOutput is the Huma output for deleting a note.
type DeleteNoteOutput struct{}

// noteDeleter is the interface for deleting notes.
type noteDeleter interface {
	DeleteNote(ctx context.Context, userID string, id int64) error
}

// DeleteNoteHandler handles DELETE /v1/notes/{id}.
type DeleteNoteHandler struct {
	NoteService noteDeleter
}

// NewDeleteNoteHandler creates a new DeleteNoteHandler.
func NewDeleteNoteHandler(svc noteDeleter) *DeleteNoteHandler {
	return &DeleteNoteHandler{NoteService: svc}
}

// Register registers the delete note endpoint with the Huma API.
func (h *DeleteNoteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-note",
		Method:        http.MethodDelete,
		Path:          "/v1/notes/{id}",
		Summary:       "Delete note",
		Description:   "Removes a note.",
		Tags:          []string{"Notes"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteNoteHandler) handle(ctx context.Context, input *DeleteNoteInput) (*DeleteNoteOutput, error) {
	if err := h.NoteService.DeleteNote(ctx, input.UserID, input.ID); err != nil {
		return nil, noteError(err, "failed to delete note")
	}
	return &DeleteNoteOutput{}, nil
}
