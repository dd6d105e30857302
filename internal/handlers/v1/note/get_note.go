package note

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// GetNoteInput is the Huma input for fetching a single note.
type GetNoteInput struct {
	ID     int64  `path:"id" doc:"Note id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// GetNoteOutput is the Huma output for fetching a single note.
type GetNoteOutput struct {
	Body Note
}

// noteGetter is the interface for fetching a single note.
type noteGetter interface {
	GetNote(ctx context.Context, userID string, id int64) (*service.Note, error)
}

// GetNoteHandler handles GET /v1/notes/{id}.
type GetNoteHandler struct {
	NoteService noteGetter
}

// NewGetNoteHandler creates a new GetNoteHandler.
func NewGetNoteHandler(svc noteGetter) *GetNoteHandler {
	return &GetNoteHandler{NoteService: svc}
}

// Register registers the get note endpoint with the Huma API.
func (h *GetNoteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-note",
		Method:      http.MethodGet,
		Path:        "/v1/notes/{id}",
		Summary:     "Get note",
		Description: "Returns a single note by id.",
		Tags:        []string{"Notes"},
	}, h.handle)
}

func (h *GetNoteHandler) handle(ctx context.Context, input *GetNoteInput) (*GetNoteOutput, error) {
	note, err := h.NoteService.GetNote(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, noteError(err, "failed to get note")
	}
	return &GetNoteOutput{Body: fromService(note)}, nil
}
