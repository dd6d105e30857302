package note

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/logging"
	"github.com/nickolss/madeforyou-server/internal/service"
)

// ListNotesInput is the Huma input for listing notes.
type ListNotesInput struct {
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// ListNotesResponseBody is the response body for listing notes.
type ListNotesResponseBody struct {
	Notes []Note `json:"notes" doc:"The user's notes, pinned first"`
}

// ListNotesOutput is the Huma output for listing notes.
type ListNotesOutput struct {
	Body ListNotesResponseBody
}

// noteLister is the interface for listing notes.
type noteLister interface {
	ListNotes(ctx context.Context, userID string) ([]*service.Note, error)
}

// ListNotesHandler handles GET /v1/notes.
type ListNotesHandler struct {
	NoteService noteLister
}

// NewListNotesHandler creates a new ListNotesHandler.
func NewListNotesHandler(svc noteLister) *ListNotesHandler {
	return &ListNotesHandler{NoteService: svc}
}

// Register registers the list notes endpoint with the Huma API.
func (h *ListNotesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-notes",
		Method:      http.MethodGet,
		Path:        "/v1/notes",
		Summary:     "List notes",
		Description: "Returns the user's notes, pinned first, then most recently updated.",
		Tags:        []string{"Notes"},
	}, h.handle)
}

func (h *ListNotesHandler) handle(ctx context.Context, input *ListNotesInput) (*ListNotesOutput, error) {
	logData := logging.GetLogData(ctx)

	notes, err := h.NoteService.ListNotes(ctx, input.UserID)
	if err != nil {
		return nil, noteError(err, "failed to list notes")
	}

	if logData != nil {
		logData.AddData("noteCount", len(notes))
	}

	resp := ListNotesResponseBody{Notes: make([]Note, len(notes))}
	for i, n := range notes {
		resp.Notes[i] = fromService(n)
	}

	return &ListNotesOutput{Body: resp}, nil
}
