package note

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// CreateNoteBody is the request body for creating a note.
type CreateNoteBody struct {
	Title    string   `json:"title" required:"true" minLength:"1" doc:"Title"`
	Content  string   `json:"content" doc:"Body text"`
	Category string   `json:"category" doc:"Free-form category label"`
	Tags     []string `json:"tags,omitempty" doc:"Tag labels"`
	Pinned   bool     `json:"pinned" doc:"Pin the note"`
	Color    string   `json:"color" doc:"Display color"`
}

// CreateNoteInput is the Huma input for creating a note.
type CreateNoteInput struct {
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	Body   CreateNoteBody
}

// CreateNoteOutput is the Huma output for creating a note.
type CreateNoteOutput struct {
	Body Note
}

// noteCreator is the interface for creating notes.
type noteCreator interface {
	CreateNote(ctx context.Context, userID string, create service.NoteCreate) (*service.Note, error)
}

// CreateNoteHandler handles POST /v1/notes.
type CreateNoteHandler struct {
	NoteService noteCreator
}

// NewCreateNoteHandler creates a new CreateNoteHandler.
func NewCreateNoteHandler(svc noteCreator) *CreateNoteHandler {
	return &CreateNoteHandler{NoteService: svc}
}

// Register registers the create note endpoint with the Huma API.
func (h *CreateNoteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-note",
		Method:        http.MethodPost,
		Path:          "/v1/notes",
		Summary:       "Create note",
		Description:   "Creates a new note.",
		Tags:          []string{"Notes"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateNoteHandler) handle(ctx context.Context, input *CreateNoteInput) (*CreateNoteOutput, error) {
	note, err := h.NoteService.CreateNote(ctx, input.UserID, service.NoteCreate{
		Title:    input.Body.Title,
		Content:  input.Body.Content,
		Category: input.Body.Category,
		Tags:     input.Body.Tags,
		Pinned:   input.Body.Pinned,
		Color:    input.Body.Color,
	})
	if err != nil {
		return nil, noteError(err, "failed to create note")
	}

	return &CreateNoteOutput{Body: fromService(note)}, nil
}
