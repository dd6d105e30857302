package habit

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// DeleteEntryInput is the Huma input for deleting a check-in.
type DeleteEntryInput struct {
	ID     int64  `path:"id" doc:"Entry id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// DeleteEntryOutput is the Huma output for deleting a check-in.
type DeleteEntryOutput struct{}

// entryDeleter is the interface for deleting check-ins.
type entryDeleter interface {
	DeleteEntry(ctx context.Context, userID string, id int64) error
}

// DeleteEntryHandler handles DELETE /v1/habits/entries/{id}.
type DeleteEntryHandler struct {
	HabitService entryDeleter
}

// NewDeleteEntryHandler creates a new DeleteEntryHandler.
func NewDeleteEntryHandler(svc entryDeleter) *DeleteEntryHandler {
	return &DeleteEntryHandler{HabitService: svc}
}

// Register registers the delete entry endpoint with the Huma API.
func (h *DeleteEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-habit-entry",
		Method:        http.MethodDelete,
		Path:          "/v1/habits/entries/{id}",
		Summary:       "Delete habit check-in",
		Description:   "Removes a single check-in.",
		Tags:          []string{"Habits"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteEntryHandler) handle(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error) {
	if err := h.HabitService.DeleteEntry(ctx, input.UserID, input.ID); err != nil {
		return nil, entryError(err, "failed to delete habit entry")
	}
	return &DeleteEntryOutput{}, nil
}
