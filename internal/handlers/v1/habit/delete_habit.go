package habit

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// DeleteHabitInput is the Huma input for deleting a habit.
type DeleteHabitInput struct {
	ID     int64  `path:"id" doc:"Habit id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// DeleteHabitOutput is the Huma output for deleting a habit.
type DeleteHabitOutput struct{}

// habitDeleter is the interface for deleting habits.
type habitDeleter interface {
	DeleteHabit(ctx context.Context, userID string, id int64) error
}

// DeleteHabitHandler handles DELETE /v1/habits/{id}.
type DeleteHabitHandler struct {
	HabitService habitDeleter
}

// NewDeleteHabitHandler creates a new DeleteHabitHandler.
func NewDeleteHabitHandler(svc habitDeleter) *DeleteHabitHandler {
	return &DeleteHabitHandler{HabitService: svc}
}

// Register registers the delete habit endpoint with the Huma API.
func (h *DeleteHabitHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-habit",
		Method:        http.MethodDelete,
		Path:          "/v1/habits/{id}",
		Summary:       "Delete habit",
		Description:   "Removes a habit and all of its check-ins.",
		Tags:          []string{"Habits"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteHabitHandler) handle(ctx context.Context, input *DeleteHabitInput) (*DeleteHabitOutput, error) {
	if err := h.HabitService.DeleteHabit(ctx, input.UserID, input.ID); err != nil {
		return nil, habitError(err, "failed to delete habit")
	}
	return &DeleteHabitOutput{}, nil
}
