package task

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// DeleteTaskInput is the Huma input for deleting a task.
type DeleteTaskInput struct {
	ID     int64  `path:"id" doc:"Task id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// DeleteTaskOutput is the Huma output for deleting a task.
type DeleteTaskOutput struct{}

// taskDeleter is the interface for deleting tasks.
type taskDeleter interface {
	DeleteTask(ctx context.Context, userID string, id int64) error
}

// DeleteTaskHandler handles DELETE /v1/tasks/{id}.
type DeleteTaskHandler struct {
	TaskService taskDeleter
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(svc taskDeleter) *DeleteTaskHandler {
	return &DeleteTaskHandler{TaskService: svc}
}

// Register registers the delete task endpoint with the Huma API.
func (h *DeleteTaskHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-task",
		Method:        http.MethodDelete,
		Path:          "/v1/tasks/{id}",
		Summary:       "Delete task",
		Description:   "Removes a task.",
		Tags:          []string{"Tasks"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTaskHandler) handle(ctx context.Context, input *DeleteTaskInput) (*DeleteTaskOutput, error) {
	if err := h.TaskService.DeleteTask(ctx, input.UserID, input.ID); err != nil {
		return nil, taskError(err, "failed to delete task")
	}
	return &DeleteTaskOutput{}, nil
}
