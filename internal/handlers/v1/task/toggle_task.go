package task

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// ToggleTaskInput is the Huma input for toggling a task.
type ToggleTaskInput struct {
	ID     int64  `path:"id" doc:"Task id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// ToggleTaskOutput is the Huma output for toggling a task.
type ToggleTaskOutput struct {
	Body Task
}

// taskToggler is the interface for toggling tasks.
type taskToggler interface {
	ToggleTask(ctx context.Context, userID string, id int64) (*service.Task, error)
}

// ToggleTaskHandler handles POST /v1/tasks/{id}/toggle.
type ToggleTaskHandler struct {
	TaskService taskToggler
}

// NewToggleTaskHandler creates a new ToggleTaskHandler.
func NewToggleTaskHandler(svc taskToggler) *ToggleTaskHandler {
	return &ToggleTaskHandler{TaskService: svc}
}

// Register registers the toggle task endpoint with the Huma API.
func (h *ToggleTaskHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "toggle-task",
		Method:      http.MethodPost,
		Path:        "/v1/tasks/{id}/toggle",
		Summary:     "Toggle task",
		Description: "Flips a task's completed flag.",
		Tags:        []string{"Tasks"},
	}, h.handle)
}

func (h *ToggleTaskHandler) handle(ctx context.Context, input *ToggleTaskInput) (*ToggleTaskOutput, error) {
	task, err := h.TaskService.ToggleTask(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, taskError(err, "failed to toggle task")
	}
	return &ToggleTaskOutput{Body: fromService(task)}, nil
}
