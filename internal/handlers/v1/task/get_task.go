package task

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// GetTaskInput is the Huma input for fetching a single task.
type GetTaskInput struct {
	ID     int64  `path:"id" doc:"Task id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// GetTaskOutput is the Huma output for fetching a single task.
type GetTaskOutput struct {
	Body Task
}

// taskGetter is the interface for fetching a single task.
type taskGetter interface {
	GetTask(ctx context.Context, userID string, id int64) (*service.Task, error)
}

// GetTaskHandler handles GET /v1/tasks/{id}.
type GetTaskHandler struct {
	TaskService taskGetter
}

// NewGetTaskHandler creates a new GetTaskHandler.
func NewGetTaskHandler(svc taskGetter) *GetTaskHandler {
	return &GetTaskHandler{TaskService: svc}
}

// Register registers the get task endpoint with the Huma API.
func (h *GetTaskHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-task",
		Method:      http.MethodGet,
		Path:        "/v1/tasks/{id}",
		Summary:     "Get task",
		Description: "Returns a single task by id.",
		Tags:        []string{"Tasks"},
	}, h.handle)
}

func (h *GetTaskHandler) handle(ctx context.Context, input *GetTaskInput) (*GetTaskOutput, error) {
	task, err := h.TaskService.GetTask(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, taskError(err, "failed to get task")
	}
	return &GetTaskOutput{Body: fromService(task)}, nil
}
