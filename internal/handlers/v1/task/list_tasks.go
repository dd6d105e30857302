package task

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/logging"
	"github.com/nickolss/madeforyou-server/internal/service"
)

// ListTasksInput is the Huma input for listing tasks.
type ListTasksInput struct {
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// ListTasksResponseBody is the response body for listing tasks.
type ListTasksResponseBody struct {
	Tasks []Task `json:"tasks" doc:"The user's tasks, newest first"`
}

// ListTasksOutput is the Huma output for listing tasks.
type ListTasksOutput struct {
	Body ListTasksResponseBody
}

// taskLister is the interface for listing tasks.
type taskLister interface {
	ListTasks(ctx context.Context, userID string) ([]*service.Task, error)
}

// ListTasksHandler handles GET /v1/tasks.
type ListTasksHandler struct {
	TaskService taskLister
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(svc taskLister) *ListTasksHandler {
	return &ListTasksHandler{TaskService: svc}
}

// Register registers the list tasks endpoint with the Huma API.
func (h *ListTasksHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-tasks",
		Method:      http.MethodGet,
		Path:        "/v1/tasks",
		Summary:     "List tasks",
		Description: "Returns the user's tasks, newest first.",
		Tags:        []string{"Tasks"},
	}, h.handle)
}

func (h *ListTasksHandler) handle(ctx context.Context, input *ListTasksInput) (*ListTasksOutput, error) {
	logData := logging.GetLogData(ctx)

	tasks, err := h.TaskService.ListTasks(ctx, input.UserID)
	if err != nil {
		return nil, taskError(err, "failed to list tasks")
	}

	if logData != nil {
		logData.AddData("taskCount", len(tasks))
	}

	resp := ListTasksResponseBody{Tasks: make([]Task, len(tasks))}
	for i, task := range tasks {
		resp.Tasks[i] = fromService(task)
	}

	return &ListTasksOutput{Body: resp}, nil
}
