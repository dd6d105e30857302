package task

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// CreateTaskBody is the request body for creating a task.
type CreateTaskBody struct {
	Text     string `json:"text" required:"true" minLength:"1" doc:"What needs doing"`
	Priority string `json:"priority" doc:"Priority label"`
	Category string `json:"category" doc:"Free-form category label"`
	DueDate  string `json:"dueDate,omitempty" format:"date" doc:"Calendar due date"`
}

// CreateTaskInput is the Huma input for creating a task.
type CreateTaskInput struct {
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	Body   CreateTaskBody
}

// CreateTaskOutput is the Huma output for creating a task.
type CreateTaskOutput struct {
	Body Task
}

// taskCreator is the interface for creating tasks.
type taskCreator interface {
	CreateTask(ctx context.Context, userID string, create service.TaskCreate) (*service.Task, error)
}

// CreateTaskHandler handles POST /v1/tasks.
type CreateTaskHandler struct {
	TaskService taskCreator
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(svc taskCreator) *CreateTaskHandler {
	return &CreateTaskHandler{TaskService: svc}
}

// Register registers the create task endpoint with the Huma API.
func (h *CreateTaskHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-task",
		Method:        http.MethodPost,
		Path:          "/v1/tasks",
		Summary:       "Create task",
		Description:   "Creates a new task. New tasks start out not completed.",
		Tags:          []string{"Tasks"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTaskHandler) handle(ctx context.Context, input *CreateTaskInput) (*CreateTaskOutput, error) {
	create := service.TaskCreate{
		Text:     input.Body.Text,
		Priority: input.Body.Priority,
		Category: input.Body.Category,
	}
	if input.Body.DueDate != "" {
		due, err := time.Parse(dateLayout, input.Body.DueDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid dueDate", err)
		}
		create.DueDate = &due
	}

	task, err := h.TaskService.CreateTask(ctx, input.UserID, create)
	if err != nil {
		return nil, taskError(err, "failed to create task")
	}

	return &CreateTaskOutput{Body: fromService(task)}, nil
}
