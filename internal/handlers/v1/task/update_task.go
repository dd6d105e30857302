package task

import (
	"context"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// UpdateTaskBody is the request body for updating a task.
// Omitted fields keep their current values; an explicit empty dueDate
// clears it.
type UpdateTaskBody struct {
	Text      *string `json:"text,omitempty" minLength:"1" doc:"What needs doing"`
	Completed *bool   `json:"completed,omitempty" doc:"Whether the task is done"`
	Priority  *string `json:"priority,omitempty" doc:"Priority label"`
	Category  *string `json:"category,omitempty" doc:"Free-form category label"`
	DueDate   *string `json:"dueDate,omitempty" doc:"Calendar due date, empty string clears it"`
}

// UpdateTaskInput is the Huma input for updating a task.
type UpdateTaskInput struct {
	ID     int64  `path:"id" doc:"Task id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	Body   UpdateTaskBody
}

// UpdateTaskOutput is the Huma output for updating a task.
type UpdateTaskOutput struct {
	Body Task
}

// taskUpdater is the interface for updating tasks.
type taskUpdater interface {
	UpdateTask(ctx context.Context, userID string, id int64, patch service.TaskPatch) (*service.Task, error)
}

// UpdateTaskHandler handles PATCH /v1/tasks/{id}.
type UpdateTaskHandler struct {
	TaskService taskUpdater
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(svc taskUpdater) *UpdateTaskHandler {
	return &UpdateTaskHandler{TaskService: svc}
}

// Register registers the update task endpoint with the Huma API.
func (h *UpdateTaskHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-task",
		Method:      http.MethodPatch,
		Path:        "/v1/tasks/{id}",
		Summary:     "Update task",
		Description: "Applies a partial update to a task.",
		Tags:        []string{"Tasks"},
	}, h.handle)
}

// parseUpdateTaskInput turns the sparse body into a patch. A present but
// empty dueDate clears the stored date.
func parseUpdateTaskInput(input *UpdateTaskInput) (service.TaskPatch, error) {
	patch := service.TaskPatch{
		Text:      omit.FromPtr(input.Body.Text),
		Completed: omit.FromPtr(input.Body.Completed),
		Priority:  omit.FromPtr(input.Body.Priority),
		Category:  omit.FromPtr(input.Body.Category),
	}

	if input.Body.DueDate != nil {
		if *input.Body.DueDate == "" {
			patch.DueDate = omit.From[*time.Time](nil)
		} else {
			due, err := time.Parse(dateLayout, *input.Body.DueDate)
			if err != nil {
				return service.TaskPatch{}, huma.NewError(http.StatusBadRequest, "invalid dueDate", err)
			}
			patch.DueDate = omit.From(&due)
		}
	}

	return patch, nil
}

func (h *UpdateTaskHandler) handle(ctx context.Context, input *UpdateTaskInput) (*UpdateTaskOutput, error) {
	patch, err := parseUpdateTaskInput(input)
	if err != nil {
		return nil, err
	}

	task, err := h.TaskService.UpdateTask(ctx, input.UserID, input.ID, patch)
	if err != nil {
		return nil, taskError(err, "failed to update task")
	}

	return &UpdateTaskOutput{Body: fromService(task)}, nil
}
