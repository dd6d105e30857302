package task

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

const dateLayout = "2006-01-02"

// Task is the API response model for a task.
type Task struct {
	ID        int64   `json:"id" doc:"Task id"`
	Text      string  `json:"text" doc:"What needs doing"`
	Completed bool    `json:"completed" doc:"Whether the task is done"`
	Priority  string  `json:"priority" doc:"Priority label"`
	Category  string  `json:"category" doc:"Free-form category label"`
	DueDate   *string `json:"dueDate,omitempty" doc:"Calendar due date, absent when none"`
	CreatedAt string  `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string  `json:"updatedAt" doc:"RFC3339 last update time"`
}

func fromService(task *service.Task) Task {
	out := Task{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
		Priority:  task.Priority,
		Category:  task.Category,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}
	if task.DueDate != nil {
		due := task.DueDate.Format(dateLayout)
		out.DueDate = &due
	}
	return out
}

func taskError(err error, msg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return huma.NewError(http.StatusNotFound, "task not found")
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}
