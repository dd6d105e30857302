package service

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/nickolss/madeforyou-server/internal/storage"
)

// Task represents a task in the service layer.
type Task struct {
	ID        int64
	Text      string
	Completed bool
	Priority  string
	Category  string
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskCreate carries the fields for a new task.
type TaskCreate struct {
	Text     string
	Priority string
	Category string
	DueDate  *time.Time
}

// TaskPatch carries a partial task update. Unset fields keep their current
// values. DueDate distinguishes "leave alone" (unset) from "clear" (set to
// nil).
type TaskPatch struct {
	Text      omit.Val[string]
	Completed omit.Val[bool]
	Priority  omit.Val[string]
	Category  omit.Val[string]
	DueDate   omit.Val[*time.Time]
}

// TaskService handles task business logic.
type TaskService struct {
	storage *storage.Storage
}

// NewTaskService creates a new TaskService.
func NewTaskService(store *storage.Storage) *TaskService {
	return &TaskService{storage: store}
}

// ListTasks returns all of the user's tasks, newest first.
func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]*Task, error) {
	rows, err := s.storage.Tasks.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	tasks := make([]*Task, len(rows))
	for i, row := range rows {
		tasks[i] = taskFromRow(row)
	}
	return tasks, nil
}

// GetTask returns a single task by id.
func (s *TaskService) GetTask(ctx context.Context, userID string, id int64) (*Task, error) {
	row, err := s.storage.Tasks.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return taskFromRow(row), nil
}

// CreateTask creates a new task. New tasks start out not completed.
func (s *TaskService) CreateTask(ctx context.Context, userID string, create TaskCreate) (*Task, error) {
	row, err := s.storage.Tasks.Insert(ctx, &storage.TaskCreate{
		UserID:   userID,
		Text:     create.Text,
		Priority: create.Priority,
		Category: create.Category,
		DueDate:  create.DueDate,
	})
	if err != nil {
		return nil, err
	}
	return taskFromRow(row), nil
}

// UpdateTask applies a partial update to a task.
func (s *TaskService) UpdateTask(ctx context.Context, userID string, id int64, patch TaskPatch) (*Task, error) {
	row, err := s.storage.Tasks.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if text, ok := patch.Text.Get(); ok {
		row.Text = text
	}
	if completed, ok := patch.Completed.Get(); ok {
		row.Completed = completed
	}
	if priority, ok := patch.Priority.Get(); ok {
		row.Priority = priority
	}
	if category, ok := patch.Category.Get(); ok {
		row.Category = category
	}
	if dueDate, ok := patch.DueDate.Get(); ok {
		row.DueDate = dueDate
	}

	if err := s.storage.Tasks.Update(ctx, row); err != nil {
		return nil, err
	}
	return taskFromRow(row), nil
}

// ToggleTask flips a task's completed flag and returns the updated task.
func (s *TaskService) ToggleTask(ctx context.Context, userID string, id int64) (*Task, error) {
	row, err := s.storage.Tasks.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	row.Completed = !row.Completed
	if err := s.storage.Tasks.Update(ctx, row); err != nil {
		return nil, err
	}
	return taskFromRow(row), nil
}

// DeleteTask removes a task.
func (s *TaskService) DeleteTask(ctx context.Context, userID string, id int64) error {
	return s.storage.Tasks.Delete(ctx, userID, id)
}

func taskFromRow(row *storage.Task) *Task {
	return &Task{
		ID:        row.ID,
		Text:      row.Text,
		Completed: row.Completed,
		Priority:  row.Priority,
		Category:  row.Category,
		DueDate:   row.DueDate,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
