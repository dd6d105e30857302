package service

import (
	"context"

	"github.com/nickolss/madeforyou-server/internal/operator/actions"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

// Processor runs an action as one atomic unit of work and blocks until it
// has been committed or rolled back.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Finance *FinanceService
	Note    *NoteService
	Task    *TaskService
	Project *ProjectService
	Habit   *HabitService
	Profile *ProfileService
}

// NewService creates a new Service with the given storage and processor.
func NewService(store *storage.Storage, processor Processor) *Service {
	return &Service{
		Finance: NewFinanceService(store, processor),
		Note:    NewNoteService(store),
		Task:    NewTaskService(store),
		Project: NewProjectService(store),
		Habit:   NewHabitService(store),
		Profile: NewProfileService(store),
	}
}
