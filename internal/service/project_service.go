package service

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/nickolss/madeforyou-server/internal/storage"
)

// Project represents a project in the service layer.
type Project struct {
	ID          int64
	Name        string
	Description string
	Progress    int
	Status      string
	Priority    string
	StartDate   *time.Time
	DueDate     *time.Time
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectCreate carries the fields for a new project.
type ProjectCreate struct {
	Name        string
	Description string
	Status      string
	Priority    string
	StartDate   *time.Time
	DueDate     *time.Time
	Color       string
}

// ProjectPatch carries a partial project update. Unset fields keep their
// current values.
type ProjectPatch struct {
	Name        omit.Val[string]
	Description omit.Val[string]
	Progress    omit.Val[int]
	Status      omit.Val[string]
	Priority    omit.Val[string]
	StartDate   omit.Val[*time.Time]
	DueDate     omit.Val[*time.Time]
	Color       omit.Val[string]
}

// ProjectService handles project business logic.
type ProjectService struct {
	storage *storage.Storage
}

// NewProjectService creates a new ProjectService.
func NewProjectService(store *storage.Storage) *ProjectService {
	return &ProjectService{storage: store}
}

// ListProjects returns all of the user's projects, newest first.
func (s *ProjectService) ListProjects(ctx context.Context, userID string) ([]*Project, error) {
	rows, err := s.storage.Projects.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	projects := make([]*Project, len(rows))
	for i, row := range rows {
		projects[i] = projectFromRow(row)
	}
	return projects, nil
}

// GetProject returns a single project by id.
func (s *ProjectService) GetProject(ctx context.Context, userID string, id int64) (*Project, error) {
	row, err := s.storage.Projects.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return projectFromRow(row), nil
}

// CreateProject creates a new project. Progress starts at zero.
func (s *ProjectService) CreateProject(ctx context.Context, userID string, create ProjectCreate) (*Project, error) {
	row, err := s.storage.Projects.Insert(ctx, &storage.ProjectCreate{
		UserID:      userID,
		Name:        create.Name,
		Description: create.Description,
		Status:      create.Status,
		Priority:    create.Priority,
		StartDate:   create.StartDate,
		DueDate:     create.DueDate,
		Color:       create.Color,
	})
	if err != nil {
		return nil, err
	}
	return projectFromRow(row), nil
}

// UpdateProject applies a partial update to a project. Progress is clamped
// to the 0-100 range.
func (s *ProjectService) UpdateProject(ctx context.Context, userID string, id int64, patch ProjectPatch) (*Project, error) {
	row, err := s.storage.Projects.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if name, ok := patch.Name.Get(); ok {
		row.Name = name
	}
	if description, ok := patch.Description.Get(); ok {
		row.Description = description
	}
	if progress, ok := patch.Progress.Get(); ok {
		row.Progress = clampProgress(progress)
	}
	if status, ok := patch.Status.Get(); ok {
		row.Status = status
	}
	if priority, ok := patch.Priority.Get(); ok {
		row.Priority = priority
	}
	if startDate, ok := patch.StartDate.Get(); ok {
		row.StartDate = startDate
	}
	if dueDate, ok := patch.DueDate.Get(); ok {
		row.DueDate = dueDate
	}
	if color, ok := patch.Color.Get(); ok {
		row.Color = color
	}

	if err := s.storage.Projects.Update(ctx, row); err != nil {
		return nil, err
	}
	return projectFromRow(row), nil
}

// DeleteProject removes a project.
func (s *ProjectService) DeleteProject(ctx context.Context, userID string, id int64) error {
	return s.storage.Projects.Delete(ctx, userID, id)
}

func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

func projectFromRow(row *storage.Project) *Project {
	return &Project{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Progress:    row.Progress,
		Status:      row.Status,
		Priority:    row.Priority,
		StartDate:   row.StartDate,
		DueDate:     row.DueDate,
		Color:       row.Color,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
