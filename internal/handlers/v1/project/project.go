package project

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

const dateLayout = "2006-01-02"

// Project is the API response model for a project.
type Project struct {
	ID          int64   `json:"id" doc:"Project id"`
	Name        string  `json:"name" doc:"Display name"`
	Description string  `json:"description" doc:"What the project is about"`
	Progress    int     `json:"progress" doc:"Completion percentage, 0-100"`
	Status      string  `json:"status" doc:"Status label, e.g. active or completed"`
	Priority    string  `json:"priority" doc:"Priority label"`
	StartDate   *string `json:"startDate,omitempty" doc:"Calendar start date, absent when none"`
	DueDate     *string `json:"dueDate,omitempty" doc:"Calendar due date, absent when none"`
	Color       string  `json:"color" doc:"Display color"`
	CreatedAt   string  `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt   string  `json:"updatedAt" doc:"RFC3339 last update time"`
}

func fromService(project *service.Project) Project {
	out := Project{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Progress:    project.Progress,
		Status:      project.Status,
		Priority:    project.Priority,
		Color:       project.Color,
		CreatedAt:   project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   project.UpdatedAt.Format(time.RFC3339),
	}
	if project.StartDate != nil {
		start := project.StartDate.Format(dateLayout)
		out.StartDate = &start
	}
	if project.DueDate != nil {
		due := project.DueDate.Format(dateLayout)
		out.DueDate = &due
	}
	return out
}

func projectError(err error, msg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return huma.NewError(http.StatusNotFound, "project not found")
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}

func parseOptionalDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return &parsed, nil
}
