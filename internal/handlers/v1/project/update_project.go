package project

import (
	"context"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// UpdateProjectBody is the request body for updating a project.
// Omitted fields keep their current values; an explicit empty date clears
// the stored date.
type UpdateProjectBody struct {
	Name        *string `json:"name,omitempty" minLength:"1" doc:"Display name"`
	Description *string `json:"description,omitempty" doc:"What the project is about"`
	Progress    *int    `json:"progress,omitempty" minimum:"0" maximum:"100" doc:"Completion percentage"`
	Status      *string `json:"status,omitempty" doc:"Status label"`
	Priority    *string `json:"priority,omitempty" doc:"Priority label"`
	StartDate   *string `json:"startDate,omitempty" doc:"Calendar start date, empty string clears it"`
	DueDate     *string `json:"dueDate,omitempty" doc:"Calendar due date, empty string clears it"`
	Color       *string `json:"color,omitempty" doc:"Display color"`
}

// UpdateProjectInput is the Huma input for updating a project.
type UpdateProjectInput struct {
	ID     int64  `path:"id" doc:"Project id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	Body   UpdateProjectBody
}

// UpdateProjectOutput is the Huma output for updating a project.
type UpdateProjectOutput struct {
	Body Project
}

// projectUpdater is the interface for updating projects.
type projectUpdater interface {
	UpdateProject(ctx context.Context, userID string, id int64, patch service.ProjectPatch) (*service.Project, error)
}

// UpdateProjectHandler handles PATCH /v1/projects/{id}.
type UpdateProjectHandler struct {
	ProjectService projectUpdater
}

// NewUpdateProjectHandler creates a new UpdateProjectHandler.
func NewUpdateProjectHandler(svc projectUpdater) *UpdateProjectHandler {
	return &UpdateProjectHandler{ProjectService: svc}
}

// Register registers the update project endpoint with the Huma API.
func (h *UpdateProjectHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-project",
		Method:      http.MethodPatch,
		Path:        "/v1/projects/{id}",
		Summary:     "Update project",
		Description: "Applies a partial update to a project.",
		Tags:        []string{"Projects"},
	}, h.handle)
}

// parseUpdateProjectInput turns the sparse body into a patch.
func parseUpdateProjectInput(input *UpdateProjectInput) (service.ProjectPatch, error) {
	patch := service.ProjectPatch{
		Name:        omit.FromPtr(input.Body.Name),
		Description: omit.FromPtr(input.Body.Description),
		Progress:    omit.FromPtr(input.Body.Progress),
		Status:      omit.FromPtr(input.Body.Status),
		Priority:    omit.FromPtr(input.Body.Priority),
		Color:       omit.FromPtr(input.Body.Color),
	}

	if input.Body.StartDate != nil {
		if *input.Body.StartDate == "" {
			patch.StartDate = omit.From[*time.Time](nil)
		} else {
			start, err := parseOptionalDate(*input.Body.StartDate, "startDate")
			if err != nil {
				return service.ProjectPatch{}, err
			}
			patch.StartDate = omit.From(start)
		}
	}
	if input.Body.DueDate != nil {
		if *input.Body.DueDate == "" {
			patch.DueDate = omit.From[*time.Time](nil)
		} else {
			due, err := parseOptionalDate(*input.Body.DueDate, "dueDate")
			if err != nil {
				return service.ProjectPatch{}, err
			}
			patch.DueDate = omit.From(due)
		}
	}

	return patch, nil
}

func (h *UpdateProjectHandler) handle(ctx context.Context, input *UpdateProjectInput) (*UpdateProjectOutput, error) {
	patch, err := parseUpdateProjectInput(input)
	if err != nil {
		return nil, err
	}

	project, err := h.ProjectService.UpdateProject(ctx, input.UserID, input.ID, patch)
	if err != nil {
		return nil, projectError(err, "failed to update project")
	}

	return &UpdateProjectOutput{Body: fromService(project)}, nil
}
