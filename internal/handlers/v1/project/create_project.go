package project

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// CreateProjectBody is the request body for creating a project.
type CreateProjectBody struct {
	Name        string `json:"name" required:"true" minLength:"1" doc:"Display name"`
	Description string `json:"description" doc:"What the project is about"`
	Status      string `json:"status" doc:"Status label, defaults to active"`
	Priority    string `json:"priority" doc:"Priority label"`
	StartDate   string `json:"startDate,omitempty" format:"date" doc:"Calendar start date"`
	DueDate     string `json:"dueDate,omitempty" format:"date" doc:"Calendar due date"`
	Color       string `json:"color" doc:"Display color"`
}

// CreateProjectInput is the Huma input for creating a project.
type CreateProjectInput struct {
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	Body   CreateProjectBody
}

// CreateProjectOutput is the Huma output for creating a project.
type CreateProjectOutput struct {
	Body Project
}

// projectCreator is the interface for creating projects.
type projectCreator interface {
	CreateProject(ctx context.Context, userID string, create service.ProjectCreate) (*service.Project, error)
}

// CreateProjectHandler handles POST /v1/projects.
type CreateProjectHandler struct {
	ProjectService projectCreator
}

// NewCreateProjectHandler creates a new CreateProjectHandler.
func NewCreateProjectHandler(svc projectCreator) *CreateProjectHandler {
	return &CreateProjectHandler{ProjectService: svc}
}

// Register registers the create project endpoint with the Huma API.
func (h *CreateProjectHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-project",
		Method:        http.MethodPost,
		Path:          "/v1/projects",
		Summary:       "Create project",
		Description:   "Creates a new project. Progress starts at zero.",
		Tags:          []string{"Projects"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateProjectHandler) handle(ctx context.Context, input *CreateProjectInput) (*CreateProjectOutput, error) {
	startDate, err := parseOptionalDate(input.Body.StartDate, "startDate")
	if err != nil {
		return nil, err
	}
	dueDate, err := parseOptionalDate(input.Body.DueDate, "dueDate")
	if err != nil {
		return nil, err
	}

	status := input.Body.Status
	if status == "" {
		status = "active"
	}

	project, err := h.ProjectService.CreateProject(ctx, input.UserID, service.ProjectCreate{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Status:      status,
		Priority:    input.Body.Priority,
		StartDate:   startDate,
		DueDate:     dueDate,
		Color:       input.Body.Color,
	})
	if err != nil {
		return nil, projectError(err, "failed to create project")
	}

	return &CreateProjectOutput{Body: fromService(project)}, nil
}
