package project

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/logging"
	"github.com/nickolss/madeforyou-server/internal/service"
)

// ListProjectsInput is the Huma input for listing projects.
type ListProjectsInput struct {
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// ListProjectsResponseBody is the response body for listing projects.
type ListProjectsResponseBody struct {
	Projects []Project `json:"projects" doc:"The user's projects, newest first"`
}

// ListProjectsOutput is the Huma output for listing projects.
type ListProjectsOutput struct {
	Body ListProjectsResponseBody
}

// projectLister is the interface for listing projects.
type projectLister interface {
	ListProjects(ctx context.Context, userID string) ([]*service.Project, error)
}

// ListProjectsHandler handles GET /v1/projects.
type ListProjectsHandler struct {
	ProjectService projectLister
}

// NewListProjectsHandler creates a new ListProjectsHandler.
func NewListProjectsHandler(svc projectLister) *ListProjectsHandler {
	return &ListProjectsHandler{ProjectService: svc}
}

// Register registers the list projects endpoint with the Huma API.
func (h *ListProjectsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-projects",
		Method:      http.MethodGet,
		Path:        "/v1/projects",
		Summary:     "List projects",
		Description: "Returns the user's projects, newest first.",
		Tags:        []string{"Projects"},
	}, h.handle)
}

func (h *ListProjectsHandler) handle(ctx context.Context, input *ListProjectsInput) (*ListProjectsOutput, error) {
	logData := logging.GetLogData(ctx)

	projects, err := h.ProjectService.ListProjects(ctx, input.UserID)
	if err != nil {
		return nil, projectError(err, "failed to list projects")
	}

	if logData != nil {
		logData.AddData("projectCount", len(projects))
	}

	resp := ListProjectsResponseBody{Projects: make([]Project, len(projects))}
	for i, p := range projects {
		resp.Projects[i] = fromService(p)
	}

	return &ListProjectsOutput{Body: resp}, nil
}
