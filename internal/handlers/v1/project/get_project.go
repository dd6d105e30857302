package project

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// GetProjectInput is the Huma input for fetching a single project.
type GetProjectInput struct {
	ID     int64  `path:"id" doc:"Project id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// GetProjectOutput is the Huma output for fetching a single project.
type GetProjectOutput struct {
	Body Project
}

// projectGetter is the interface for fetching a single project.
type projectGetter interface {
	GetProject(ctx context.Context, userID string, id int64) (*service.Project, error)
}

// GetProjectHandler handles GET /v1/projects/{id}.
type GetProjectHandler struct {
	ProjectService projectGetter
}

// NewGetProjectHandler creates a new GetProjectHandler.
func NewGetProjectHandler(svc projectGetter) *GetProjectHandler {
	return &GetProjectHandler{ProjectService: svc}
}

// Register registers the get project endpoint with the Huma API.
func (h *GetProjectHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-project",
		Method:      http.MethodGet,
		Path:        "/v1/projects/{id}",
		Summary:     "Get project",
		Description: "Returns a single project by id.",
		Tags:        []string{"Projects"},
	}, h.handle)
}

func (h *GetProjectHandler) handle(ctx context.Context, input *GetProjectInput) (*GetProjectOutput, error) {
	project, err := h.ProjectService.GetProject(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, projectError(err, "failed to get project")
	}
	return &GetProjectOutput{Body: fromService(project)}, nil
}
