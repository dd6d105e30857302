package project

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// DeleteProjectInput is the Huma input for deleting a project.
type DeleteProjectInput struct {
	ID     int64  `path:"id" doc:"Project id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// DeleteProjectOutput is the Huma output for deleting a project.
type DeleteProjectOutput struct{}

// projectDeleter is the interface for deleting projects.
type projectDeleter interface {
	DeleteProject(ctx context.Context, userID string, id int64) error
}

// DeleteProjectHandler handles DELETE /v1/projects/{id}.
type DeleteProjectHandler struct {
	ProjectService projectDeleter
}

// NewDeleteProjectHandler creates a new DeleteProjectHandler.
func NewDeleteProjectHandler(svc projectDeleter) *DeleteProjectHandler {
	return &DeleteProjectHandler{ProjectService: svc}
}

// Register registers the delete project endpoint with the Huma API.
func (h *DeleteProjectHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-project",
		Method:        http.MethodDelete,
		Path:          "/v1/projects/{id}",
		Summary:       "Delete project",
		Description:   "Removes a project.",
		Tags:          []string{"Projects"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteProjectHandler) handle(ctx context.Context, input *DeleteProjectInput) (*DeleteProjectOutput, error) {
	if err := h.ProjectService.DeleteProject(ctx, input.UserID, input.ID); err != nil {
		return nil, projectError(err, "failed to delete project")
	}
	return &DeleteProjectOutput{}, nil
}
