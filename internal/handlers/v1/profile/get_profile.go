package profile

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// GetProfileInput is the Huma input for fetching the profile.
type GetProfileInput struct {
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// GetProfileOutput is the Huma output for fetching the profile.
type GetProfileOutput struct {
	Body Profile
}

// profileGetter is the interface for fetching profiles.
type profileGetter interface {
	GetProfile(ctx context.Context, id string) (*service.Profile, error)
}

// GetProfileHandler handles GET /v1/profile.
type GetProfileHandler struct {
	ProfileService profileGetter
}

// NewGetProfileHandler creates a new GetProfileHandler.
func NewGetProfileHandler(svc profileGetter) *GetProfileHandler {
	return &GetProfileHandler{ProfileService: svc}
}

// Register registers the get profile endpoint with the Huma API.
func (h *GetProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/v1/profile",
		Summary:     "Get profile",
		Description: "Returns the authenticated user's profile.",
		Tags:        []string{"Profile"},
	}, h.handle)
}

func (h *GetProfileHandler) handle(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	profile, err := h.ProfileService.GetProfile(ctx, input.UserID)
	if err != nil {
		return nil, profileError(err, "failed to get profile")
	}
	return &GetProfileOutput{Body: fromService(profile)}, nil
}
