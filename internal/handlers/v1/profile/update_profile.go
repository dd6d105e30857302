package profile

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// UpdateProfileBody is the request body for updating the profile. Only
// present fields are applied.
type UpdateProfileBody struct {
	Email       *string `json:"email,omitempty" doc:"Email address"`
	DisplayName *string `json:"displayName,omitempty" doc:"Display name"`
	FirstName   *string `json:"firstName,omitempty" doc:"First name"`
	LastName    *string `json:"lastName,omitempty" doc:"Last name"`
	AvatarURL   *string `json:"avatarUrl,omitempty" doc:"Avatar image URL"`
}

// UpdateProfileInput is the Huma input for updating the profile.
type UpdateProfileInput struct {
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	Body   UpdateProfileBody
}

// UpdateProfileOutput is the Huma output for updating the profile.
type UpdateProfileOutput struct {
	Body Profile
}

// profileUpdater is the interface for updating profiles.
type profileUpdater interface {
	UpdateProfile(ctx context.Context, id string, patch service.ProfilePatch) (*service.Profile, error)
}

// UpdateProfileHandler handles PATCH /v1/profile.
type UpdateProfileHandler struct {
	ProfileService profileUpdater
}

// NewUpdateProfileHandler creates a new UpdateProfileHandler.
func NewUpdateProfileHandler(svc profileUpdater) *UpdateProfileHandler {
	return &UpdateProfileHandler{ProfileService: svc}
}

// Register registers the update profile endpoint with the Huma API.
func (h *UpdateProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPatch,
		Path:        "/v1/profile",
		Summary:     "Update profile",
		Description: "Applies a partial update to the authenticated user's profile.",
		Tags:        []string{"Profile"},
	}, h.handle)
}

// parseUpdateProfileInput builds the patch from the fields present in the
// request body.
func parseUpdateProfileInput(input *UpdateProfileInput) service.ProfilePatch {
	return service.ProfilePatch{
		Email:       omit.FromPtr(input.Body.Email),
		DisplayName: omit.FromPtr(input.Body.DisplayName),
		FirstName:   omit.FromPtr(input.Body.FirstName),
		LastName:    omit.FromPtr(input.Body.LastName),
		AvatarURL:   omit.FromPtr(input.Body.AvatarURL),
	}
}

func (h *UpdateProfileHandler) handle(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	profile, err := h.ProfileService.UpdateProfile(ctx, input.UserID, parseUpdateProfileInput(input))
	if err != nil {
		return nil, profileError(err, "failed to update profile")
	}
	return &UpdateProfileOutput{Body: fromService(profile)}, nil
}
