package profile

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// SyncProfileBody is the request body for syncing the profile.
type SyncProfileBody struct {
	ID          string `json:"id" required:"true" doc:"External auth uid"`
	Email       string `json:"email" required:"true" doc:"Email address from the auth provider"`
	DisplayName string `json:"displayName" doc:"Display name from the auth provider"`
}

// SyncProfileInput is the Huma input for syncing the profile.
type SyncProfileInput struct {
	Body SyncProfileBody
}

// SyncProfileOutput is the Huma output for syncing the profile.
type SyncProfileOutput struct {
	Body Profile
}

// profileSyncer is the interface for syncing profiles.
type profileSyncer interface {
	SyncProfile(ctx context.Context, sync service.ProfileSync) (*service.Profile, error)
}

// SyncProfileHandler handles POST /v1/profile/sync.
type SyncProfileHandler struct {
	ProfileService profileSyncer
}

// NewSyncProfileHandler creates a new SyncProfileHandler.
func NewSyncProfileHandler(svc profileSyncer) *SyncProfileHandler {
	return &SyncProfileHandler{ProfileService: svc}
}

// Register registers the sync profile endpoint with the Huma API.
func (h *SyncProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "sync-profile",
		Method:      http.MethodPost,
		Path:        "/v1/profile/sync",
		Summary:     "Sync profile",
		Description: "Ensures a profile row exists after sign-in. The first sync creates the row; later syncs return the stored profile unchanged.",
		Tags:        []string{"Profile"},
	}, h.handle)
}

func (h *SyncProfileHandler) handle(ctx context.Context, input *SyncProfileInput) (*SyncProfileOutput, error) {
	profile, err := h.ProfileService.SyncProfile(ctx, service.ProfileSync{
		ID:          input.Body.ID,
		Email:       input.Body.Email,
		DisplayName: input.Body.DisplayName,
	})
	if err != nil {
		return nil, profileError(err, "failed to sync profile")
	}
	return &SyncProfileOutput{Body: fromService(profile)}, nil
}
