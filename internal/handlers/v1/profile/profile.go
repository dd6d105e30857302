package profile

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

// Profile is the API response model for a user profile.
type Profile struct {
	ID          string `json:"id" doc:"External auth uid"`
	Email       string `json:"email" doc:"Email address"`
	DisplayName string `json:"displayName" doc:"Display name"`
	FirstName   string `json:"firstName" doc:"First name"`
	LastName    string `json:"lastName" doc:"Last name"`
	AvatarURL   string `json:"avatarUrl" doc:"Avatar image URL"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt   string `json:"updatedAt" doc:"RFC3339 last update time"`
}

func fromService(profile *service.Profile) Profile {
	return Profile{
		ID:          profile.ID,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		AvatarURL:   profile.AvatarURL,
		CreatedAt:   profile.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   profile.UpdatedAt.Format(time.RFC3339),
	}
}

func profileError(err error, msg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return huma.NewError(http.StatusNotFound, "profile not found")
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}
