package service

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/nickolss/madeforyou-server/internal/storage"
)

// Profile represents a user profile in the service layer.
type Profile struct {
	ID          string
	Email       string
	DisplayName string
	FirstName   string
	LastName    string
	AvatarURL   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProfileSync carries the identity fields forwarded from the auth provider.
type ProfileSync struct {
	ID          string
	Email       string
	DisplayName string
}

// ProfilePatch carries a partial profile update. Unset fields keep their
// current values.
type ProfilePatch struct {
	Email       omit.Val[string]
	DisplayName omit.Val[string]
	FirstName   omit.Val[string]
	LastName    omit.Val[string]
	AvatarURL   omit.Val[string]
}

// ProfileService handles user profile business logic.
type ProfileService struct {
	storage *storage.Storage
}

// NewProfileService creates a new ProfileService.
func NewProfileService(store *storage.Storage) *ProfileService {
	return &ProfileService{storage: store}
}

// GetProfile returns the profile for the given external uid.
func (s *ProfileService) GetProfile(ctx context.Context, id string) (*Profile, error) {
	row, err := s.storage.Profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return profileFromRow(row), nil
}

// SyncProfile makes sure a profile row exists for the authenticated user.
// The first sync after sign-up creates the row; later syncs return the
// stored profile untouched so local edits survive.
func (s *ProfileService) SyncProfile(ctx context.Context, sync ProfileSync) (*Profile, error) {
	row, err := s.storage.Profiles.FindByID(ctx, sync.ID)
	if err == nil {
		return profileFromRow(row), nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	created, err := s.storage.Profiles.Insert(ctx, &storage.ProfileCreate{
		ID:          sync.ID,
		Email:       sync.Email,
		DisplayName: sync.DisplayName,
	})
	if err != nil {
		return nil, err
	}
	return profileFromRow(created), nil
}

// UpdateProfile applies a partial update to a profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*Profile, error) {
	row, err := s.storage.Profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if email, ok := patch.Email.Get(); ok {
		row.Email = email
	}
	if displayName, ok := patch.DisplayName.Get(); ok {
		row.DisplayName = displayName
	}
	if firstName, ok := patch.FirstName.Get(); ok {
		row.FirstName = firstName
	}
	if lastName, ok := patch.LastName.Get(); ok {
		row.LastName = lastName
	}
	if avatarURL, ok := patch.AvatarURL.Get(); ok {
		row.AvatarURL = avatarURL
	}

	if err := s.storage.Profiles.Update(ctx, row); err != nil {
		return nil, err
	}
	return profileFromRow(row), nil
}

func profileFromRow(row *storage.Profile) *Profile {
	return &Profile{
		ID:          row.ID,
		Email:       row.Email,
		DisplayName: row.DisplayName,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		AvatarURL:   row.AvatarURL,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
