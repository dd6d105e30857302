package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nickolss/madeforyou-server/internal/storage"
)

func newProfileTestService(t *testing.T) (*ProfileService, *mockProfileTable) {
	t.Helper()
	profiles := &mockProfileTable{}
	return NewProfileService(&storage.Storage{Profiles: profiles}), profiles
}

func TestSyncProfile_FirstSyncCreates(t *testing.T) {
	svc, profiles := newProfileTestService(t)

	profiles.On("FindByID", mock.Anything, "uid-new").
		Return(nil, storage.ErrNotFound)
	profiles.On("Insert", mock.Anything, mock.MatchedBy(func(c *storage.ProfileCreate) bool {
		return c.ID == "uid-new" && c.Email == "new@example.com" && c.DisplayName == "New User"
	})).Return(&storage.Profile{
		ID:          "uid-new",
		Email:       "new@example.com",
		DisplayName: "New User",
	}, nil)

	profile, err := svc.SyncProfile(context.Background(), ProfileSync{
		ID:          "uid-new",
		Email:       "new@example.com",
		DisplayName: "New User",
	})

	assert.NoError(t, err)
	assert.Equal(t, "uid-new", profile.ID)
	profiles.AssertExpectations(t)
}

func TestSyncProfile_ExistingRowUntouched(t *testing.T) {
	svc, profiles := newProfileTestService(t)

	profiles.On("FindByID", mock.Anything, testUser).Return(&storage.Profile{
		ID:          testUser,
		Email:       "old@example.com",
		DisplayName: "Locally Edited",
	}, nil)

	profile, err := svc.SyncProfile(context.Background(), ProfileSync{
		ID:          testUser,
		Email:       "fresh@example.com",
		DisplayName: "Provider Name",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Locally Edited", profile.DisplayName, "local edits survive re-sync")
	profiles.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	profiles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSyncProfile_LookupError(t *testing.T) {
	svc, profiles := newProfileTestService(t)

	profiles.On("FindByID", mock.Anything, testUser).
		Return(nil, errors.New("database unavailable"))

	profile, err := svc.SyncProfile(context.Background(), ProfileSync{ID: testUser})

	assert.Error(t, err)
	assert.Nil(t, profile)
	profiles.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestUpdateProfile_PartialPatch(t *testing.T) {
	svc, profiles := newProfileTestService(t)

	profiles.On("FindByID", mock.Anything, testUser).Return(&storage.Profile{
		ID:          testUser,
		Email:       "me@example.com",
		DisplayName: "Me",
	}, nil)
	profiles.On("Update", mock.Anything, mock.MatchedBy(func(p *storage.Profile) bool {
		return p.FirstName == "Ada" && p.Email == "me@example.com"
	})).Return(nil)

	profile, err := svc.UpdateProfile(context.Background(), testUser, ProfilePatch{
		FirstName: omit.From("Ada"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Equal(t, "me@example.com", profile.Email, "unpatched field kept")
}
