package service

import (
	"context"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nickolss/madeforyou-server/internal/storage"
)

func newProjectTestService(t *testing.T) (*ProjectService, *mockProjectTable) {
	t.Helper()
	projects := &mockProjectTable{}
	return NewProjectService(&storage.Storage{Projects: projects}), projects
}

func TestCreateProject_ProgressStartsAtZero(t *testing.T) {
	svc, projects := newProjectTestService(t)

	projects.On("Insert", mock.Anything, mock.MatchedBy(func(c *storage.ProjectCreate) bool {
		return c.UserID == testUser && c.Name == "Garden" && c.Progress == 0
	})).Return(&storage.Project{
		ID:     1,
		UserID: testUser,
		Name:   "Garden",
	}, nil)

	project, err := svc.CreateProject(context.Background(), testUser, ProjectCreate{
		Name:   "Garden",
		Status: "active",
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, project.Progress)
}

func TestUpdateProject_ProgressClamped(t *testing.T) {
	tests := []struct {
		name     string
		progress int
		want     int
	}{
		{"over the top", 140, 100},
		{"below zero", -10, 0},
		{"in range", 55, 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, projects := newProjectTestService(t)

			projects.On("FindByID", mock.Anything, testUser, int64(1)).Return(&storage.Project{
				ID:     1,
				UserID: testUser,
				Name:   "Garden",
			}, nil)
			projects.On("Update", mock.Anything, mock.MatchedBy(func(p *storage.Project) bool {
				return p.Progress == tt.want
			})).Return(nil)

			project, err := svc.UpdateProject(context.Background(), testUser, 1, ProjectPatch{
				Progress: omit.From(tt.progress),
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.want, project.Progress)
		})
	}
}

func TestUpdateProject_PartialPatch(t *testing.T) {
	svc, projects := newProjectTestService(t)

	projects.On("FindByID", mock.Anything, testUser, int64(1)).Return(&storage.Project{
		ID:       1,
		UserID:   testUser,
		Name:     "Garden",
		Status:   "active",
		Priority: "low",
	}, nil)
	projects.On("Update", mock.Anything, mock.MatchedBy(func(p *storage.Project) bool {
		return p.Status == "completed" && p.Name == "Garden" && p.Priority == "low"
	})).Return(nil)

	project, err := svc.UpdateProject(context.Background(), testUser, 1, ProjectPatch{
		Status: omit.From("completed"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "completed", project.Status)
	assert.Equal(t, "Garden", project.Name, "unpatched field kept")
}
