package habit

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// UpdateHabitBody is the request body for updating a habit.
// Omitted fields keep their current values.
type UpdateHabitBody struct {
	Name        *string `json:"name,omitempty" minLength:"1" doc:"Display name"`
	Description *string `json:"description,omitempty" doc:"What the habit is about"`
	Color       *string `json:"color,omitempty" doc:"Display color"`
	Frequency   *string `json:"frequency,omitempty" doc:"Cadence label"`
	TargetDays  *int    `json:"targetDays,omitempty" minimum:"0" doc:"Target days per period"`
}

// UpdateHabitInput is the Huma input for updating a habit.
type UpdateHabitInput struct {
	ID     int64  `path:"id" doc:"Habit id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	Body   UpdateHabitBody
}

// UpdateHabitOutput is the Huma output for updating a habit.
type UpdateHabitOutput struct {
	Body Habit
}

// habitUpdater is the interface for updating habits.
type habitUpdater interface {
	UpdateHabit(ctx context.Context, userID string, id int64, patch service.HabitPatch) (*service.Habit, error)
}

// UpdateHabitHandler handles PATCH /v1/habits/{id}.
type UpdateHabitHandler struct {
	HabitService habitUpdater
}

// NewUpdateHabitHandler creates a new UpdateHabitHandler.
func NewUpdateHabitHandler(svc habitUpdater) *UpdateHabitHandler {
	return &UpdateHabitHandler{HabitService: svc}
}

// Register registers the update habit endpoint with the Huma API.
func (h *UpdateHabitHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-habit",
		Method:      http.MethodPatch,
		Path:        "/v1/habits/{id}",
		Summary:     "Update habit",
		Description: "Applies a partial update to a habit.",
		Tags:        []string{"Habits"},
	}, h.handle)
}

func (h *UpdateHabitHandler) handle(ctx context.Context, input *UpdateHabitInput) (*UpdateHabitOutput, error) {
	habit, err := h.HabitService.UpdateHabit(ctx, input.UserID, input.ID, service.HabitPatch{
		Name:        omit.FromPtr(input.Body.Name),
		Description: omit.FromPtr(input.Body.Description),
		Color:       omit.FromPtr(input.Body.Color),
		Frequency:   omit.FromPtr(input.Body.Frequency),
		TargetDays:  omit.FromPtr(input.Body.TargetDays),
	})
	if err != nil {
		return nil, habitError(err, "failed to update habit")
	}

	return &UpdateHabitOutput{Body: fromService(habit)}, nil
}
