package habit

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// CreateHabitBody is the request body for creating a habit.
type CreateHabitBody struct {
	Name        string `json:"name" required:"true" minLength:"1" doc:"Display name"`
	Description string `json:"description" doc:"What the habit is about"`
	Color       string `json:"color" doc:"Display color"`
	Frequency   string `json:"frequency" doc:"Cadence label, defaults to daily"`
	TargetDays  int    `json:"targetDays" minimum:"0" doc:"Target days per period"`
}

// CreateHabitInput is the Huma input for creating a habit.
type CreateHabitInput struct {
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	Body   CreateHabitBody
}

// CreateHabitOutput is the Huma output for creating a habit.
type CreateHabitOutput struct {
	Body Habit
}

// habitCreator is the interface for creating habits.
type habitCreator interface {
	CreateHabit(ctx context.Context, userID string, create service.HabitCreate) (*service.Habit, error)
}

// CreateHabitHandler handles POST /v1/habits.
type CreateHabitHandler struct {
	HabitService habitCreator
}

// NewCreateHabitHandler creates a new CreateHabitHandler.
func NewCreateHabitHandler(svc habitCreator) *CreateHabitHandler {
	return &CreateHabitHandler{HabitService: svc}
}

// Register registers the create habit endpoint with the Huma API.
func (h *CreateHabitHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-habit",
		Method:        http.MethodPost,
		Path:          "/v1/habits",
		Summary:       "Create habit",
		Description:   "Creates a new habit.",
		Tags:          []string{"Habits"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateHabitHandler) handle(ctx context.Context, input *CreateHabitInput) (*CreateHabitOutput, error) {
	frequency := input.Body.Frequency
	if frequency == "" {
		frequency = "daily"
	}

	habit, err := h.HabitService.CreateHabit(ctx, input.UserID, service.HabitCreate{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Color:       input.Body.Color,
		Frequency:   frequency,
		TargetDays:  input.Body.TargetDays,
	})
	if err != nil {
		return nil, habitError(err, "failed to create habit")
	}

	return &CreateHabitOutput{Body: fromService(habit)}, nil
}
