package habit

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// GetHabitInput is the Huma input for fetching a single habit.
type GetHabitInput struct {
	ID     int64  `path:"id" doc:"Habit id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// GetHabitOutput is the Huma output for fetching a single habit.
type GetHabitOutput struct {
	Body Habit
}

// habitGetter is the interface for fetching a single habit.
type habitGetter interface {
	GetHabit(ctx context.Context, userID string, id int64) (*service.Habit, error)
}

// GetHabitHandler handles GET /v1/habits/{id}.
type GetHabitHandler struct {
	HabitService habitGetter
}

// NewGetHabitHandler creates a new GetHabitHandler.
func NewGetHabitHandler(svc habitGetter) *GetHabitHandler {
	return &GetHabitHandler{HabitService: svc}
}

// Register registers the get habit endpoint with the Huma API.
func (h *GetHabitHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-habit",
		Method:      http.MethodGet,
		Path:        "/v1/habits/{id}",
		Summary:     "Get habit",
		Description: "Returns a single habit by id.",
		Tags:        []string{"Habits"},
	}, h.handle)
}

func (h *GetHabitHandler) handle(ctx context.Context, input *GetHabitInput) (*GetHabitOutput, error) {
	habit, err := h.HabitService.GetHabit(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, habitError(err, "failed to get habit")
	}
	return &GetHabitOutput{Body: fromService(habit)}, nil
}
