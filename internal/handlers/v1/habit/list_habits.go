package habit

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/logging"
	"github.com/nickolss/madeforyou-server/internal/service"
)

// ListHabitsInput is the Huma input for listing habits.
type ListHabitsInput struct {
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// ListHabitsResponseBody is the response body for listing habits.
type ListHabitsResponseBody struct {
	Habits []Habit `json:"habits" doc:"The user's habits, newest first"`
}

// ListHabitsOutput is the Huma output for listing habits.
type ListHabitsOutput struct {
	Body ListHabitsResponseBody
}

// habitLister is the interface for listing habits.
type habitLister interface {
	ListHabits(ctx context.Context, userID string) ([]*service.Habit, error)
}

// ListHabitsHandler handles GET /v1/habits.
type ListHabitsHandler struct {
	HabitService habitLister
}

// NewListHabitsHandler creates a new ListHabitsHandler.
func NewListHabitsHandler(svc habitLister) *ListHabitsHandler {
	return &ListHabitsHandler{HabitService: svc}
}

// Register registers the list habits endpoint with the Huma API.
func (h *ListHabitsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-habits",
		Method:      http.MethodGet,
		Path:        "/v1/habits",
		Summary:     "List habits",
		Description: "Returns the user's habits, newest first.",
		Tags:        []string{"Habits"},
	}, h.handle)
}

func (h *ListHabitsHandler) handle(ctx context.Context, input *ListHabitsInput) (*ListHabitsOutput, error) {
	logData := logging.GetLogData(ctx)

	habits, err := h.HabitService.ListHabits(ctx, input.UserID)
	if err != nil {
		return nil, habitError(err, "failed to list habits")
	}

	if logData != nil {
		logData.AddData("habitCount", len(habits))
	}

	resp := ListHabitsResponseBody{Habits: make([]Habit, len(habits))}
	for i, habit := range habits {
		resp.Habits[i] = fromService(habit)
	}

	return &ListHabitsOutput{Body: resp}, nil
}
