package habit

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// UpsertEntryBody is the request body for recording a check-in.
type UpsertEntryBody struct {
	Date      string `json:"date" format:"date" doc:"Calendar date, defaults to today"`
	Completed bool   `json:"completed" doc:"Whether the habit was done that day"`
	Notes     string `json:"notes" doc:"Free-form notes"`
}

// UpsertEntryInput is the Huma input for recording a check-in.
type UpsertEntryInput struct {
	HabitID int64  `path:"habitId" doc:"Habit id"`
	UserID  string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	Body    UpsertEntryBody
}

// UpsertEntryOutput is the Huma output for recording a check-in.
type UpsertEntryOutput struct {
	Body HabitEntry
}

// entryUpserter is the interface for recording check-ins.
type entryUpserter interface {
	UpsertEntry(ctx context.Context, userID string, upsert service.HabitEntryUpsert) (*service.HabitEntry, error)
}

// UpsertEntryHandler handles PUT /v1/habits/{habitId}/entries.
type UpsertEntryHandler struct {
	HabitService entryUpserter
}

// NewUpsertEntryHandler creates a new UpsertEntryHandler.
func NewUpsertEntryHandler(svc entryUpserter) *UpsertEntryHandler {
	return &UpsertEntryHandler{HabitService: svc}
}

// Register registers the upsert entry endpoint with the Huma API.
func (h *UpsertEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-habit-entry",
		Method:      http.MethodPut,
		Path:        "/v1/habits/{habitId}/entries",
		Summary:     "Record habit check-in",
		Description: "Records a check-in for a date. A second check-in for the same date overwrites the first.",
		Tags:        []string{"Habits"},
	}, h.handle)
}

func (h *UpsertEntryHandler) handle(ctx context.Context, input *UpsertEntryInput) (*UpsertEntryOutput, error) {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if input.Body.Date != "" {
		parsed, err := time.Parse(dateLayout, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		date = parsed
	}

	entry, err := h.HabitService.UpsertEntry(ctx, input.UserID, service.HabitEntryUpsert{
		HabitID:   input.HabitID,
		Date:      date,
		Completed: input.Body.Completed,
		Notes:     input.Body.Notes,
	})
	if err != nil {
		return nil, habitError(err, "failed to record habit entry")
	}

	return &UpsertEntryOutput{Body: entryFromService(entry)}, nil
}
