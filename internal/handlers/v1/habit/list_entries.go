package habit

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// ListEntriesInput is the Huma input for listing habit entries.
type ListEntriesInput struct {
	UserID  string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	HabitID int64  `query:"habitId" doc:"Only return entries for this habit; 0 means all habits"`
	Start   string `query:"start" doc:"Earliest calendar date to include"`
	End     string `query:"end" doc:"Latest calendar date to include"`
}

// ListEntriesResponseBody is the response body for listing habit entries.
type ListEntriesResponseBody struct {
	Entries []HabitEntry `json:"entries" doc:"Check-ins, most recent date first"`
}

// ListEntriesOutput is the Huma output for listing habit entries.
type ListEntriesOutput struct {
	Body ListEntriesResponseBody
}

// entryLister is the interface for listing habit entries.
type entryLister interface {
	ListEntries(ctx context.Context, userID string, filter service.HabitEntryFilter) ([]*service.HabitEntry, error)
}

// ListEntriesHandler handles GET /v1/habits/entries.
type ListEntriesHandler struct {
	HabitService entryLister
}

// NewListEntriesHandler creates a new ListEntriesHandler.
func NewListEntriesHandler(svc entryLister) *ListEntriesHandler {
	return &ListEntriesHandler{HabitService: svc}
}

// Register registers the list entries endpoint with the Huma API.
func (h *ListEntriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-habit-entries",
		Method:      http.MethodGet,
		Path:        "/v1/habits/entries",
		Summary:     "List habit entries",
		Description: "Returns check-ins, optionally narrowed to one habit and a date range.",
		Tags:        []string{"Habits"},
	}, h.handle)
}

// parseListEntriesInput parses the optional filter parameters.
func parseListEntriesInput(input *ListEntriesInput) (service.HabitEntryFilter, error) {
	var filter service.HabitEntryFilter
	if input.HabitID != 0 {
		filter.HabitID = &input.HabitID
	}
	if input.Start != "" {
		start, err := time.Parse(dateLayout, input.Start)
		if err != nil {
			return service.HabitEntryFilter{}, huma.NewError(http.StatusBadRequest, "invalid start", err)
		}
		filter.Start = &start
	}
	if input.End != "" {
		end, err := time.Parse(dateLayout, input.End)
		if err != nil {
			return service.HabitEntryFilter{}, huma.NewError(http.StatusBadRequest, "invalid end", err)
		}
		filter.End = &end
	}
	return filter, nil
}

func (h *ListEntriesHandler) handle(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	filter, err := parseListEntriesInput(input)
	if err != nil {
		return nil, err
	}

	entries, err := h.HabitService.ListEntries(ctx, input.UserID, filter)
	if err != nil {
		return nil, entryError(err, "failed to list habit entries")
	}

	resp := ListEntriesResponseBody{Entries: make([]HabitEntry, len(entries))}
	for i, entry := range entries {
		resp.Entries[i] = entryFromService(entry)
	}

	return &ListEntriesOutput{Body: resp}, nil
}
