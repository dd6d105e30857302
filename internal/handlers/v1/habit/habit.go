package habit

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

const dateLayout = "2006-01-02"

// Habit is the API response model for a habit.
type Habit struct {
	ID          int64  `json:"id" doc:"Habit id"`
	Name        string `json:"name" doc:"Display name"`
	Description string `json:"description" doc:"What the habit is about"`
	Color       string `json:"color" doc:"Display color"`
	Frequency   string `json:"frequency" doc:"Cadence label, e.g. daily or weekly"`
	TargetDays  int    `json:"targetDays" doc:"Target days per period"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt   string `json:"updatedAt" doc:"RFC3339 last update time"`
}

// HabitEntry is the API response model for one day's check-in.
type HabitEntry struct {
	ID        int64  `json:"id" doc:"Entry id"`
	HabitID   int64  `json:"habitId" doc:"Habit id"`
	Date      string `json:"date" doc:"Calendar date of the check-in"`
	Completed bool   `json:"completed" doc:"Whether the habit was done that day"`
	Notes     string `json:"notes" doc:"Free-form notes"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(habit *service.Habit) Habit {
	return Habit{
		ID:          habit.ID,
		Name:        habit.Name,
		Description: habit.Description,
		Color:       habit.Color,
		Frequency:   habit.Frequency,
		TargetDays:  habit.TargetDays,
		CreatedAt:   habit.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   habit.UpdatedAt.Format(time.RFC3339),
	}
}

func entryFromService(entry *service.HabitEntry) HabitEntry {
	return HabitEntry{
		ID:        entry.ID,
		HabitID:   entry.HabitID,
		Date:      entry.Date.Format(dateLayout),
		Completed: entry.Completed,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
}

func habitError(err error, msg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return huma.NewError(http.StatusNotFound, "habit not found")
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}

func entryError(err error, msg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return huma.NewError(http.StatusNotFound, "habit entry not found")
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}
