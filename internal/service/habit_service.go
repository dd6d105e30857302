package service

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/nickolss/madeforyou-server/internal/storage"
)

// Habit represents a habit in the service layer.
type Habit struct {
	ID          int64
	Name        string
	Description string
	Color       string
	Frequency   string
	TargetDays  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HabitCreate carries the fields for a new habit.
type HabitCreate struct {
	Name        string
	Description string
	Color       string
	Frequency   string
	TargetDays  int
}

// HabitPatch carries a partial habit update. Unset fields keep their
// current values.
type HabitPatch struct {
	Name        omit.Val[string]
	Description omit.Val[string]
	Color       omit.Val[string]
	Frequency   omit.Val[string]
	TargetDays  omit.Val[int]
}

// HabitEntry represents one day's check-in in the service layer.
type HabitEntry struct {
	ID        int64
	HabitID   int64
	Date      time.Time
	Completed bool
	Notes     string
	CreatedAt time.Time
}

// HabitEntryUpsert carries the fields for recording a check-in. Writes are
// keyed by (habit, date): a second upsert for the same day overwrites the
// first instead of adding a row.
type HabitEntryUpsert struct {
	HabitID   int64
	Date      time.Time
	Completed bool
	Notes     string
}

// HabitEntryFilter narrows entry listing to one habit and/or a date range.
type HabitEntryFilter struct {
	HabitID *int64
	Start   *time.Time
	End     *time.Time
}

// HabitService handles habit and habit entry business logic.
type HabitService struct {
	storage *storage.Storage
}

// NewHabitService creates a new HabitService.
func NewHabitService(store *storage.Storage) *HabitService {
	return &HabitService{storage: store}
}

// ListHabits returns all of the user's habits, newest first.
func (s *HabitService) ListHabits(ctx context.Context, userID string) ([]*Habit, error) {
	rows, err := s.storage.Habits.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	habits := make([]*Habit, len(rows))
	for i, row := range rows {
		habits[i] = habitFromRow(row)
	}
	return habits, nil
}

// GetHabit returns a single habit by id.
func (s *HabitService) GetHabit(ctx context.Context, userID string, id int64) (*Habit, error) {
	row, err := s.storage.Habits.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return habitFromRow(row), nil
}

// CreateHabit creates a new habit.
func (s *HabitService) CreateHabit(ctx context.Context, userID string, create HabitCreate) (*Habit, error) {
	row, err := s.storage.Habits.Insert(ctx, &storage.HabitCreate{
		UserID:      userID,
		Name:        create.Name,
		Description: create.Description,
		Color:       create.Color,
		Frequency:   create.Frequency,
		TargetDays:  create.TargetDays,
	})
	if err != nil {
		return nil, err
	}
	return habitFromRow(row), nil
}

// UpdateHabit applies a partial update to a habit.
func (s *HabitService) UpdateHabit(ctx context.Context, userID string, id int64, patch HabitPatch) (*Habit, error) {
	row, err := s.storage.Habits.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if name, ok := patch.Name.Get(); ok {
		row.Name = name
	}
	if description, ok := patch.Description.Get(); ok {
		row.Description = description
	}
	if color, ok := patch.Color.Get(); ok {
		row.Color = color
	}
	if frequency, ok := patch.Frequency.Get(); ok {
		row.Frequency = frequency
	}
	if targetDays, ok := patch.TargetDays.Get(); ok {
		row.TargetDays = targetDays
	}

	if err := s.storage.Habits.Update(ctx, row); err != nil {
		return nil, err
	}
	return habitFromRow(row), nil
}

// DeleteHabit removes a habit and, through the schema's cascade, its
// entries.
func (s *HabitService) DeleteHabit(ctx context.Context, userID string, id int64) error {
	return s.storage.Habits.Delete(ctx, userID, id)
}

// ListEntries returns the user's habit entries matching the filter, most
// recent date first.
func (s *HabitService) ListEntries(ctx context.Context, userID string, filter HabitEntryFilter) ([]*HabitEntry, error) {
	rows, err := s.storage.Habits.ListEntries(ctx, userID, &storage.HabitEntryFilter{
		HabitID: filter.HabitID,
		Start:   filter.Start,
		End:     filter.End,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*HabitEntry, len(rows))
	for i, row := range rows {
		entries[i] = habitEntryFromRow(row)
	}
	return entries, nil
}

// UpsertEntry records a check-in for a habit on a given date. If an entry
// for that day already exists its completed flag and notes are replaced.
func (s *HabitService) UpsertEntry(ctx context.Context, userID string, upsert HabitEntryUpsert) (*HabitEntry, error) {
	if _, err := s.storage.Habits.FindByID(ctx, userID, upsert.HabitID); err != nil {
		return nil, err
	}

	existing, err := s.storage.Habits.FindEntryByDate(ctx, userID, upsert.HabitID, upsert.Date)
	switch {
	case err == nil:
		existing.Completed = upsert.Completed
		existing.Notes = upsert.Notes
		if err := s.storage.Habits.UpdateEntry(ctx, existing); err != nil {
			return nil, err
		}
		return habitEntryFromRow(existing), nil
	case errors.Is(err, storage.ErrNotFound):
		row, err := s.storage.Habits.InsertEntry(ctx, &storage.HabitEntryCreate{
			UserID:    userID,
			HabitID:   upsert.HabitID,
			Date:      upsert.Date,
			Completed: upsert.Completed,
			Notes:     upsert.Notes,
		})
		if err != nil {
			return nil, err
		}
		return habitEntryFromRow(row), nil
	default:
		return nil, err
	}
}

// DeleteEntry removes a single check-in.
func (s *HabitService) DeleteEntry(ctx context.Context, userID string, id int64) error {
	return s.storage.Habits.DeleteEntry(ctx, userID, id)
}

func habitFromRow(row *storage.Habit) *Habit {
	return &Habit{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Color:       row.Color,
		Frequency:   row.Frequency,
		TargetDays:  row.TargetDays,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func habitEntryFromRow(row *storage.HabitEntry) *HabitEntry {
	return &HabitEntry{
		ID:        row.ID,
		HabitID:   row.HabitID,
		Date:      row.Date,
		Completed: row.Completed,
		Notes:     row.Notes,
		CreatedAt: row.CreatedAt,
	}
}
