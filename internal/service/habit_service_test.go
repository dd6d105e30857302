package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nickolss/madeforyou-server/internal/storage"
)

func newHabitTestService(t *testing.T) (*HabitService, *mockHabitTable) {
	t.Helper()
	habits := &mockHabitTable{}
	return NewHabitService(&storage.Storage{Habits: habits}), habits
}

func entryDate() time.Time {
	return time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
}

func TestUpsertEntry_FirstCheckInInserts(t *testing.T) {
	svc, habits := newHabitTestService(t)

	habits.On("FindByID", mock.Anything, testUser, int64(3)).
		Return(&storage.Habit{ID: 3, UserID: testUser, Name: "Run"}, nil)
	habits.On("FindEntryByDate", mock.Anything, testUser, int64(3), entryDate()).
		Return(nil, storage.ErrNotFound)
	habits.On("InsertEntry", mock.Anything, mock.MatchedBy(func(c *storage.HabitEntryCreate) bool {
		return c.UserID == testUser && c.HabitID == 3 && c.Completed && c.Notes == "5k"
	})).Return(&storage.HabitEntry{
		ID:        10,
		UserID:    testUser,
		HabitID:   3,
		Date:      entryDate(),
		Completed: true,
		Notes:     "5k",
	}, nil)

	entry, err := svc.UpsertEntry(context.Background(), testUser, HabitEntryUpsert{
		HabitID:   3,
		Date:      entryDate(),
		Completed: true,
		Notes:     "5k",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), entry.ID)
	habits.AssertExpectations(t)
}

func TestUpsertEntry_SameDayOverwrites(t *testing.T) {
	svc, habits := newHabitTestService(t)

	habits.On("FindByID", mock.Anything, testUser, int64(3)).
		Return(&storage.Habit{ID: 3, UserID: testUser, Name: "Run"}, nil)
	habits.On("FindEntryByDate", mock.Anything, testUser, int64(3), entryDate()).
		Return(&storage.HabitEntry{
			ID:        10,
			UserID:    testUser,
			HabitID:   3,
			Date:      entryDate(),
			Completed: true,
			Notes:     "5k",
		}, nil)
	habits.On("UpdateEntry", mock.Anything, mock.MatchedBy(func(e *storage.HabitEntry) bool {
		return e.ID == 10 && !e.Completed && e.Notes == "skipped, knee pain"
	})).Return(nil)

	entry, err := svc.UpsertEntry(context.Background(), testUser, HabitEntryUpsert{
		HabitID:   3,
		Date:      entryDate(),
		Completed: false,
		Notes:     "skipped, knee pain",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), entry.ID, "same row, not a new one")
	assert.False(t, entry.Completed)
	habits.AssertNotCalled(t, "InsertEntry", mock.Anything, mock.Anything)
}

func TestUpsertEntry_UnknownHabit(t *testing.T) {
	svc, habits := newHabitTestService(t)

	habits.On("FindByID", mock.Anything, testUser, int64(99)).
		Return(nil, storage.ErrNotFound)

	entry, err := svc.UpsertEntry(context.Background(), testUser, HabitEntryUpsert{
		HabitID: 99,
		Date:    entryDate(),
	})

	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Nil(t, entry)
	habits.AssertNotCalled(t, "InsertEntry", mock.Anything, mock.Anything)
}

func TestListEntries_PassesFilterThrough(t *testing.T) {
	svc, habits := newHabitTestService(t)

	habitID := int64(3)
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	habits.On("ListEntries", mock.Anything, testUser, mock.MatchedBy(func(f *storage.HabitEntryFilter) bool {
		return f.HabitID != nil && *f.HabitID == habitID && f.Start != nil && f.Start.Equal(start) && f.End == nil
	})).Return([]*storage.HabitEntry{
		{ID: 10, UserID: testUser, HabitID: habitID, Date: entryDate(), Completed: true},
	}, nil)

	entries, err := svc.ListEntries(context.Background(), testUser, HabitEntryFilter{
		HabitID: &habitID,
		Start:   &start,
	})

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, habitID, entries[0].HabitID)
}
