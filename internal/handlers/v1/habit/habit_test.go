package habit

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nickolss/madeforyou-server/internal/service"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

type mockHabitService struct {
	mock.Mock
}

func (m *mockHabitService) ListHabits(ctx context.Context, userID string) ([]*service.Habit, error) {
	args := m.Called(ctx, userID)
	var rows []*service.Habit
	if v := args.Get(0); v != nil {
		rows = v.([]*service.Habit)
	}
	return rows, args.Error(1)
}

func (m *mockHabitService) GetHabit(ctx context.Context, userID string, id int64) (*service.Habit, error) {
	args := m.Called(ctx, userID, id)
	var row *service.Habit
	if v := args.Get(0); v != nil {
		row = v.(*service.Habit)
	}
	return row, args.Error(1)
}

func (m *mockHabitService) CreateHabit(ctx context.Context, userID string, create service.HabitCreate) (*service.Habit, error) {
	args := m.Called(ctx, userID, create)
	var row *service.Habit
	if v := args.Get(0); v != nil {
		row = v.(*service.Habit)
	}
	return row, args.Error(1)
}

func (m *mockHabitService) UpdateHabit(ctx context.Context, userID string, id int64, patch service.HabitPatch) (*service.Habit, error) {
	args := m.Called(ctx, userID, id, patch)
	var row *service.Habit
	if v := args.Get(0); v != nil {
		row = v.(*service.Habit)
	}
	return row, args.Error(1)
}

func (m *mockHabitService) DeleteHabit(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *mockHabitService) ListEntries(ctx context.Context, userID string, filter service.HabitEntryFilter) ([]*service.HabitEntry, error) {
	args := m.Called(ctx, userID, filter)
	var rows []*service.HabitEntry
	if v := args.Get(0); v != nil {
		rows = v.([]*service.HabitEntry)
	}
	return rows, args.Error(1)
}

func (m *mockHabitService) UpsertEntry(ctx context.Context, userID string, upsert service.HabitEntryUpsert) (*service.HabitEntry, error) {
	args := m.Called(ctx, userID, upsert)
	var row *service.HabitEntry
	if v := args.Get(0); v != nil {
		row = v.(*service.HabitEntry)
	}
	return row, args.Error(1)
}

func (m *mockHabitService) DeleteEntry(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func newTestAPI(t *testing.T, svc *mockHabitService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListHabitsHandler(svc).Register(api)
	// humatest's flow router matches in registration order, unlike the
	// ServeMux used in production: the literal /v1/habits/entries route
	// must be registered before /v1/habits/{id} to be reachable.
	NewListEntriesHandler(svc).Register(api)
	NewUpsertEntryHandler(svc).Register(api)
	NewDeleteEntryHandler(svc).Register(api)
	NewGetHabitHandler(svc).Register(api)
	NewCreateHabitHandler(svc).Register(api)
	NewUpdateHabitHandler(svc).Register(api)
	NewDeleteHabitHandler(svc).Register(api)
	return api
}

func TestHTTP_CreateHabit_FrequencyDefaultsToDaily(t *testing.T) {
	mockSvc := new(mockHabitService)
	mockSvc.On("CreateHabit", mock.Anything, "uid-1", mock.MatchedBy(func(c service.HabitCreate) bool {
		return c.Name == "Run" && c.Frequency == "daily"
	})).Return(&service.Habit{ID: 3, Name: "Run", Frequency: "daily"}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/habits?userId=uid-1", CreateHabitBody{
		Name: "Run",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpsertEntry_Success(t *testing.T) {
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	mockSvc := new(mockHabitService)
	mockSvc.On("UpsertEntry", mock.Anything, "uid-1", mock.MatchedBy(func(u service.HabitEntryUpsert) bool {
		return u.HabitID == 3 && u.Date.Equal(date) && u.Completed
	})).Return(&service.HabitEntry{
		ID:        10,
		HabitID:   3,
		Date:      date,
		Completed: true,
		Notes:     "5k",
	}, nil)

	resp := newTestAPI(t, mockSvc).Put("/v1/habits/3/entries?userId=uid-1", UpsertEntryBody{
		Date:      "2025-07-15",
		Completed: true,
		Notes:     "5k",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body HabitEntry
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2025-07-15", body.Date)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpsertEntry_UnknownHabit(t *testing.T) {
	mockSvc := new(mockHabitService)
	mockSvc.On("UpsertEntry", mock.Anything, "uid-1", mock.Anything).
		Return(nil, storage.ErrNotFound)

	resp := newTestAPI(t, mockSvc).Put("/v1/habits/99/entries?userId=uid-1", UpsertEntryBody{
		Date:      "2025-07-15",
		Completed: true,
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_ListEntries_FilterParsing(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	mockSvc := new(mockHabitService)
	mockSvc.On("ListEntries", mock.Anything, "uid-1", mock.MatchedBy(func(f service.HabitEntryFilter) bool {
		return f.HabitID != nil && *f.HabitID == 3 && f.Start != nil && f.Start.Equal(start) && f.End == nil
	})).Return(nil, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/habits/entries?userId=uid-1&habitId=3&start=2025-07-01")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListEntries_InvalidStart(t *testing.T) {
	mockSvc := new(mockHabitService)

	resp := newTestAPI(t, mockSvc).Get("/v1/habits/entries?userId=uid-1&start=not-a-date")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListEntries")
}

func TestHTTP_DeleteEntry(t *testing.T) {
	mockSvc := new(mockHabitService)
	mockSvc.On("DeleteEntry", mock.Anything, "uid-1", int64(10)).Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/v1/habits/entries/10?userId=uid-1")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}
