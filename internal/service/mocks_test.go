package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/nickolss/madeforyou-server/internal/operator/actions"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

// fakeProcessor records the dispatched action. onAction can populate the
// action's Result the way a committed unit of work would.
type fakeProcessor struct {
	err      error
	last     actions.IAction
	onAction func(actions.IAction)
}

func (p *fakeProcessor) Process(_ context.Context, action actions.IAction) error {
	p.last = action
	if p.err != nil {
		return p.err
	}
	if p.onAction != nil {
		p.onAction(action)
	}
	return nil
}

type mockAccountTable struct{ mock.Mock }

func (m *mockAccountTable) List(ctx context.Context, userID string) ([]*storage.Account, error) {
	args := m.Called(ctx, userID)
	var rows []*storage.Account
	if v := args.Get(0); v != nil {
		rows = v.([]*storage.Account)
	}
	return rows, args.Error(1)
}

func (m *mockAccountTable) FindByID(ctx context.Context, userID string, id int64) (*storage.Account, error) {
	args := m.Called(ctx, userID, id)
	var row *storage.Account
	if v := args.Get(0); v != nil {
		row = v.(*storage.Account)
	}
	return row, args.Error(1)
}

type mockTransactionTable struct{ mock.Mock }

func (m *mockTransactionTable) List(ctx context.Context, userID string, filter *storage.TransactionFilter) ([]*storage.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	var rows []*storage.Transaction
	if v := args.Get(0); v != nil {
		rows = v.([]*storage.Transaction)
	}
	return rows, args.Error(1)
}

func (m *mockTransactionTable) FindByID(ctx context.Context, userID string, id int64) (*storage.Transaction, error) {
	args := m.Called(ctx, userID, id)
	var row *storage.Transaction
	if v := args.Get(0); v != nil {
		row = v.(*storage.Transaction)
	}
	return row, args.Error(1)
}

type mockNoteTable struct{ mock.Mock }

func (m *mockNoteTable) List(ctx context.Context, userID string) ([]*storage.Note, error) {
	args := m.Called(ctx, userID)
	var rows []*storage.Note
	if v := args.Get(0); v != nil {
		rows = v.([]*storage.Note)
	}
	return rows, args.Error(1)
}

func (m *mockNoteTable) FindByID(ctx context.Context, userID string, id int64) (*storage.Note, error) {
	args := m.Called(ctx, userID, id)
	var row *storage.Note
	if v := args.Get(0); v != nil {
		row = v.(*storage.Note)
	}
	return row, args.Error(1)
}

func (m *mockNoteTable) Insert(ctx context.Context, create *storage.NoteCreate) (*storage.Note, error) {
	args := m.Called(ctx, create)
	var row *storage.Note
	if v := args.Get(0); v != nil {
		row = v.(*storage.Note)
	}
	return row, args.Error(1)
}

func (m *mockNoteTable) Update(ctx context.Context, note *storage.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteTable) Delete(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockTaskTable struct{ mock.Mock }

func (m *mockTaskTable) List(ctx context.Context, userID string) ([]*storage.Task, error) {
	args := m.Called(ctx, userID)
	var rows []*storage.Task
	if v := args.Get(0); v != nil {
		rows = v.([]*storage.Task)
	}
	return rows, args.Error(1)
}

func (m *mockTaskTable) FindByID(ctx context.Context, userID string, id int64) (*storage.Task, error) {
	args := m.Called(ctx, userID, id)
	var row *storage.Task
	if v := args.Get(0); v != nil {
		row = v.(*storage.Task)
	}
	return row, args.Error(1)
}

func (m *mockTaskTable) Insert(ctx context.Context, create *storage.TaskCreate) (*storage.Task, error) {
	args := m.Called(ctx, create)
	var row *storage.Task
	if v := args.Get(0); v != nil {
		row = v.(*storage.Task)
	}
	return row, args.Error(1)
}

func (m *mockTaskTable) Update(ctx context.Context, task *storage.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *mockTaskTable) Delete(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockProjectTable struct{ mock.Mock }

func (m *mockProjectTable) List(ctx context.Context, userID string) ([]*storage.Project, error) {
	args := m.Called(ctx, userID)
	var rows []*storage.Project
	if v := args.Get(0); v != nil {
		rows = v.([]*storage.Project)
	}
	return rows, args.Error(1)
}

func (m *mockProjectTable) FindByID(ctx context.Context, userID string, id int64) (*storage.Project, error) {
	args := m.Called(ctx, userID, id)
	var row *storage.Project
	if v := args.Get(0); v != nil {
		row = v.(*storage.Project)
	}
	return row, args.Error(1)
}

func (m *mockProjectTable) Insert(ctx context.Context, create *storage.ProjectCreate) (*storage.Project, error) {
	args := m.Called(ctx, create)
	var row *storage.Project
	if v := args.Get(0); v != nil {
		row = v.(*storage.Project)
	}
	return row, args.Error(1)
}

func (m *mockProjectTable) Update(ctx context.Context, project *storage.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *mockProjectTable) Delete(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockHabitTable struct{ mock.Mock }

func (m *mockHabitTable) List(ctx context.Context, userID string) ([]*storage.Habit, error) {
	args := m.Called(ctx, userID)
	var rows []*storage.Habit
	if v := args.Get(0); v != nil {
		rows = v.([]*storage.Habit)
	}
	return rows, args.Error(1)
}

func (m *mockHabitTable) FindByID(ctx context.Context, userID string, id int64) (*storage.Habit, error) {
	args := m.Called(ctx, userID, id)
	var row *storage.Habit
	if v := args.Get(0); v != nil {
		row = v.(*storage.Habit)
	}
	return row, args.Error(1)
}

func (m *mockHabitTable) Insert(ctx context.Context, create *storage.HabitCreate) (*storage.Habit, error) {
	args := m.Called(ctx, create)
	var row *storage.Habit
	if v := args.Get(0); v != nil {
		row = v.(*storage.Habit)
	}
	return row, args.Error(1)
}

func (m *mockHabitTable) Update(ctx context.Context, habit *storage.Habit) error {
	return m.Called(ctx, habit).Error(0)
}

func (m *mockHabitTable) Delete(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *mockHabitTable) ListEntries(ctx context.Context, userID string, filter *storage.HabitEntryFilter) ([]*storage.HabitEntry, error) {
	args := m.Called(ctx, userID, filter)
	var rows []*storage.HabitEntry
	if v := args.Get(0); v != nil {
		rows = v.([]*storage.HabitEntry)
	}
	return rows, args.Error(1)
}

func (m *mockHabitTable) FindEntryByDate(ctx context.Context, userID string, habitID int64, date time.Time) (*storage.HabitEntry, error) {
	args := m.Called(ctx, userID, habitID, date)
	var row *storage.HabitEntry
	if v := args.Get(0); v != nil {
		row = v.(*storage.HabitEntry)
	}
	return row, args.Error(1)
}

func (m *mockHabitTable) InsertEntry(ctx context.Context, create *storage.HabitEntryCreate) (*storage.HabitEntry, error) {
	args := m.Called(ctx, create)
	var row *storage.HabitEntry
	if v := args.Get(0); v != nil {
		row = v.(*storage.HabitEntry)
	}
	return row, args.Error(1)
}

func (m *mockHabitTable) UpdateEntry(ctx context.Context, entry *storage.HabitEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockHabitTable) DeleteEntry(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockProfileTable struct{ mock.Mock }

func (m *mockProfileTable) FindByID(ctx context.Context, id string) (*storage.Profile, error) {
	args := m.Called(ctx, id)
	var row *storage.Profile
	if v := args.Get(0); v != nil {
		row = v.(*storage.Profile)
	}
	return row, args.Error(1)
}

func (m *mockProfileTable) Insert(ctx context.Context, create *storage.ProfileCreate) (*storage.Profile, error) {
	args := m.Called(ctx, create)
	var row *storage.Profile
	if v := args.Get(0); v != nil {
		row = v.(*storage.Profile)
	}
	return row, args.Error(1)
}

func (m *mockProfileTable) Update(ctx context.Context, profile *storage.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
