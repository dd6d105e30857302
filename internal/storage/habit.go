package storage

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Habit represents a habit record.
type Habit struct {
	ID          int64     `db:"id"`
	UserID      string    `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Color       string    `db:"color"`
	Frequency   string    `db:"frequency"`
	TargetDays  int       `db:"target_days"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// HabitCreate is the input for creating a new habit.
type HabitCreate struct {
	UserID      string
	Name        string
	Description string
	Color       string
	Frequency   string
	TargetDays  int
}

// HabitEntry is one day's check-in for a habit. At most one entry exists
// per (user, habit, date).
type HabitEntry struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	HabitID   int64     `db:"habit_id"`
	Date      time.Time `db:"date"`
	Completed bool      `db:"completed"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}

// HabitEntryCreate is the input for creating a new habit entry.
type HabitEntryCreate struct {
	UserID    string
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

// IHabitTable defines the interface for habit and habit entry storage.
type IHabitTable interface {
	List(ctx context.Context, userID string) ([]*Habit, error)
	FindByID(ctx context.Context, userID string, id int64) (*Habit, error)
	Insert(ctx context.Context, create *HabitCreate) (*Habit, error)
	Update(ctx context.Context, habit *Habit) error
	Delete(ctx context.Context, userID string, id int64) error

	ListEntries(ctx context.Context, userID string, filter *HabitEntryFilter) ([]*HabitEntry, error)
	FindEntryByDate(ctx context.Context, userID string, habitID int64, date time.Time) (*HabitEntry, error)
	InsertEntry(ctx context.Context, create *HabitEntryCreate) (*HabitEntry, error)
	UpdateEntry(ctx context.Context, entry *HabitEntry) error
	DeleteEntry(ctx context.Context, userID string, id int64) error
}

var (
	habitColumns      = []any{"id", "user_id", "name", "description", "color", "frequency", "target_days", "created_at", "updated_at"}
	habitEntryColumns = []any{"id", "user_id", "habit_id", "date", "completed", "notes", "created_at"}
)

// HabitsTable provides access to the habits and habit_entries tables.
type HabitsTable struct {
	exec bob.Executor
}

var _ IHabitTable = (*HabitsTable)(nil)

func NewHabitsTable(exec bob.Executor) *HabitsTable {
	return &HabitsTable{exec: exec}
}

func (t *HabitsTable) List(ctx context.Context, userID string) ([]*Habit, error) {
	q := psql.Select(
		sm.Columns(habitColumns...),
		sm.From("habits"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("created_at").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Habit]())
}

func (t *HabitsTable) FindByID(ctx context.Context, userID string, id int64) (*Habit, error) {
	q := psql.Select(
		sm.Columns(habitColumns...),
		sm.From("habits"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Habit]())
	if err != nil {
		return nil, notFoundOr(err)
	}
	return row, nil
}

func (t *HabitsTable) Insert(ctx context.Context, create *HabitCreate) (*Habit, error) {
	q := psql.Insert(
		im.Into("habits", "user_id", "name", "description", "color", "frequency", "target_days"),
		im.Values(psql.Arg(
			create.UserID,
			create.Name,
			create.Description,
			create.Color,
			create.Frequency,
			create.TargetDays,
		)),
		im.Returning(habitColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Habit]())
}

func (t *HabitsTable) Update(ctx context.Context, habit *Habit) error {
	q := psql.Update(
		um.Table("habits"),
		um.SetCol("name").ToArg(habit.Name),
		um.SetCol("description").ToArg(habit.Description),
		um.SetCol("color").ToArg(habit.Color),
		um.SetCol("frequency").ToArg(habit.Frequency),
		um.SetCol("target_days").ToArg(habit.TargetDays),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(habit.ID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (t *HabitsTable) Delete(ctx context.Context, userID string, id int64) error {
	q := psql.Delete(
		dm.From("habits"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *HabitsTable) ListEntries(ctx context.Context, userID string, filter *HabitEntryFilter) ([]*HabitEntry, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(habitEntryColumns...),
		sm.From("habit_entries"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if filter != nil {
		if filter.HabitID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("habit_id").EQ(psql.Arg(*filter.HabitID))))
		}
		if filter.Start != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("date").GTE(psql.Arg(*filter.Start))))
		}
		if filter.End != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("date").LTE(psql.Arg(*filter.End))))
		}
	}
	queryMods = append(queryMods, sm.OrderBy("date").Desc())
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*HabitEntry]())
}

func (t *HabitsTable) FindEntryByDate(ctx context.Context, userID string, habitID int64, date time.Time) (*HabitEntry, error) {
	q := psql.Select(
		sm.Columns(habitEntryColumns...),
		sm.From("habit_entries"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("habit_id").EQ(psql.Arg(habitID))),
		sm.Where(psql.Quote("date").EQ(psql.Arg(date))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*HabitEntry]())
	if err != nil {
		return nil, notFoundOr(err)
	}
	return row, nil
}

func (t *HabitsTable) InsertEntry(ctx context.Context, create *HabitEntryCreate) (*HabitEntry, error) {
	q := psql.Insert(
		im.Into("habit_entries", "user_id", "habit_id", "date", "completed", "notes"),
		im.Values(psql.Arg(
			create.UserID,
			create.HabitID,
			create.Date,
			create.Completed,
			create.Notes,
		)),
		im.Returning(habitEntryColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*HabitEntry]())
}

func (t *HabitsTable) UpdateEntry(ctx context.Context, entry *HabitEntry) error {
	q := psql.Update(
		um.Table("habit_entries"),
		um.SetCol("completed").ToArg(entry.Completed),
		um.SetCol("notes").ToArg(entry.Notes),
		um.Where(psql.Quote("id").EQ(psql.Arg(entry.ID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (t *HabitsTable) DeleteEntry(ctx context.Context, userID string, id int64) error {
	q := psql.Delete(
		dm.From("habit_entries"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
