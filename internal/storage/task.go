package storage

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Task represents a task record.
type Task struct {
	ID        int64      `db:"id"`
	UserID    string     `db:"user_id"`
	Text      string     `db:"text"`
	Completed bool       `db:"completed"`
	Priority  string     `db:"priority"`
	Category  string     `db:"category"`
	DueDate   *time.Time `db:"due_date"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// TaskCreate is the input for creating a new task.
type TaskCreate struct {
	UserID    string
	Text      string
	Completed bool
	Priority  string
	Category  string
	DueDate   *time.Time
}

// ITaskTable defines the interface for task storage operations.
type ITaskTable interface {
	List(ctx context.Context, userID string) ([]*Task, error)
	FindByID(ctx context.Context, userID string, id int64) (*Task, error)
	Insert(ctx context.Context, create *TaskCreate) (*Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, userID string, id int64) error
}

var taskColumns = []any{"id", "user_id", "text", "completed", "priority", "category", "due_date", "created_at", "updated_at"}

// TasksTable provides access to the tasks table.
type TasksTable struct {
	exec bob.Executor
}

var _ ITaskTable = (*TasksTable)(nil)

func NewTasksTable(exec bob.Executor) *TasksTable {
	return &TasksTable{exec: exec}
}

func (t *TasksTable) List(ctx context.Context, userID string) ([]*Task, error) {
	q := psql.Select(
		sm.Columns(taskColumns...),
		sm.From("tasks"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("created_at").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Task]())
}

func (t *TasksTable) FindByID(ctx context.Context, userID string, id int64) (*Task, error) {
	q := psql.Select(
		sm.Columns(taskColumns...),
		sm.From("tasks"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Task]())
	if err != nil {
		return nil, notFoundOr(err)
	}
	return row, nil
}

func (t *TasksTable) Insert(ctx context.Context, create *TaskCreate) (*Task, error) {
	q := psql.Insert(
		im.Into("tasks", "user_id", "text", "completed", "priority", "category", "due_date"),
		im.Values(psql.Arg(
			create.UserID,
			create.Text,
			create.Completed,
			create.Priority,
			create.Category,
			create.DueDate,
		)),
		im.Returning(taskColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Task]())
}

func (t *TasksTable) Update(ctx context.Context, task *Task) error {
	q := psql.Update(
		um.Table("tasks"),
		um.SetCol("text").ToArg(task.Text),
		um.SetCol("completed").ToArg(task.Completed),
		um.SetCol("priority").ToArg(task.Priority),
		um.SetCol("category").ToArg(task.Category),
		um.SetCol("due_date").ToArg(task.DueDate),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(task.ID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (t *TasksTable) Delete(ctx context.Context, userID string, id int64) error {
	q := psql.Delete(
		dm.From("tasks"),
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
