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

// Project represents a project record.
type Project struct {
	ID          int64      `db:"id"`
	UserID      string     `db:"user_id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Progress    int        `db:"progress"`
	Status      string     `db:"status"`
	Priority    string     `db:"priority"`
	StartDate   *time.Time `db:"start_date"`
	DueDate     *time.Time `db:"due_date"`
	Color       string     `db:"color"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// ProjectCreate is the input for creating a new project.
type ProjectCreate struct {
	UserID      string
	Name        string
	Description string
	Progress    int
	Status      string
	Priority    string
	StartDate   *time.Time
	DueDate     *time.Time
	Color       string
}

// IProjectTable defines the interface for project storage operations.
type IProjectTable interface {
	List(ctx context.Context, userID string) ([]*Project, error)
	FindByID(ctx context.Context, userID string, id int64) (*Project, error)
	Insert(ctx context.Context, create *ProjectCreate) (*Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, userID string, id int64) error
}

var projectColumns = []any{"id", "user_id", "name", "description", "progress", "status", "priority", "start_date", "due_date", "color", "created_at", "updated_at"}

// ProjectsTable provides access to the projects table.
type ProjectsTable struct {
	exec bob.Executor
}

var _ IProjectTable = (*ProjectsTable)(nil)

func NewProjectsTable(exec bob.Executor) *ProjectsTable {
	return &ProjectsTable{exec: exec}
}

func (t *ProjectsTable) List(ctx context.Context, userID string) ([]*Project, error) {
	q := psql.Select(
		sm.Columns(projectColumns...),
		sm.From("projects"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("created_at").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Project]())
}

func (t *ProjectsTable) FindByID(ctx context.Context, userID string, id int64) (*Project, error) {
	q := psql.Select(
		sm.Columns(projectColumns...),
		sm.From("projects"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Project]())
	if err != nil {
		return nil, notFoundOr(err)
	}
	return row, nil
}

func (t *ProjectsTable) Insert(ctx context.Context, create *ProjectCreate) (*Project, error) {
	q := psql.Insert(
		im.Into("projects", "user_id", "name", "description", "progress", "status", "priority", "start_date", "due_date", "color"),
		im.Values(psql.Arg(
			create.UserID,
			create.Name,
			create.Description,
			create.Progress,
			create.Status,
			create.Priority,
			create.StartDate,
			create.DueDate,
			create.Color,
		)),
		im.Returning(projectColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Project]())
}

func (t *ProjectsTable) Update(ctx context.Context, project *Project) error {
	q := psql.Update(
		um.Table("projects"),
		um.SetCol("name").ToArg(project.Name),
		um.SetCol("description").ToArg(project.Description),
		um.SetCol("progress").ToArg(project.Progress),
		um.SetCol("status").ToArg(project.Status),
		um.SetCol("priority").ToArg(project.Priority),
		um.SetCol("start_date").ToArg(project.StartDate),
		um.SetCol("due_date").ToArg(project.DueDate),
		um.SetCol("color").ToArg(project.Color),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(project.ID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (t *ProjectsTable) Delete(ctx context.Context, userID string, id int64) error {
	q := psql.Delete(
		dm.From("projects"),
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
