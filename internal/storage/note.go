package storage

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Note represents a note record.
type Note struct {
	ID        int64          `db:"id"`
	UserID    string         `db:"user_id"`
	Title     string         `db:"title"`
	Content   string         `db:"content"`
	Category  string         `db:"category"`
	Tags      pq.StringArray `db:"tags"`
	Pinned    bool           `db:"pinned"`
	Color     string         `db:"color"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// NoteCreate is the input for creating a new note.
type NoteCreate struct {
	UserID   string
	Title    string
	Content  string
	Category string
	Tags     []string
	Pinned   bool
	Color    string
}

// INoteTable defines the interface for note storage operations.
type INoteTable interface {
	List(ctx context.Context, userID string) ([]*Note, error)
	FindByID(ctx context.Context, userID string, id int64) (*Note, error)
	Insert(ctx context.Context, create *NoteCreate) (*Note, error)
	Update(ctx context.Context, note *Note) error
	Delete(ctx context.Context, userID string, id int64) error
}

var noteColumns = []any{"id", "user_id", "title", "content", "category", "tags", "pinned", "color", "created_at", "updated_at"}

// NotesTable provides access to the notes table. Each operation is a
// single statement; no cross-row consistency to maintain.
type NotesTable struct {
	exec bob.Executor
}

var _ INoteTable = (*NotesTable)(nil)

func NewNotesTable(exec bob.Executor) *NotesTable {
	return &NotesTable{exec: exec}
}

// List returns the user's notes, pinned first, then most recently updated.
func (t *NotesTable) List(ctx context.Context, userID string) ([]*Note, error) {
	q := psql.Select(
		sm.Columns(noteColumns...),
		sm.From("notes"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("pinned").Desc(),
		sm.OrderBy("updated_at").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Note]())
}

func (t *NotesTable) FindByID(ctx context.Context, userID string, id int64) (*Note, error) {
	q := psql.Select(
		sm.Columns(noteColumns...),
		sm.From("notes"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Note]())
	if err != nil {
		return nil, notFoundOr(err)
	}
	return row, nil
}

func (t *NotesTable) Insert(ctx context.Context, create *NoteCreate) (*Note, error) {
	q := psql.Insert(
		im.Into("notes", "user_id", "title", "content", "category", "tags", "pinned", "color"),
		im.Values(psql.Arg(
			create.UserID,
			create.Title,
			create.Content,
			create.Category,
			pq.StringArray(create.Tags),
			create.Pinned,
			create.Color,
		)),
		im.Returning(noteColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Note]())
}

func (t *NotesTable) Update(ctx context.Context, note *Note) error {
	q := psql.Update(
		um.Table("notes"),
		um.SetCol("title").ToArg(note.Title),
		um.SetCol("content").ToArg(note.Content),
		um.SetCol("category").ToArg(note.Category),
		um.SetCol("tags").ToArg(note.Tags),
		um.SetCol("pinned").ToArg(note.Pinned),
		um.SetCol("color").ToArg(note.Color),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(note.ID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (t *NotesTable) Delete(ctx context.Context, userID string, id int64) error {
	q := psql.Delete(
		dm.From("notes"),
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
