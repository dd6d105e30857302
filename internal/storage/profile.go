package storage

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Profile represents a user profile. The primary key is the external
// auth provider's uid, not a generated id.
type Profile struct {
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	DisplayName string    `db:"display_name"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	AvatarURL   string    `db:"avatar_url"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ProfileCreate is the input for creating a new profile.
type ProfileCreate struct {
	ID          string
	Email       string
	DisplayName string
}

// IProfileTable defines the interface for profile storage operations.
type IProfileTable interface {
	FindByID(ctx context.Context, id string) (*Profile, error)
	Insert(ctx context.Context, create *ProfileCreate) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

var profileColumns = []any{"id", "email", "display_name", "first_name", "last_name", "avatar_url", "created_at", "updated_at"}

// ProfilesTable provides access to the user_profiles table.
type ProfilesTable struct {
	exec bob.Executor
}

var _ IProfileTable = (*ProfilesTable)(nil)

func NewProfilesTable(exec bob.Executor) *ProfilesTable {
	return &ProfilesTable{exec: exec}
}

func (t *ProfilesTable) FindByID(ctx context.Context, id string) (*Profile, error) {
	q := psql.Select(
		sm.Columns(profileColumns...),
		sm.From("user_profiles"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Profile]())
	if err != nil {
		return nil, notFoundOr(err)
	}
	return row, nil
}

func (t *ProfilesTable) Insert(ctx context.Context, create *ProfileCreate) (*Profile, error) {
	q := psql.Insert(
		im.Into("user_profiles", "id", "email", "display_name"),
		im.Values(psql.Arg(create.ID, create.Email, create.DisplayName)),
		im.Returning(profileColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Profile]())
}

func (t *ProfilesTable) Update(ctx context.Context, profile *Profile) error {
	q := psql.Update(
		um.Table("user_profiles"),
		um.SetCol("email").ToArg(profile.Email),
		um.SetCol("display_name").ToArg(profile.DisplayName),
		um.SetCol("first_name").ToArg(profile.FirstName),
		um.SetCol("last_name").ToArg(profile.LastName),
		um.SetCol("avatar_url").ToArg(profile.AvatarURL),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(profile.ID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
