package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Account represents an account record. Balance is the derived aggregate
// maintained by the transaction write path: it must always equal the sum
// of signed amounts over the account's live transactions.
type Account struct {
	ID        int64           `db:"id"`
	UserID    string          `db:"user_id"`
	Name      string          `db:"name"`
	Type      string          `db:"type"`
	Balance   decimal.Decimal `db:"balance"`
	Bank      string          `db:"bank"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	UserID  string
	Name    string
	Type    string
	Balance decimal.Decimal
	Bank    string
}

// IAccountTable defines the read-side interface for the accounts table.
type IAccountTable interface {
	List(ctx context.Context, userID string) ([]*Account, error)
	FindByID(ctx context.Context, userID string, id int64) (*Account, error)
}

// IAccountWriter defines the write-side interface, bound to one transaction.
type IAccountWriter interface {
	IAccountTable
	FindByIDForUpdate(ctx context.Context, userID string, id int64) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	Update(ctx context.Context, account *Account) error
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error
	Delete(ctx context.Context, userID string, id int64) error
}

var accountColumns = []any{"id", "user_id", "name", "type", "balance", "bank", "created_at", "updated_at"}

// AccountsTable provides read access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

var _ IAccountTable = (*AccountsTable)(nil)

func NewAccountsTable(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

// List returns the user's accounts, most recently created first.
func (t *AccountsTable) List(ctx context.Context, userID string) ([]*Account, error) {
	q := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Account]())
}

// FindByID retrieves one of the user's accounts by primary key.
func (t *AccountsTable) FindByID(ctx context.Context, userID string, id int64) (*Account, error) {
	q := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Account]())
	if err != nil {
		return nil, notFoundOr(err)
	}
	return row, nil
}

// AccountsWriter adds the mutating operations on top of the reader.
type AccountsWriter struct {
	AccountsTable
}

var _ IAccountWriter = (*AccountsWriter)(nil)

func NewAccountsWriter(tx bob.Tx) *AccountsWriter {
	return &AccountsWriter{AccountsTable{exec: tx}}
}

// FindByIDForUpdate locks the account row for the rest of the transaction
// so the read-modify-write on its balance cannot race a concurrent writer.
func (w *AccountsWriter) FindByIDForUpdate(ctx context.Context, userID string, id int64) (*Account, error) {
	q := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, w.exec, q, scan.StructMapper[*Account]())
	if err != nil {
		return nil, notFoundOr(err)
	}
	return row, nil
}

// Insert creates a new account and returns the stored row.
func (w *AccountsWriter) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	q := psql.Insert(
		im.Into("accounts", "user_id", "name", "type", "balance", "bank"),
		im.Values(psql.Arg(create.UserID, create.Name, create.Type, create.Balance, create.Bank)),
		im.Returning(accountColumns...),
	)
	return bob.One(ctx, w.exec, q, scan.StructMapper[*Account]())
}

// Update persists the account's mutable fields.
func (w *AccountsWriter) Update(ctx context.Context, account *Account) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("name").ToArg(account.Name),
		um.SetCol("type").ToArg(account.Type),
		um.SetCol("balance").ToArg(account.Balance),
		um.SetCol("bank").ToArg(account.Bank),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(account.ID))),
	)
	_, err := bob.Exec(ctx, w.exec, q)
	return err
}

// UpdateBalance updates only the balance for a given account.
func (w *AccountsWriter) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").ToArg(balance),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.exec, q)
	return err
}

// Delete removes one of the user's accounts. Referencing transactions are
// intentionally left alone; orphan rejection happens on the transaction
// write path.
func (w *AccountsWriter) Delete(ctx context.Context, userID string, id int64) error {
	q := psql.Delete(
		dm.From("accounts"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	result, err := bob.Exec(ctx, w.exec, q)
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
