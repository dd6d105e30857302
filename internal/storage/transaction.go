package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/nickolss/madeforyou-server/internal/ledger"
)

// Transaction represents a transaction record. Amount is always
// non-negative; Direction carries the sign.
type Transaction struct {
	ID          int64            `db:"id"`
	UserID      string           `db:"user_id"`
	AccountID   int64            `db:"account_id"`
	Description string           `db:"description"`
	Amount      decimal.Decimal  `db:"amount"`
	Direction   ledger.Direction `db:"direction"`
	Category    string           `db:"category"`
	Date        time.Time        `db:"date"`
	CreatedAt   time.Time        `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID      string
	AccountID   int64
	Description string
	Amount      decimal.Decimal
	Direction   ledger.Direction
	Category    string
	Date        time.Time
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	AccountID *int64
}

// ITransactionTable defines the read-side interface for the transactions table.
type ITransactionTable interface {
	List(ctx context.Context, userID string, filter *TransactionFilter) ([]*Transaction, error)
	FindByID(ctx context.Context, userID string, id int64) (*Transaction, error)
}

// ITransactionWriter defines the write-side interface, bound to one transaction.
type ITransactionWriter interface {
	ITransactionTable
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, id int64) error
}

var transactionColumns = []any{"id", "user_id", "account_id", "description", "amount", "direction", "category", "date", "created_at"}

// TransactionsTable provides read access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

var _ ITransactionTable = (*TransactionsTable)(nil)

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// List returns the user's transactions ordered by date descending,
// optionally narrowed to a single account.
func (t *TransactionsTable) List(ctx context.Context, userID string, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if filter != nil && filter.AccountID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(*filter.AccountID))))
	}
	queryMods = append(queryMods,
		sm.OrderBy("date").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// FindByID retrieves one of the user's transactions by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, userID string, id int64) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, notFoundOr(err)
	}
	return row, nil
}

// TransactionsWriter adds the mutating operations on top of the reader.
type TransactionsWriter struct {
	TransactionsTable
}

var _ ITransactionWriter = (*TransactionsWriter)(nil)

func NewTransactionsWriter(tx bob.Tx) *TransactionsWriter {
	return &TransactionsWriter{TransactionsTable{exec: tx}}
}

// Insert creates a new transaction and returns the stored row.
func (w *TransactionsWriter) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into("transactions", "user_id", "account_id", "description", "amount", "direction", "category", "date"),
		im.Values(psql.Arg(
			create.UserID,
			create.AccountID,
			create.Description,
			create.Amount,
			create.Direction,
			create.Category,
			create.Date,
		)),
		im.Returning(transactionColumns...),
	)
	return bob.One(ctx, w.exec, q, scan.StructMapper[*Transaction]())
}

// Update persists the transaction's mutable fields. CreatedAt is immutable.
func (w *TransactionsWriter) Update(ctx context.Context, transaction *Transaction) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("account_id").ToArg(transaction.AccountID),
		um.SetCol("description").ToArg(transaction.Description),
		um.SetCol("amount").ToArg(transaction.Amount),
		um.SetCol("direction").ToArg(transaction.Direction),
		um.SetCol("category").ToArg(transaction.Category),
		um.SetCol("date").ToArg(transaction.Date),
		um.Where(psql.Quote("id").EQ(psql.Arg(transaction.ID))),
	)
	_, err := bob.Exec(ctx, w.exec, q)
	return err
}

// Delete removes a transaction row. Ownership has already been checked by
// the FindByID that precedes every delete.
func (w *TransactionsWriter) Delete(ctx context.Context, id int64) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
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
