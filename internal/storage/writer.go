package storage

import (
	"context"

	"github.com/stephenafamo/bob"
)

// Transactor is the slice of bob.Tx a Writer needs to finish its unit of
// work. Tests substitute a fake to observe commit/rollback decisions.
type Transactor interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the write-side gateways, all bound to one transaction.
// Every mutation made through it becomes durable together on Commit or
// disappears together on Rollback.
type Writer struct {
	Tx           Transactor
	Accounts     IAccountWriter
	Transactions ITransactionWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:           tx,
		Accounts:     NewAccountsWriter(tx),
		Transactions: NewTransactionsWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.Tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.Tx.Rollback(context.Background())
}
