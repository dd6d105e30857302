package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nickolss/madeforyou-server/internal/ledger"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

// CreateTransaction inserts a transaction and applies its effect to the
// linked account's balance, all in one unit of work.
type CreateTransaction struct {
	UserID      string
	AccountID   int64
	Description string
	Amount      decimal.Decimal
	Direction   ledger.Direction
	Category    string
	Date        time.Time

	// Result holds the stored transaction after a successful Perform.
	Result *storage.Transaction

	IAction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Amount.IsNegative() {
		return ErrAmountNegative
	}
	if !a.Direction.Valid() {
		return ErrDirectionInvalid
	}

	// Lock the account before touching anything so the balance read below
	// stays valid for the rest of the transaction.
	account, err := writer.Accounts.FindByIDForUpdate(ctx, a.UserID, a.AccountID)
	if err != nil {
		return asLinkedAccount(err)
	}

	created, err := writer.Transactions.Insert(ctx, &storage.TransactionCreate{
		UserID:      a.UserID,
		AccountID:   a.AccountID,
		Description: a.Description,
		Amount:      a.Amount,
		Direction:   a.Direction,
		Category:    a.Category,
		Date:        a.Date,
	})
	if err != nil {
		return err
	}

	newBalance := ledger.Apply(account.Balance, a.Amount, a.Direction)
	if err := writer.Accounts.UpdateBalance(ctx, account.ID, newBalance); err != nil {
		return err
	}

	a.Result = created
	return nil
}
