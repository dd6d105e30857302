package actions

import (
	"context"

	"github.com/nickolss/madeforyou-server/internal/ledger"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

// DeleteTransaction reverts a transaction's contribution from its
// account's balance and removes the row, in one unit of work.
type DeleteTransaction struct {
	UserID string
	ID     int64

	IAction
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	transaction, err := writer.Transactions.FindByID(ctx, a.UserID, a.ID)
	if err != nil {
		return err
	}

	account, err := writer.Accounts.FindByIDForUpdate(ctx, a.UserID, transaction.AccountID)
	if err != nil {
		return asLinkedAccount(err)
	}

	newBalance := ledger.Revert(account.Balance, transaction.Amount, transaction.Direction)
	if err := writer.Accounts.UpdateBalance(ctx, account.ID, newBalance); err != nil {
		return err
	}

	return writer.Transactions.Delete(ctx, transaction.ID)
}
