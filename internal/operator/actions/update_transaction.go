package actions

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/nickolss/madeforyou-server/internal/ledger"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

// UpdateTransaction patches a transaction and keeps the affected account
// balance(s) consistent: the old contribution is reverted against the
// ORIGINAL (account, amount, direction) triple and the new one applied
// against the POST-MERGE triple. When the patch moves the transaction to
// another account, both account rows change inside the same unit of work.
type UpdateTransaction struct {
	UserID string
	ID     int64

	// Unset fields keep the transaction's current values.
	AccountID   omit.Val[int64]
	Description omit.Val[string]
	Amount      omit.Val[decimal.Decimal]
	Direction   omit.Val[ledger.Direction]
	Category    omit.Val[string]
	Date        omit.Val[time.Time]

	// Result holds the merged transaction after a successful Perform.
	Result *storage.Transaction

	IAction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	transaction, err := writer.Transactions.FindByID(ctx, a.UserID, a.ID)
	if err != nil {
		return err
	}

	// The original triple, captured before the merge.
	prevAccountID := transaction.AccountID
	prevAmount := transaction.Amount
	prevDirection := transaction.Direction

	if accountID, ok := a.AccountID.Get(); ok {
		transaction.AccountID = accountID
	}
	if description, ok := a.Description.Get(); ok {
		transaction.Description = description
	}
	if amount, ok := a.Amount.Get(); ok {
		transaction.Amount = amount
	}
	if direction, ok := a.Direction.Get(); ok {
		transaction.Direction = direction
	}
	if category, ok := a.Category.Get(); ok {
		transaction.Category = category
	}
	if date, ok := a.Date.Get(); ok {
		transaction.Date = date
	}

	if transaction.Amount.IsNegative() {
		return ErrAmountNegative
	}
	if !transaction.Direction.Valid() {
		return ErrDirectionInvalid
	}

	source, target, err := a.lockAccounts(ctx, writer, prevAccountID, transaction.AccountID)
	if err != nil {
		return err
	}

	// When source and target are the same account they share a pointer, so
	// the revert carries into the apply.
	source.Balance = ledger.Revert(source.Balance, prevAmount, prevDirection)
	target.Balance = ledger.Apply(target.Balance, transaction.Amount, transaction.Direction)

	if err := writer.Accounts.UpdateBalance(ctx, source.ID, source.Balance); err != nil {
		return err
	}
	if target != source {
		if err := writer.Accounts.UpdateBalance(ctx, target.ID, target.Balance); err != nil {
			return err
		}
	}

	if err := writer.Transactions.Update(ctx, transaction); err != nil {
		return err
	}

	a.Result = transaction
	return nil
}

// lockAccounts locks the pre-update and post-merge accounts, in ascending
// id order when they differ so two concurrent movers cannot deadlock.
func (a *UpdateTransaction) lockAccounts(ctx context.Context, writer *storage.Writer, sourceID, targetID int64) (source, target *storage.Account, err error) {
	if sourceID == targetID {
		account, err := writer.Accounts.FindByIDForUpdate(ctx, a.UserID, sourceID)
		if err != nil {
			return nil, nil, asLinkedAccount(err)
		}
		return account, account, nil
	}

	firstID, secondID := sourceID, targetID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}

	first, err := writer.Accounts.FindByIDForUpdate(ctx, a.UserID, firstID)
	if err != nil {
		return nil, nil, asLinkedAccount(err)
	}
	second, err := writer.Accounts.FindByIDForUpdate(ctx, a.UserID, secondID)
	if err != nil {
		return nil, nil, asLinkedAccount(err)
	}

	if firstID == sourceID {
		return first, second, nil
	}
	return second, first, nil
}
