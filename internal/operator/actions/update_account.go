package actions

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/nickolss/madeforyou-server/internal/storage"
)

// UpdateAccount patches an account's direct fields. Patching the balance
// here rebases the aggregate; the transaction write path is unaffected.
type UpdateAccount struct {
	UserID string
	ID     int64

	// Unset fields keep the account's current values.
	Name    omit.Val[string]
	Type    omit.Val[string]
	Bank    omit.Val[string]
	Balance omit.Val[decimal.Decimal]

	// Result holds the merged account after a successful Perform.
	Result *storage.Account

	IAction
}

func (a *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Accounts.FindByIDForUpdate(ctx, a.UserID, a.ID)
	if err != nil {
		return err
	}

	if name, ok := a.Name.Get(); ok {
		account.Name = name
	}
	if accountType, ok := a.Type.Get(); ok {
		account.Type = accountType
	}
	if bank, ok := a.Bank.Get(); ok {
		account.Bank = bank
	}
	if balance, ok := a.Balance.Get(); ok {
		account.Balance = balance
	}

	if err := writer.Accounts.Update(ctx, account); err != nil {
		return err
	}

	a.Result = account
	return nil
}
