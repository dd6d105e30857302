package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nickolss/madeforyou-server/internal/storage"
)

// CreateAccount inserts a new account. Balance defaults to zero at the
// boundary when the caller omits it.
type CreateAccount struct {
	UserID  string
	Name    string
	Type    string
	Balance decimal.Decimal
	Bank    string

	// Result holds the stored account after a successful Perform.
	Result *storage.Account

	IAction
}

func (a *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Accounts.Insert(ctx, &storage.AccountCreate{
		UserID:  a.UserID,
		Name:    a.Name,
		Type:    a.Type,
		Balance: a.Balance,
		Bank:    a.Bank,
	})
	if err != nil {
		return err
	}

	a.Result = created
	return nil
}
