package actions

import (
	"context"

	"github.com/nickolss/madeforyou-server/internal/storage"
)

// DeleteAccount removes an account. Transactions referencing it go with
// the row via the schema's cascade; no balance bookkeeping is needed.
type DeleteAccount struct {
	UserID string
	ID     int64

	IAction
}

func (a *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Accounts.Delete(ctx, a.UserID, a.ID)
}
