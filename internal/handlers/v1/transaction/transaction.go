package transaction

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/operator/actions"
	"github.com/nickolss/madeforyou-server/internal/service"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

const dateLayout = "2006-01-02"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          int64  `json:"id" doc:"Transaction id"`
	AccountID   int64  `json:"accountId" doc:"Linked account id"`
	Description string `json:"description" doc:"What the money moved for"`
	Amount      string `json:"amount" doc:"Non-negative decimal amount"`
	Direction   string `json:"direction" doc:"income or expense"`
	Category    string `json:"category" doc:"Free-form category label"`
	Date        string `json:"date" doc:"Calendar date of the transaction"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(tx *service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		AccountID:   tx.AccountID,
		Description: tx.Description,
		Amount:      tx.Amount.String(),
		Direction:   string(tx.Direction),
		Category:    tx.Category,
		Date:        tx.Date.Format(dateLayout),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}

// transactionError maps service errors onto HTTP statuses. The linked
// account check must come before the plain not-found check because its
// sentinel wraps it.
func transactionError(err error, msg string) error {
	switch {
	case errors.Is(err, actions.ErrLinkedAccountNotFound):
		return huma.NewError(http.StatusUnprocessableEntity, "linked account not found", err)
	case errors.Is(err, storage.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "transaction not found")
	case errors.Is(err, actions.ErrAmountNegative):
		return huma.NewError(http.StatusUnprocessableEntity, "amount must not be negative", err)
	case errors.Is(err, actions.ErrDirectionInvalid):
		return huma.NewError(http.StatusUnprocessableEntity, "direction must be income or expense", err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
