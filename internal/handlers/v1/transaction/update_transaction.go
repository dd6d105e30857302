package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/nickolss/madeforyou-server/internal/ledger"
	"github.com/nickolss/madeforyou-server/internal/service"
)

// UpdateTransactionBody is the request body for updating a transaction.
// Omitted fields keep their current values.
type UpdateTransactionBody struct {
	AccountID   *int64  `json:"accountId,omitempty" doc:"Move the transaction to this account"`
	Description *string `json:"description,omitempty" minLength:"1" doc:"What the money moved for"`
	Amount      *string `json:"amount,omitempty" doc:"Non-negative decimal amount"`
	Direction   *string `json:"direction,omitempty" enum:"income,expense" doc:"Which way the money moved"`
	Category    *string `json:"category,omitempty" doc:"Free-form category label"`
	Date        *string `json:"date,omitempty" format:"date" doc:"Calendar date"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID     int64  `path:"id" doc:"Transaction id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	Body   UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// transactionUpdater is the interface for updating transactions.
type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, userID string, id int64, patch service.TransactionPatch) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PATCH /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	FinanceService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{FinanceService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Applies a partial update and moves the balance contribution along with it.",
		Tags:        []string{"Finance"},
	}, h.handle)
}

// parseUpdateTransactionInput turns the sparse body into a patch. Only
// fields present in the request end up set.
func parseUpdateTransactionInput(input *UpdateTransactionInput) (service.TransactionPatch, error) {
	patch := service.TransactionPatch{
		AccountID:   omit.FromPtr(input.Body.AccountID),
		Description: omit.FromPtr(input.Body.Description),
		Category:    omit.FromPtr(input.Body.Category),
	}

	if input.Body.Amount != nil {
		amount, err := decimal.NewFromString(*input.Body.Amount)
		if err != nil {
			return service.TransactionPatch{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		patch.Amount = omit.From(amount)
	}
	if input.Body.Direction != nil {
		patch.Direction = omit.From(ledger.Direction(*input.Body.Direction))
	}
	if input.Body.Date != nil {
		date, err := time.Parse(dateLayout, *input.Body.Date)
		if err != nil {
			return service.TransactionPatch{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		patch.Date = omit.From(date)
	}

	return patch, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	patch, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	transaction, err := h.FinanceService.UpdateTransaction(ctx, input.UserID, input.ID, patch)
	if err != nil {
		return nil, transactionError(err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{Body: fromService(transaction)}, nil
}
