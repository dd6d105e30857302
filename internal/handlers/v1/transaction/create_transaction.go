package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/nickolss/madeforyou-server/internal/ledger"
	"github.com/nickolss/madeforyou-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID   int64  `json:"accountId" required:"true" doc:"Linked account id"`
	Description string `json:"description" required:"true" minLength:"1" doc:"What the money moved for"`
	Amount      string `json:"amount" required:"true" doc:"Non-negative decimal amount"`
	Direction   string `json:"direction" required:"true" enum:"income,expense" doc:"Which way the money moved"`
	Category    string `json:"category" doc:"Free-form category label"`
	Date        string `json:"date" format:"date" doc:"Calendar date, defaults to today"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	Body   CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, userID string, create service.TransactionCreate) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	FinanceService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{FinanceService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Records a transaction and applies it to the linked account's balance.",
		Tags:          []string{"Finance"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
// An omitted date defaults to today.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionCreate, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if input.Body.Date != "" {
		date, err = time.Parse(dateLayout, input.Body.Date)
		if err != nil {
			return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return service.TransactionCreate{
		AccountID:   input.Body.AccountID,
		Description: input.Body.Description,
		Amount:      amount,
		Direction:   ledger.Direction(input.Body.Direction),
		Category:    input.Body.Category,
		Date:        date,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	transaction, err := h.FinanceService.CreateTransaction(ctx, input.UserID, create)
	if err != nil {
		return nil, transactionError(err, "failed to create transaction")
	}

	return &CreateTransactionOutput{Body: fromService(transaction)}, nil
}
