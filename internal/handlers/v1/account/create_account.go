package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name    string `json:"name" required:"true" minLength:"1" doc:"Display name"`
	Type    string `json:"type" required:"true" minLength:"1" doc:"Account type, e.g. checking or savings"`
	Balance string `json:"balance" doc:"Opening decimal balance, defaults to 0"`
	Bank    string `json:"bank" doc:"Bank or institution name"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	Body   CreateAccountBody
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Body Account
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, userID string, create service.AccountCreate) (*service.Account, error)
}

// CreateAccountHandler handles POST /v1/accounts.
type CreateAccountHandler struct {
	FinanceService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{FinanceService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/accounts",
		Summary:       "Create account",
		Description:   "Creates a new account with an optional opening balance.",
		Tags:          []string{"Finance"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateAccountInput parses and validates the API input. An omitted
// balance defaults to zero.
func parseCreateAccountInput(input *CreateAccountInput) (service.AccountCreate, error) {
	balance := decimal.Zero
	if input.Body.Balance != "" {
		parsed, err := decimal.NewFromString(input.Body.Balance)
		if err != nil {
			return service.AccountCreate{}, huma.NewError(http.StatusBadRequest, "invalid balance", err)
		}
		balance = parsed
	}

	return service.AccountCreate{
		Name:    input.Body.Name,
		Type:    input.Body.Type,
		Balance: balance,
		Bank:    input.Body.Bank,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	create, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	account, err := h.FinanceService.CreateAccount(ctx, input.UserID, create)
	if err != nil {
		return nil, accountError(err, "failed to create account")
	}

	return &CreateAccountOutput{Body: fromService(account)}, nil
}
