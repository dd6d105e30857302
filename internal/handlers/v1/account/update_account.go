package account

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// UpdateAccountBody is the request body for updating an account.
// Omitted fields keep their current values. Setting balance rebases the
// account rather than recording a transaction.
type UpdateAccountBody struct {
	Name    *string `json:"name,omitempty" minLength:"1" doc:"Display name"`
	Type    *string `json:"type,omitempty" minLength:"1" doc:"Account type"`
	Bank    *string `json:"bank,omitempty" doc:"Bank or institution name"`
	Balance *string `json:"balance,omitempty" doc:"New decimal balance"`
}

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	ID     int64  `path:"id" doc:"Account id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
	Body   UpdateAccountBody
}

// UpdateAccountOutput is the Huma output for updating an account.
type UpdateAccountOutput struct {
	Body Account
}

// accountUpdater is the interface for updating accounts.
type accountUpdater interface {
	UpdateAccount(ctx context.Context, userID string, id int64, patch service.AccountPatch) (*service.Account, error)
}

// UpdateAccountHandler handles PATCH /v1/accounts/{id}.
type UpdateAccountHandler struct {
	FinanceService accountUpdater
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{FinanceService: svc}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPatch,
		Path:        "/v1/accounts/{id}",
		Summary:     "Update account",
		Description: "Applies a partial update to an account.",
		Tags:        []string{"Finance"},
	}, h.handle)
}

// parseUpdateAccountInput turns the sparse body into a patch. Only fields
// present in the request end up set.
func parseUpdateAccountInput(input *UpdateAccountInput) (service.AccountPatch, error) {
	patch := service.AccountPatch{
		Name: omit.FromPtr(input.Body.Name),
		Type: omit.FromPtr(input.Body.Type),
		Bank: omit.FromPtr(input.Body.Bank),
	}

	if input.Body.Balance != nil {
		balance, err := decimal.NewFromString(*input.Body.Balance)
		if err != nil {
			return service.AccountPatch{}, huma.NewError(http.StatusBadRequest, "invalid balance", err)
		}
		patch.Balance = omit.From(balance)
	}

	return patch, nil
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	patch, err := parseUpdateAccountInput(input)
	if err != nil {
		return nil, err
	}

	account, err := h.FinanceService.UpdateAccount(ctx, input.UserID, input.ID, patch)
	if err != nil {
		return nil, accountError(err, "failed to update account")
	}

	return &UpdateAccountOutput{Body: fromService(account)}, nil
}
