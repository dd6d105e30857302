package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	ID     int64  `path:"id" doc:"Account id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// DeleteAccountOutput is the Huma output for deleting an account.
type DeleteAccountOutput struct{}

// accountDeleter is the interface for deleting accounts.
type accountDeleter interface {
	DeleteAccount(ctx context.Context, userID string, id int64) error
}

// DeleteAccountHandler handles DELETE /v1/accounts/{id}.
type DeleteAccountHandler struct {
	FinanceService accountDeleter
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{FinanceService: svc}
}

// Register registers the delete account endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/v1/accounts/{id}",
		Summary:       "Delete account",
		Description:   "Removes an account and, through the schema's cascade, its transactions.",
		Tags:          []string{"Finance"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	if err := h.FinanceService.DeleteAccount(ctx, input.UserID, input.ID); err != nil {
		return nil, accountError(err, "failed to delete account")
	}
	return &DeleteAccountOutput{}, nil
}
