package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
)

// GetAccountInput is the Huma input for fetching a single account.
type GetAccountInput struct {
	ID     int64  `path:"id" doc:"Account id"`
	UserID string `query:"userId" required:"true" doc:"Authenticated user's uid"`
}

// GetAccountOutput is the Huma output for fetching a single account.
type GetAccountOutput struct {
	Body Account
}

// accountGetter is the interface for fetching a single account.
type accountGetter interface {
	GetAccount(ctx context.Context, userID string, id int64) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/accounts/{id}.
type GetAccountHandler struct {
	FinanceService accountGetter
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{FinanceService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{id}",
		Summary:     "Get account",
		Description: "Returns a single account by id.",
		Tags:        []string{"Finance"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	account, err := h.FinanceService.GetAccount(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, accountError(err, "failed to get account")
	}
	return &GetAccountOutput{Body: fromService(account)}, nil
}
