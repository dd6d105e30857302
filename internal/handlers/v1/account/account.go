package account

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nickolss/madeforyou-server/internal/service"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

// Account is the API response model for an account.
// It is used only for responses, not for request bodies.
type Account struct {
	ID        int64  `json:"id" doc:"Account id"`
	Name      string `json:"name" doc:"Display name"`
	Type      string `json:"type" doc:"Account type, e.g. checking or savings"`
	Balance   string `json:"balance" doc:"Current decimal balance"`
	Bank      string `json:"bank" doc:"Bank or institution name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string `json:"updatedAt" doc:"RFC3339 last update time"`
}

func fromService(account *service.Account) Account {
	return Account{
		ID:        account.ID,
		Name:      account.Name,
		Type:      account.Type,
		Balance:   account.Balance.String(),
		Bank:      account.Bank,
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
		UpdatedAt: account.UpdatedAt.Format(time.RFC3339),
	}
}

func accountError(err error, msg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return huma.NewError(http.StatusNotFound, "account not found")
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}
