package service

import (
	"context"

	"github.com/nickolss/madeforyou-server/internal/operator/actions"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

// FinanceService handles account and transaction business logic. Reads go
// straight to storage; every write is dispatched to the processor so the
// balance bookkeeping happens inside a single unit of work.
type FinanceService struct {
	storage   *storage.Storage
	processor Processor
}

// NewFinanceService creates a new FinanceService.
func NewFinanceService(store *storage.Storage, processor Processor) *FinanceService {
	return &FinanceService{storage: store, processor: processor}
}

// ListAccounts returns all of the user's accounts.
func (s *FinanceService) ListAccounts(ctx context.Context, userID string) ([]*Account, error) {
	rows, err := s.storage.Accounts.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts := make([]*Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromRow(row)
	}
	return accounts, nil
}

// GetAccount returns a single account by id.
func (s *FinanceService) GetAccount(ctx context.Context, userID string, id int64) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return accountFromRow(row), nil
}

// CreateAccount creates a new account.
func (s *FinanceService) CreateAccount(ctx context.Context, userID string, create AccountCreate) (*Account, error) {
	action := &actions.CreateAccount{
		UserID:  userID,
		Name:    create.Name,
		Type:    create.Type,
		Balance: create.Balance,
		Bank:    create.Bank,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return accountFromRow(action.Result), nil
}

// UpdateAccount applies a partial update to an account.
func (s *FinanceService) UpdateAccount(ctx context.Context, userID string, id int64, patch AccountPatch) (*Account, error) {
	action := &actions.UpdateAccount{
		UserID:  userID,
		ID:      id,
		Name:    patch.Name,
		Type:    patch.Type,
		Bank:    patch.Bank,
		Balance: patch.Balance,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return accountFromRow(action.Result), nil
}

// DeleteAccount removes an account.
func (s *FinanceService) DeleteAccount(ctx context.Context, userID string, id int64) error {
	return s.processor.Process(ctx, &actions.DeleteAccount{UserID: userID, ID: id})
}

// ListTransactions returns the user's transactions, optionally narrowed to
// one account.
func (s *FinanceService) ListTransactions(ctx context.Context, userID string, accountID *int64) ([]*Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, userID, &storage.TransactionFilter{AccountID: accountID})
	if err != nil {
		return nil, err
	}

	transactions := make([]*Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromRow(row)
	}
	return transactions, nil
}

// CreateTransaction records a transaction and applies it to the linked
// account's balance.
func (s *FinanceService) CreateTransaction(ctx context.Context, userID string, create TransactionCreate) (*Transaction, error) {
	action := &actions.CreateTransaction{
		UserID:      userID,
		AccountID:   create.AccountID,
		Description: create.Description,
		Amount:      create.Amount,
		Direction:   create.Direction,
		Category:    create.Category,
		Date:        create.Date,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return transactionFromRow(action.Result), nil
}

// UpdateTransaction applies a partial update to a transaction, moving its
// balance contribution along with it.
func (s *FinanceService) UpdateTransaction(ctx context.Context, userID string, id int64, patch TransactionPatch) (*Transaction, error) {
	action := &actions.UpdateTransaction{
		UserID:      userID,
		ID:          id,
		AccountID:   patch.AccountID,
		Description: patch.Description,
		Amount:      patch.Amount,
		Direction:   patch.Direction,
		Category:    patch.Category,
		Date:        patch.Date,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return transactionFromRow(action.Result), nil
}

// DeleteTransaction removes a transaction and reverts its contribution from
// the linked account's balance.
func (s *FinanceService) DeleteTransaction(ctx context.Context, userID string, id int64) error {
	return s.processor.Process(ctx, &actions.DeleteTransaction{UserID: userID, ID: id})
}
