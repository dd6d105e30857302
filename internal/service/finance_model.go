package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/nickolss/madeforyou-server/internal/ledger"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

// Account represents an account in the service layer.
type Account struct {
	ID        int64
	Name      string
	Type      string
	Balance   decimal.Decimal
	Bank      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountCreate carries the fields for a new account.
type AccountCreate struct {
	Name    string
	Type    string
	Balance decimal.Decimal
	Bank    string
}

// AccountPatch carries a partial account update. Unset fields keep their
// current values.
type AccountPatch struct {
	Name    omit.Val[string]
	Type    omit.Val[string]
	Bank    omit.Val[string]
	Balance omit.Val[decimal.Decimal]
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          int64
	AccountID   int64
	Description string
	Amount      decimal.Decimal
	Direction   ledger.Direction
	Category    string
	Date        time.Time
	CreatedAt   time.Time
}

// TransactionCreate carries the fields for a new transaction.
type TransactionCreate struct {
	AccountID   int64
	Description string
	Amount      decimal.Decimal
	Direction   ledger.Direction
	Category    string
	Date        time.Time
}

// TransactionPatch carries a partial transaction update. Unset fields keep
// their current values.
type TransactionPatch struct {
	AccountID   omit.Val[int64]
	Description omit.Val[string]
	Amount      omit.Val[decimal.Decimal]
	Direction   omit.Val[ledger.Direction]
	Category    omit.Val[string]
	Date        omit.Val[time.Time]
}

func accountFromRow(row *storage.Account) *Account {
	return &Account{
		ID:        row.ID,
		Name:      row.Name,
		Type:      row.Type,
		Balance:   row.Balance,
		Bank:      row.Bank,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func transactionFromRow(row *storage.Transaction) *Transaction {
	return &Transaction{
		ID:          row.ID,
		AccountID:   row.AccountID,
		Description: row.Description,
		Amount:      row.Amount,
		Direction:   row.Direction,
		Category:    row.Category,
		Date:        row.Date,
		CreatedAt:   row.CreatedAt,
	}
}
