package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/nickolss/madeforyou-server/internal/ledger"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

// In-memory stand-ins for the account/transaction writers. Finds return
// copies so actions mutate their own snapshot, like rows scanned from the
// database; only the explicit write calls touch the shared state.

type fakeAccounts struct {
	seq  int64
	rows map[int64]*storage.Account

	// starting balances, so the invariant check can separate seeded money
	// from transaction contributions
	initial map[int64]decimal.Decimal

	failUpdateBalance bool
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		rows:    make(map[int64]*storage.Account),
		initial: make(map[int64]decimal.Decimal),
	}
}

func (f *fakeAccounts) List(_ context.Context, userID string) ([]*storage.Account, error) {
	var result []*storage.Account
	for _, row := range f.rows {
		if row.UserID == userID {
			copied := *row
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeAccounts) FindByID(_ context.Context, userID string, id int64) (*storage.Account, error) {
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, storage.ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeAccounts) FindByIDForUpdate(ctx context.Context, userID string, id int64) (*storage.Account, error) {
	return f.FindByID(ctx, userID, id)
}

func (f *fakeAccounts) Insert(_ context.Context, create *storage.AccountCreate) (*storage.Account, error) {
	f.seq++
	row := &storage.Account{
		ID:        f.seq,
		UserID:    create.UserID,
		Name:      create.Name,
		Type:      create.Type,
		Balance:   create.Balance,
		Bank:      create.Bank,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.rows[row.ID] = row
	f.initial[row.ID] = create.Balance
	copied := *row
	return &copied, nil
}

func (f *fakeAccounts) Update(_ context.Context, account *storage.Account) error {
	stored, ok := f.rows[account.ID]
	if !ok {
		return storage.ErrNotFound
	}
	// A direct balance patch rebases the aggregate.
	f.initial[account.ID] = f.initial[account.ID].Add(account.Balance.Sub(stored.Balance))
	copied := *account
	f.rows[account.ID] = &copied
	return nil
}

func (f *fakeAccounts) UpdateBalance(_ context.Context, id int64, balance decimal.Decimal) error {
	if f.failUpdateBalance {
		return errors.New("balance update failed")
	}
	row, ok := f.rows[id]
	if !ok {
		return storage.ErrNotFound
	}
	row.Balance = balance
	return nil
}

func (f *fakeAccounts) Delete(_ context.Context, userID string, id int64) error {
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return storage.ErrNotFound
	}
	delete(f.rows, id)
	delete(f.initial, id)
	return nil
}

type fakeTransactions struct {
	seq  int64
	rows map[int64]*storage.Transaction
}

func newFakeTransactions() *fakeTransactions {
	return &fakeTransactions{rows: make(map[int64]*storage.Transaction)}
}

func (f *fakeTransactions) List(_ context.Context, userID string, filter *storage.TransactionFilter) ([]*storage.Transaction, error) {
	var result []*storage.Transaction
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		if filter != nil && filter.AccountID != nil && row.AccountID != *filter.AccountID {
			continue
		}
		copied := *row
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeTransactions) FindByID(_ context.Context, userID string, id int64) (*storage.Transaction, error) {
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, storage.ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeTransactions) Insert(_ context.Context, create *storage.TransactionCreate) (*storage.Transaction, error) {
	f.seq++
	row := &storage.Transaction{
		ID:          f.seq,
		UserID:      create.UserID,
		AccountID:   create.AccountID,
		Description: create.Description,
		Amount:      create.Amount,
		Direction:   create.Direction,
		Category:    create.Category,
		Date:        create.Date,
		CreatedAt:   time.Now(),
	}
	f.rows[row.ID] = row
	copied := *row
	return &copied, nil
}

func (f *fakeTransactions) Update(_ context.Context, transaction *storage.Transaction) error {
	if _, ok := f.rows[transaction.ID]; !ok {
		return storage.ErrNotFound
	}
	copied := *transaction
	f.rows[transaction.ID] = &copied
	return nil
}

func (f *fakeTransactions) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

// ledgerFixture bundles the fakes behind a Writer, the way an action sees
// them inside a unit of work.
type ledgerFixture struct {
	accounts     *fakeAccounts
	transactions *fakeTransactions
}

func newLedgerFixture() *ledgerFixture {
	return &ledgerFixture{
		accounts:     newFakeAccounts(),
		transactions: newFakeTransactions(),
	}
}

func (fx *ledgerFixture) writer() *storage.Writer {
	return &storage.Writer{
		Accounts:     fx.accounts,
		Transactions: fx.transactions,
	}
}

func (fx *ledgerFixture) seedAccount(t *testing.T, userID, name, balance string) int64 {
	t.Helper()
	account, err := fx.accounts.Insert(context.Background(), &storage.AccountCreate{
		UserID:  userID,
		Name:    name,
		Type:    "checking",
		Balance: decimal.RequireFromString(balance),
	})
	require.NoError(t, err)
	return account.ID
}

func (fx *ledgerFixture) balance(t *testing.T, id int64) decimal.Decimal {
	t.Helper()
	row, ok := fx.accounts.rows[id]
	require.True(t, ok, "account %d missing", id)
	return row.Balance
}

// requireBalanceInvariant asserts the system's central property: every
// account's stored balance equals its starting balance plus the signed
// sum over all live transactions referencing it.
func (fx *ledgerFixture) requireBalanceInvariant(t *testing.T) {
	t.Helper()
	for id, account := range fx.accounts.rows {
		expected := fx.accounts.initial[id]
		for _, transaction := range fx.transactions.rows {
			if transaction.AccountID == id {
				expected = expected.Add(ledger.SignedAmount(transaction.Amount, transaction.Direction))
			}
		}
		require.True(t, account.Balance.Equal(expected),
			"account %d: stored balance %s != derived %s", id, account.Balance, expected)
	}
}
