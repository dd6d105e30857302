package actions

import (
	"context"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickolss/madeforyou-server/internal/storage"
)

func TestCreateAccount(t *testing.T) {
	fx := newLedgerFixture()

	action := &CreateAccount{
		UserID:  testUser,
		Name:    "Checking",
		Type:    "checking",
		Balance: decimal.RequireFromString("12.34"),
		Bank:    "Acme Bank",
	}
	require.NoError(t, action.Perform(context.Background(), fx.writer()))

	require.NotNil(t, action.Result)
	assert.Equal(t, int64(1), action.Result.ID)
	assert.Equal(t, "Checking", action.Result.Name)
	assert.True(t, action.Result.Balance.Equal(decimal.RequireFromString("12.34")))
}

func TestUpdateAccount_PartialPatch(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, testUser, "Checking", "100")

	action := &UpdateAccount{
		UserID: testUser,
		ID:     accountID,
		Name:   omit.From("Daily driver"),
		Bank:   omit.From("Acme Bank"),
	}
	require.NoError(t, action.Perform(context.Background(), fx.writer()))

	assert.Equal(t, "Daily driver", action.Result.Name)
	assert.Equal(t, "Acme Bank", action.Result.Bank)
	assert.Equal(t, "checking", action.Result.Type, "unpatched field kept")
	assert.True(t, action.Result.Balance.Equal(decimal.RequireFromString("100")), "unpatched balance kept")
}

func TestUpdateAccount_BalanceRebase(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, testUser, "Checking", "100")

	action := &UpdateAccount{
		UserID:  testUser,
		ID:      accountID,
		Balance: omit.From(decimal.RequireFromString("250.50")),
	}
	require.NoError(t, action.Perform(context.Background(), fx.writer()))

	assert.True(t, fx.balance(t, accountID).Equal(decimal.RequireFromString("250.50")))
}

func TestUpdateAccount_ForeignAccount(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, "someone-else", "Theirs", "100")

	action := &UpdateAccount{
		UserID: testUser,
		ID:     accountID,
		Name:   omit.From("hijacked"),
	}
	err := action.Perform(context.Background(), fx.writer())

	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, "Theirs", fx.accounts.rows[accountID].Name, "nothing mutated")
}

func TestDeleteAccount(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, testUser, "Checking", "0")

	action := &DeleteAccount{UserID: testUser, ID: accountID}
	require.NoError(t, action.Perform(context.Background(), fx.writer()))

	assert.Empty(t, fx.accounts.rows)
}

func TestDeleteAccount_ForeignAccount(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, "someone-else", "Theirs", "0")

	action := &DeleteAccount{UserID: testUser, ID: accountID}
	err := action.Perform(context.Background(), fx.writer())

	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Len(t, fx.accounts.rows, 1)
}
