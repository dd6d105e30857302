package actions

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickolss/madeforyou-server/internal/ledger"
	"github.com/nickolss/madeforyou-server/internal/storage"
)

const testUser = "user-1"

var testDate = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

func createTransaction(t *testing.T, fx *ledgerFixture, userID string, accountID int64, amount string, direction ledger.Direction) *storage.Transaction {
	t.Helper()
	action := &CreateTransaction{
		UserID:    userID,
		AccountID: accountID,
		Amount:    decimal.RequireFromString(amount),
		Direction: direction,
		Date:      testDate,
	}
	require.NoError(t, action.Perform(context.Background(), fx.writer()))
	require.NotNil(t, action.Result)
	return action.Result
}

// -- CreateTransaction --

func TestCreateTransaction_IncomeIncreasesBalance(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, testUser, "Checking", "0")

	created := createTransaction(t, fx, testUser, accountID, "200", ledger.DirectionIncome)

	assert.Equal(t, accountID, created.AccountID)
	assert.True(t, fx.balance(t, accountID).Equal(decimal.RequireFromString("200")))
	fx.requireBalanceInvariant(t)
}

func TestCreateTransaction_ExpenseDecreasesBalance(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, testUser, "Checking", "100")

	createTransaction(t, fx, testUser, accountID, "42.50", ledger.DirectionExpense)

	assert.True(t, fx.balance(t, accountID).Equal(decimal.RequireFromString("57.50")))
	fx.requireBalanceInvariant(t)
}

func TestCreateTransaction_UnknownAccount(t *testing.T) {
	fx := newLedgerFixture()

	action := &CreateTransaction{
		UserID:    testUser,
		AccountID: 99,
		Amount:    decimal.RequireFromString("10"),
		Direction: ledger.DirectionIncome,
		Date:      testDate,
	}
	err := action.Perform(context.Background(), fx.writer())

	assert.ErrorIs(t, err, ErrLinkedAccountNotFound)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Empty(t, fx.transactions.rows, "no transaction persisted")
}

func TestCreateTransaction_ForeignAccount(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, "someone-else", "Theirs", "500")

	action := &CreateTransaction{
		UserID:    testUser,
		AccountID: accountID,
		Amount:    decimal.RequireFromString("10"),
		Direction: ledger.DirectionIncome,
		Date:      testDate,
	}
	err := action.Perform(context.Background(), fx.writer())

	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Empty(t, fx.transactions.rows)
	assert.True(t, fx.balance(t, accountID).Equal(decimal.RequireFromString("500")), "foreign balance untouched")
}

func TestCreateTransaction_NegativeAmount(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, testUser, "Checking", "0")

	action := &CreateTransaction{
		UserID:    testUser,
		AccountID: accountID,
		Amount:    decimal.RequireFromString("-5"),
		Direction: ledger.DirectionIncome,
		Date:      testDate,
	}

	assert.ErrorIs(t, action.Perform(context.Background(), fx.writer()), ErrAmountNegative)
	assert.Empty(t, fx.transactions.rows)
}

func TestCreateTransaction_InvalidDirection(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, testUser, "Checking", "0")

	action := &CreateTransaction{
		UserID:    testUser,
		AccountID: accountID,
		Amount:    decimal.RequireFromString("5"),
		Direction: ledger.Direction("transfer"),
		Date:      testDate,
	}

	assert.ErrorIs(t, action.Perform(context.Background(), fx.writer()), ErrDirectionInvalid)
	assert.Empty(t, fx.transactions.rows)
}

// -- DeleteTransaction --

func TestDeleteTransaction_RestoresBalanceExactly(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, testUser, "Checking", "123.45")

	created := createTransaction(t, fx, testUser, accountID, "67.89", ledger.DirectionIncome)

	action := &DeleteTransaction{UserID: testUser, ID: created.ID}
	require.NoError(t, action.Perform(context.Background(), fx.writer()))

	assert.True(t, fx.balance(t, accountID).Equal(decimal.RequireFromString("123.45")),
		"create then delete must be a no-op on the balance")
	assert.Empty(t, fx.transactions.rows)
	fx.requireBalanceInvariant(t)
}

func TestDeleteTransaction_ForeignTransaction(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, "someone-else", "Theirs", "0")
	created := createTransaction(t, fx, "someone-else", accountID, "30", ledger.DirectionIncome)

	action := &DeleteTransaction{UserID: testUser, ID: created.ID}
	err := action.Perform(context.Background(), fx.writer())

	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Len(t, fx.transactions.rows, 1, "row still present")
	assert.True(t, fx.balance(t, accountID).Equal(decimal.RequireFromString("30")))
}

// -- UpdateTransaction --

func TestUpdateTransaction_CategoryOnlyLeavesBalanceAlone(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, testUser, "Checking", "0")
	created := createTransaction(t, fx, testUser, accountID, "80", ledger.DirectionIncome)

	action := &UpdateTransaction{
		UserID:   testUser,
		ID:       created.ID,
		Category: omit.From("groceries"),
	}
	require.NoError(t, action.Perform(context.Background(), fx.writer()))

	assert.Equal(t, "groceries", action.Result.Category)
	assert.Equal(t, accountID, action.Result.AccountID)
	assert.True(t, action.Result.Amount.Equal(decimal.RequireFromString("80")))
	assert.Equal(t, ledger.DirectionIncome, action.Result.Direction)
	assert.True(t, fx.balance(t, accountID).Equal(decimal.RequireFromString("80")),
		"revert then re-apply with identical values is a no-op")
	fx.requireBalanceInvariant(t)
}

func TestUpdateTransaction_AmountChangeRederivesBalance(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, testUser, "Checking", "0")
	created := createTransaction(t, fx, testUser, accountID, "200", ledger.DirectionIncome)

	action := &UpdateTransaction{
		UserID: testUser,
		ID:     created.ID,
		Amount: omit.From(decimal.RequireFromString("75")),
	}
	require.NoError(t, action.Perform(context.Background(), fx.writer()))

	assert.True(t, fx.balance(t, accountID).Equal(decimal.RequireFromString("75")))
	fx.requireBalanceInvariant(t)
}

func TestUpdateTransaction_DirectionFlip(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, testUser, "Checking", "0")
	created := createTransaction(t, fx, testUser, accountID, "40", ledger.DirectionIncome)

	action := &UpdateTransaction{
		UserID:    testUser,
		ID:        created.ID,
		Direction: omit.From(ledger.DirectionExpense),
	}
	require.NoError(t, action.Perform(context.Background(), fx.writer()))

	assert.True(t, fx.balance(t, accountID).Equal(decimal.RequireFromString("-40")))
	fx.requireBalanceInvariant(t)
}

func TestUpdateTransaction_CrossAccountMove(t *testing.T) {
	fx := newLedgerFixture()
	accountX := fx.seedAccount(t, testUser, "X", "100")
	accountY := fx.seedAccount(t, testUser, "Y", "50")

	created := createTransaction(t, fx, testUser, accountX, "30", ledger.DirectionIncome)
	require.True(t, fx.balance(t, accountX).Equal(decimal.RequireFromString("130")))

	action := &UpdateTransaction{
		UserID:    testUser,
		ID:        created.ID,
		AccountID: omit.From(accountY),
	}
	require.NoError(t, action.Perform(context.Background(), fx.writer()))

	assert.True(t, fx.balance(t, accountX).Equal(decimal.RequireFromString("100")),
		"old account loses the contribution")
	assert.True(t, fx.balance(t, accountY).Equal(decimal.RequireFromString("80")),
		"new account gains the contribution")
	fx.requireBalanceInvariant(t)
}

// Changing account, amount, and direction at once: the revert must use the
// original triple and the apply the post-merge triple, never a mix.
func TestUpdateTransaction_MoveAndReshapeTogether(t *testing.T) {
	fx := newLedgerFixture()
	accountX := fx.seedAccount(t, testUser, "X", "100")
	accountY := fx.seedAccount(t, testUser, "Y", "0")

	created := createTransaction(t, fx, testUser, accountX, "30", ledger.DirectionIncome)

	action := &UpdateTransaction{
		UserID:    testUser,
		ID:        created.ID,
		AccountID: omit.From(accountY),
		Amount:    omit.From(decimal.RequireFromString("50")),
		Direction: omit.From(ledger.DirectionExpense),
	}
	require.NoError(t, action.Perform(context.Background(), fx.writer()))

	assert.True(t, fx.balance(t, accountX).Equal(decimal.RequireFromString("100")))
	assert.True(t, fx.balance(t, accountY).Equal(decimal.RequireFromString("-50")))
	fx.requireBalanceInvariant(t)
}

func TestUpdateTransaction_ForeignTransaction(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, "someone-else", "Theirs", "0")
	created := createTransaction(t, fx, "someone-else", accountID, "30", ledger.DirectionIncome)

	action := &UpdateTransaction{
		UserID: testUser,
		ID:     created.ID,
		Amount: omit.From(decimal.RequireFromString("999")),
	}
	err := action.Perform(context.Background(), fx.writer())

	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.True(t, fx.balance(t, accountID).Equal(decimal.RequireFromString("30")), "nothing mutated")
	assert.True(t, fx.transactions.rows[created.ID].Amount.Equal(decimal.RequireFromString("30")))
}

func TestUpdateTransaction_RetargetToUnknownAccount(t *testing.T) {
	fx := newLedgerFixture()
	accountID := fx.seedAccount(t, testUser, "Checking", "0")
	created := createTransaction(t, fx, testUser, accountID, "30", ledger.DirectionIncome)

	action := &UpdateTransaction{
		UserID:    testUser,
		ID:        created.ID,
		AccountID: omit.From(int64(404)),
	}
	err := action.Perform(context.Background(), fx.writer())

	assert.ErrorIs(t, err, ErrLinkedAccountNotFound)
	assert.True(t, fx.balance(t, accountID).Equal(decimal.RequireFromString("30")), "nothing mutated")
}

// The canonical regression: every intermediate balance is asserted.
func TestLedgerScenario_CreatePatchDelete(t *testing.T) {
	fx := newLedgerFixture()
	checking := fx.seedAccount(t, testUser, "Checking", "0")

	first := createTransaction(t, fx, testUser, checking, "200", ledger.DirectionIncome)
	assert.True(t, fx.balance(t, checking).Equal(decimal.RequireFromString("200")))

	second := createTransaction(t, fx, testUser, checking, "50", ledger.DirectionExpense)
	assert.True(t, fx.balance(t, checking).Equal(decimal.RequireFromString("150")))

	patch := &UpdateTransaction{
		UserID: testUser,
		ID:     first.ID,
		Amount: omit.From(decimal.RequireFromString("100")),
	}
	require.NoError(t, patch.Perform(context.Background(), fx.writer()))
	assert.True(t, fx.balance(t, checking).Equal(decimal.RequireFromString("50")),
		"150 - 200 + 100")

	del := &DeleteTransaction{UserID: testUser, ID: second.ID}
	require.NoError(t, del.Perform(context.Background(), fx.writer()))
	assert.True(t, fx.balance(t, checking).Equal(decimal.RequireFromString("100")),
		"reverting the 50 expense leaves 100")

	fx.requireBalanceInvariant(t)
}
