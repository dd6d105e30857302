package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApply_Income(t *testing.T) {
	balance := decimal.RequireFromString("100.00")
	amount := decimal.RequireFromString("42.50")

	got := Apply(balance, amount, DirectionIncome)
	assert.True(t, got.Equal(decimal.RequireFromString("142.50")))
}

func TestApply_Expense(t *testing.T) {
	balance := decimal.RequireFromString("100.00")
	amount := decimal.RequireFromString("42.50")

	got := Apply(balance, amount, DirectionExpense)
	assert.True(t, got.Equal(decimal.RequireFromString("57.50")))
}

func TestRevert_IsInverseOfApply(t *testing.T) {
	cases := []struct {
		name      string
		balance   string
		amount    string
		direction Direction
	}{
		{"income", "100.00", "42.50", DirectionIncome},
		{"expense", "100.00", "42.50", DirectionExpense},
		{"zero amount", "13.37", "0", DirectionIncome},
		{"negative balance", "-250.75", "99.99", DirectionExpense},
		{"sub-cent precision", "0.001", "0.0005", DirectionIncome},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			balance := decimal.RequireFromString(tc.balance)
			amount := decimal.RequireFromString(tc.amount)

			applied := Apply(balance, amount, tc.direction)
			reverted := Revert(applied, amount, tc.direction)
			assert.True(t, reverted.Equal(balance),
				"expected %s, got %s", balance, reverted)
		})
	}
}

// Binary floating point would drift here; decimal must not.
func TestApplyRevert_NoRoundingDrift(t *testing.T) {
	balance := decimal.Zero
	amount := decimal.RequireFromString("0.1")

	for i := 0; i < 1000; i++ {
		balance = Apply(balance, amount, DirectionIncome)
	}
	assert.True(t, balance.Equal(decimal.RequireFromString("100")))

	for i := 0; i < 1000; i++ {
		balance = Revert(balance, amount, DirectionIncome)
	}
	assert.True(t, balance.Equal(decimal.Zero))
}

func TestSignedAmount(t *testing.T) {
	amount := decimal.RequireFromString("30")
	assert.True(t, SignedAmount(amount, DirectionIncome).Equal(amount))
	assert.True(t, SignedAmount(amount, DirectionExpense).Equal(amount.Neg()))
}

func TestDirection_Valid(t *testing.T) {
	assert.True(t, DirectionIncome.Valid())
	assert.True(t, DirectionExpense.Valid())
	assert.False(t, Direction("transfer").Valid())
	assert.False(t, Direction("").Valid())
}
