// Package ledger holds the pure balance arithmetic shared by the
// transaction write path. Nothing here touches storage.
package ledger

import "github.com/shopspring/decimal"

// Direction states whether a transaction increases or decreases its
// account's balance.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == DirectionIncome || d == DirectionExpense
}

// Opposite returns the inverse direction.
func (d Direction) Opposite() Direction {
	if d == DirectionIncome {
		return DirectionExpense
	}
	return DirectionIncome
}

// SignedAmount returns +amount for income and -amount for expense.
// An account's balance must equal the sum of SignedAmount over all of
// its live transactions.
func SignedAmount(amount decimal.Decimal, direction Direction) decimal.Decimal {
	if direction == DirectionIncome {
		return amount
	}
	return amount.Neg()
}

// Apply incorporates a transaction's effect into a balance.
func Apply(balance, amount decimal.Decimal, direction Direction) decimal.Decimal {
	return balance.Add(SignedAmount(amount, direction))
}

// Revert removes a previously applied effect from a balance. It is the
// exact algebraic inverse of Apply: Revert(Apply(b, a, d), a, d) == b.
func Revert(balance, amount decimal.Decimal, direction Direction) decimal.Decimal {
	return Apply(balance, amount, direction.Opposite())
}
