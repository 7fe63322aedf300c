package kernel

import (
	"fmt"

	"neushop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative decimal amount. It backs unit prices, cart totals,
// and the subtotal/tax/total triple on order submissions.
//
// Money is a value object: immutable, compared by value, and never negative.
// The zero value is a valid zero amount, so an empty cart's total needs no
// special casing. Arithmetic is exact decimal arithmetic; no floats are
// involved at any point.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("19.99")
//	total := price.MulQuantity(3)          // 59.97
//	grand := total.Add(taxAmount)
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money amount from a decimal. Negative amounts are
// rejected with a ValueIsInvalidError.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a decimal string such as "10" or "19.99".
// Returns an error for malformed or negative input.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts. The result is always valid because
// both operands are non-negative.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulQuantity returns the amount multiplied by a line quantity.
// Quantity must already be validated as non-negative by the caller.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Decimal returns the underlying decimal value for storage adapters and
// serialization.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two amounts are numerically equal
// ("10" equals "10.00").
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the plain decimal representation. Implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.String()
}
