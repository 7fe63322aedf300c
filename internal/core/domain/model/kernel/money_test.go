package kernel_test

import (
	"testing"

	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept non-negative amounts", func(t *testing.T) {
		money, err := kernel.NewMoney(decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.Equal(t, "10", money.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		money, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, money.IsZero())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		money, err := kernel.NewMoneyFromString("19.99")

		require.NoError(t, err)
		assert.Equal(t, "19.99", money.String())
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("nineteen")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative input", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-5.00")

		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add sums amounts exactly", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("0.10")
		b, _ := kernel.NewMoneyFromString("0.20")

		sum := a.Add(b)

		expected, _ := kernel.NewMoneyFromString("0.30")
		assert.True(t, sum.IsEqual(expected))
	})

	t.Run("MulQuantity scales by line quantity", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromString("19.99")

		total := price.MulQuantity(3)

		expected, _ := kernel.NewMoneyFromString("59.97")
		assert.True(t, total.IsEqual(expected))
	})

	t.Run("MulQuantity by zero yields zero", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromString("19.99")

		assert.True(t, price.MulQuantity(0).IsZero())
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("equality ignores trailing zeros", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("10")
		b, _ := kernel.NewMoneyFromString("10.00")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("zero value equals ZeroMoney", func(t *testing.T) {
		var zero kernel.Money

		assert.True(t, zero.IsEqual(kernel.ZeroMoney()))
	})
}
