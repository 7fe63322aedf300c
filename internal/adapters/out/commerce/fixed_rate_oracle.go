package commerce

import (
	"context"

	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/ports"

	"github.com/shopspring/decimal"
)

// FixedRateOracle prices carts locally with a flat tax rate. Used when no
// remote pricing endpoint is configured; the quote's subtotal is derived
// from the lines themselves, so it always matches the cart total.
type FixedRateOracle struct {
	taxRate decimal.Decimal
}

// NewFixedRateOracle creates an oracle with the given tax rate, for example
// 0.1 for ten percent.
func NewFixedRateOracle(taxRate decimal.Decimal) *FixedRateOracle {
	return &FixedRateOracle{taxRate: taxRate}
}

// PriceCart sums the lines and applies the flat rate, rounding the tax to
// two decimal places.
func (o *FixedRateOracle) PriceCart(_ context.Context, lines []cart.Line) (ports.Quote, error) {
	subtotal := kernel.ZeroMoney()
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
	}

	tax, err := kernel.NewMoney(subtotal.Decimal().Mul(o.taxRate).Round(2))
	if err != nil {
		return ports.Quote{}, err
	}

	return ports.Quote{Subtotal: subtotal, Tax: tax}, nil
}
