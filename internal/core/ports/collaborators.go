// Package ports defines the contracts between the application core and the
// outside world: the remote commerce collaborators, the session store, and
// the order persistence layer. These interfaces establish contracts between
// the domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/order"
)

// Quote is the priced result for a cart: the subtotal the collaborator
// computed for the lines and the tax it added on top.
type Quote struct {
	Subtotal kernel.Money
	Tax      kernel.Money
}

// Total returns subtotal plus tax.
func (q Quote) Total() kernel.Money {
	return q.Subtotal.Add(q.Tax)
}

// PricingOracle prices a cart ahead of submission. The returned subtotal is
// authoritative: when it disagrees with the locally derived cart total the
// submission must fail rather than charge a stale price.
type PricingOracle interface {
	// PriceCart computes the quote for the given lines.
	PriceCart(ctx context.Context, lines []cart.Line) (Quote, error)
}

// OrderPlacer hands a finished submission to the order backend. The backend
// owns the order from here: it mints the identifier and returns the created
// aggregate, pending and unpaid.
type OrderPlacer interface {
	// PlaceOrder creates an order from the payload and returns it.
	// Placement either fully succeeds or leaves no order behind.
	PlaceOrder(ctx context.Context, payload order.SubmissionPayload) (*order.Order, error)
}

// OrderReader retrieves placed orders.
type OrderReader interface {
	// GetOrder retrieves an order by its unique identifier. A missing order
	// is reported with an ObjectNotFoundError.
	GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// OrderStatusGateway applies a lifecycle transition on the order backend.
// The storefront applies the transition optimistically first; a gateway
// failure rolls the local change back.
type OrderStatusGateway interface {
	// SetOrderStatus records the new status for the order, with the reason
	// when the target requires one.
	SetOrderStatus(ctx context.Context, id kernel.UUID, status order.Status, reason string) error
}

// CartMirror pushes a best-effort copy of a session's cart to a remote
// store. Mirroring is never authoritative: failures are logged and retried
// on the next run, and the local cart stays the source of truth.
type CartMirror interface {
	MirrorCart(ctx context.Context, sessionID kernel.UUID, lines []cart.Line) error
}
