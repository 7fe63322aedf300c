// Package queries contains read-only operations over the order store.
// Queries bypass the aggregate layer and read projections directly from the
// database, per the CQRS split used across the application layer.
package queries

import (
	"errors"
	"time"

	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/order"
	"neushop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its item lines.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order's unique identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderLineResponse is one item line of an order projection.
type OrderLineResponse struct {
	ProductID string
	Name      string
	UnitPrice kernel.Money
	Quantity  int
	Color     string
	Size      string
	ImageURL  string
}

// GetOrderQueryResponse is the full order projection returned to callers.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	Status        order.Status
	PaymentStatus order.PaymentStatus
	Subtotal      kernel.Money
	Tax           kernel.Money
	Total         kernel.Money
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Lines         []OrderLineResponse
}
