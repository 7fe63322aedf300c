package commands

import (
	"errors"

	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/order"
	"neushop/internal/pkg/guard"
)

var (
	ErrBulkChangeOrderStatusCommandIsNotConstructed = errors.New(
		"BulkChangeOrderStatusCommand must be created via NewBulkChangeOrderStatusCommand constructor",
	)
	ErrBulkChangeHasNoOrders = errors.New("bulk status change requires at least one order")
)

// BulkChangeOrderStatusCommand represents a staff request to move several
// orders to the same target status in one action. Each order is judged
// independently against its own current status; one order's failure never
// blocks the others.
type BulkChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	target   order.Status
	actor    order.Actor
	reason   string

	guard guard.ConstructorGuard
}

// NewBulkChangeOrderStatusCommand creates a command for a bulk status change.
func NewBulkChangeOrderStatusCommand(
	orderIDs []kernel.UUID,
	target order.Status,
	actor order.Actor,
	reason string,
) (BulkChangeOrderStatusCommand, error) {
	if len(orderIDs) == 0 {
		return BulkChangeOrderStatusCommand{}, ErrBulkChangeHasNoOrders
	}

	joined := []error{target.Validate(), actor.Validate()}
	for _, id := range orderIDs {
		joined = append(joined, id.Validate())
	}
	if err := errors.Join(joined...); err != nil {
		return BulkChangeOrderStatusCommand{}, err
	}

	ids := make([]kernel.UUID, len(orderIDs))
	copy(ids, orderIDs)

	return BulkChangeOrderStatusCommand{
		orderIDs: ids,
		target:   target,
		actor:    actor,
		reason:   reason,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrBulkChangeOrderStatusCommandIsNotConstructed)
}

// OrderIDs returns a copy of the targeted order identifiers.
func (c BulkChangeOrderStatusCommand) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.orderIDs))
	copy(ids, c.orderIDs)
	return ids
}

// Target returns the requested status.
func (c BulkChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// Actor returns who is requesting the change.
func (c BulkChangeOrderStatusCommand) Actor() order.Actor {
	return c.actor
}

// Reason returns the free-text reason, possibly empty.
func (c BulkChangeOrderStatusCommand) Reason() string {
	return c.reason
}
