package commands

import (
	"context"

	"neushop/internal/core/domain/model/kernel"
)

// StatusChangeOutcome is the per-order result of a bulk status change.
// Err is nil for orders that transitioned successfully.
type StatusChangeOutcome struct {
	OrderID kernel.UUID
	Err     error
}

// BulkChangeOrderStatusCommandHandler fans a bulk status change out to the
// single-order handler, one order at a time. Orders succeed or fail
// independently; the handler returns an outcome per order in input order
// and an error only when the bulk operation itself could not run.
type BulkChangeOrderStatusCommandHandler struct {
	single ChangeOrderStatusCommandHandler
}

// NewBulkChangeOrderStatusCommandHandler creates a handler for bulk status
// changes on top of the single-order handler.
func NewBulkChangeOrderStatusCommandHandler(single ChangeOrderStatusCommandHandler) BulkChangeOrderStatusCommandHandler {
	return BulkChangeOrderStatusCommandHandler{single: single}
}

// Handle processes the bulk command and returns one outcome per order.
func (h *BulkChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd BulkChangeOrderStatusCommand,
) ([]StatusChangeOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ids := cmd.OrderIDs()
	outcomes := make([]StatusChangeOutcome, 0, len(ids))
	for _, id := range ids {
		outcomes = append(outcomes, StatusChangeOutcome{
			OrderID: id,
			Err:     h.changeOne(ctx, id, cmd),
		})
	}

	return outcomes, nil
}

func (h *BulkChangeOrderStatusCommandHandler) changeOne(
	ctx context.Context,
	id kernel.UUID,
	cmd BulkChangeOrderStatusCommand,
) error {
	single, err := NewChangeOrderStatusCommand(id, cmd.Target(), cmd.Actor(), cmd.Reason())
	if err != nil {
		return err
	}
	return h.single.Handle(ctx, single)
}
