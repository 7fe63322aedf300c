package commands

import (
	"context"
	"time"

	"neushop/internal/core/ports"
	"neushop/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler applies a lifecycle transition to a
// stored order and mirrors it to the upstream status gateway.
//
// The transition is applied optimistically: the aggregate validates and
// applies it locally first, then the gateway is called. A gateway failure
// rolls the local change back and the command fails with a
// RemoteFailureError; the stored order keeps its previous status.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.OrderStatusGateway
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.OrderStatusGateway,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the status change command.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	change, err := aggregate.BeginStatusChange(cmd.Target(), cmd.Actor(), cmd.Reason(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = h.gateway.SetOrderStatus(ctx, cmd.OrderID(), cmd.Target(), cmd.Reason()); err != nil {
		change.Rollback()
		return errs.NewRemoteFailureError("set order status", err)
	}
	change.Commit()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
