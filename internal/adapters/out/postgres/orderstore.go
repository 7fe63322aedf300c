package postgres

import (
	"context"
	"time"

	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/order"
	"neushop/internal/core/ports"
)

// OrderStore exposes the persisted order backend through the placement and
// read ports. Each operation runs in its own unit of work.
type OrderStore struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewOrderStore creates an order store over the unit of work factory.
func NewOrderStore(uowFactory ports.UnitOfWorkFactory) *OrderStore {
	return &OrderStore{uowFactory: uowFactory}
}

// PlaceOrder mints an identifier, creates a pending order from the
// submission payload, and persists it atomically. Either the order exists
// with all its lines or the transaction left nothing behind.
func (s *OrderStore) PlaceOrder(ctx context.Context, payload order.SubmissionPayload) (*order.Order, error) {
	aggregate, err := order.NewOrder(kernel.NewUUID(), payload, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// GetOrder retrieves an order by its unique identifier.
func (s *OrderStore) GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.uowFactory.Create().OrderRepository().Get(ctx, id)
}
