package commands_test

import (
	"context"
	"errors"
	"sync"

	"neushop/internal/core/application/usecases/commands"
	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/order"
	"neushop/internal/core/domain/model/session"
	"neushop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// fakeSessionStore is an in-memory session store creating sessions on first
// use, mirroring the production store's Do contract.
type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[kernel.UUID]*session.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[kernel.UUID]*session.Session{}}
}

func (f *fakeSessionStore) Do(_ context.Context, id kernel.UUID, fn func(s *session.Session) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[id]
	if !ok {
		var err error
		s, err = session.NewSession(id)
		if err != nil {
			return err
		}
		f.sessions[id] = s
	}
	return fn(s)
}

func (f *fakeSessionStore) Range(_ context.Context, fn func(s *session.Session) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, s := range f.sessions {
		if err := fn(s); err != nil {
			return err
		}
	}
	return nil
}

type MockPricingOracle struct{ mock.Mock }

func (m *MockPricingOracle) PriceCart(ctx context.Context, lines []cart.Line) (ports.Quote, error) {
	args := m.Called(ctx, lines)
	return args.Get(0).(ports.Quote), args.Error(1)
}

type MockOrderPlacer struct{ mock.Mock }

func (m *MockOrderPlacer) PlaceOrder(ctx context.Context, payload order.SubmissionPayload) (*order.Order, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderStatusGateway struct{ mock.Mock }

func (m *MockOrderStatusGateway) SetOrderStatus(
	ctx context.Context,
	id kernel.UUID,
	status order.Status,
	reason string,
) error {
	args := m.Called(ctx, id, status, reason)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllActive(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}
