package queries

import (
	"errors"

	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the current cart of a session.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for a session's cart.
func NewGetCartQuery(sessionID kernel.UUID) (GetCartQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (q GetCartQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// CartLineResponse is one line of a cart projection.
type CartLineResponse struct {
	ProductID string
	Name      string
	UnitPrice kernel.Money
	Quantity  int
	Color     string
	Size      string
	ImageURL  string
	Subtotal  kernel.Money
}

// GetCartQueryResponse is the cart projection returned to callers.
type GetCartQueryResponse struct {
	SessionID kernel.UUID
	Lines     []CartLineResponse
	Total     kernel.Money
}
