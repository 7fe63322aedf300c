package commands

import (
	"errors"

	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/pkg/guard"
)

var ErrBeginCheckoutCommandIsNotConstructed = errors.New(
	"BeginCheckoutCommand must be created via NewBeginCheckoutCommand constructor",
)

// BeginCheckoutCommand represents a request to start the checkout flow for a
// session's cart.
type BeginCheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBeginCheckoutCommand creates a command to begin checkout.
func NewBeginCheckoutCommand(sessionID kernel.UUID) (BeginCheckoutCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return BeginCheckoutCommand{}, err
	}

	return BeginCheckoutCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BeginCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrBeginCheckoutCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c BeginCheckoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}
