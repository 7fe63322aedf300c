package commands

import (
	"errors"

	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/pkg/guard"
)

var ErrRetreatCheckoutCommandIsNotConstructed = errors.New(
	"RetreatCheckoutCommand must be created via NewRetreatCheckoutCommand constructor",
)

// RetreatCheckoutCommand represents a request to move the checkout one step
// back. Entered data is kept; retreating from the first step stays put.
type RetreatCheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetreatCheckoutCommand creates a command to retreat the checkout.
func NewRetreatCheckoutCommand(sessionID kernel.UUID) (RetreatCheckoutCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return RetreatCheckoutCommand{}, err
	}

	return RetreatCheckoutCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RetreatCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrRetreatCheckoutCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c RetreatCheckoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}
