package commands

import (
	"errors"

	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to turn a session's completed
// checkout into a placed order.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit the order.
func NewSubmitOrderCommand(sessionID kernel.UUID) (SubmitOrderCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return SubmitOrderCommand{}, err
	}

	return SubmitOrderCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c SubmitOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}
