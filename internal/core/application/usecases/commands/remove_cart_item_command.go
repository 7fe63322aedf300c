package commands

import (
	"errors"

	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/pkg/errs"
	"neushop/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to remove a line from a
// session's cart. Removing an absent line is a no-op, not an error.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	productID string
	variant   cart.Variant

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart line.
func NewRemoveCartItemCommand(
	sessionID kernel.UUID,
	productID string,
	variant cart.Variant,
) (RemoveCartItemCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return RemoveCartItemCommand{}, err
	}
	if productID == "" {
		return RemoveCartItemCommand{}, errs.NewValueIsRequiredError("productID")
	}

	return RemoveCartItemCommand{
		sessionID: sessionID,
		productID: productID,
		variant:   variant,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c RemoveCartItemCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// ProductID returns the product identifier of the line to remove.
func (c RemoveCartItemCommand) ProductID() string {
	return c.productID
}

// Variant returns the variant part of the line identity.
func (c RemoveCartItemCommand) Variant() cart.Variant {
	return c.variant
}
