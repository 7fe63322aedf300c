package commands

import (
	"errors"

	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/pkg/errs"
	"neushop/internal/pkg/guard"
)

var ErrChangeItemQuantityCommandIsNotConstructed = errors.New(
	"ChangeItemQuantityCommand must be created via NewChangeItemQuantityCommand constructor",
)

// ChangeItemQuantityCommand represents a request to set the quantity of a
// cart line. A quantity of zero removes the line; changing an absent line is
// a no-op.
type ChangeItemQuantityCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	productID string
	variant   cart.Variant
	quantity  int

	guard guard.ConstructorGuard
}

// NewChangeItemQuantityCommand creates a command to change a line's
// quantity. Negative quantities are rejected; zero means removal.
func NewChangeItemQuantityCommand(
	sessionID kernel.UUID,
	productID string,
	variant cart.Variant,
	quantity int,
) (ChangeItemQuantityCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return ChangeItemQuantityCommand{}, err
	}
	if productID == "" {
		return ChangeItemQuantityCommand{}, errs.NewValueIsRequiredError("productID")
	}
	if quantity < 0 {
		return ChangeItemQuantityCommand{}, errs.NewValueIsInvalidError("quantity must not be negative")
	}

	return ChangeItemQuantityCommand{
		sessionID: sessionID,
		productID: productID,
		variant:   variant,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemQuantityCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c ChangeItemQuantityCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// ProductID returns the product identifier of the line to change.
func (c ChangeItemQuantityCommand) ProductID() string {
	return c.productID
}

// Variant returns the variant part of the line identity.
func (c ChangeItemQuantityCommand) Variant() cart.Variant {
	return c.variant
}

// Quantity returns the new quantity; zero removes the line.
func (c ChangeItemQuantityCommand) Quantity() int {
	return c.quantity
}
