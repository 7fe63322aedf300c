package commands

import (
	"errors"

	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a request to add a catalog item to a
// session's cart. Adding an item the cart already holds under the same
// (product, variant) identity increments that line's quantity.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	line      cart.Line

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add an item to a cart.
// The line construction validates product ID and name and clamps the
// quantity to at least 1.
func NewAddCartItemCommand(
	sessionID kernel.UUID,
	productID, name string,
	unitPrice kernel.Money,
	quantity int,
	variant cart.Variant,
	imageURL string,
) (AddCartItemCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return AddCartItemCommand{}, err
	}

	line, err := cart.NewLine(productID, name, unitPrice, quantity, variant, imageURL)
	if err != nil {
		return AddCartItemCommand{}, err
	}

	return AddCartItemCommand{
		sessionID: sessionID,
		line:      line,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c AddCartItemCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Line returns the cart line to add.
func (c AddCartItemCommand) Line() cart.Line {
	return c.line
}
