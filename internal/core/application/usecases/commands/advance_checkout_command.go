package commands

import (
	"errors"

	"neushop/internal/core/domain/model/checkout"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/pkg/guard"
)

var ErrAdvanceCheckoutCommandIsNotConstructed = errors.New(
	"AdvanceCheckoutCommand must be created via NewAdvanceCheckoutCommand constructor",
)

// AdvanceCheckoutCommand represents a request to store step data and move
// the checkout forward. Each optional payload is stored before the advance;
// the step machine validates whichever step it is currently at. Data that
// fails validation stays stored, so a corrected retry only needs the fixed
// fields.
type AdvanceCheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	customer  *checkout.CustomerInfo
	shipping  *checkout.ShippingInfo
	payment   *checkout.PaymentDetails

	guard guard.ConstructorGuard
}

// NewAdvanceCheckoutCommand creates a command to advance the checkout.
// Nil payloads leave previously stored step data untouched.
func NewAdvanceCheckoutCommand(
	sessionID kernel.UUID,
	customer *checkout.CustomerInfo,
	shipping *checkout.ShippingInfo,
	payment *checkout.PaymentDetails,
) (AdvanceCheckoutCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return AdvanceCheckoutCommand{}, err
	}

	return AdvanceCheckoutCommand{
		sessionID: sessionID,
		customer:  customer,
		shipping:  shipping,
		payment:   payment,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceCheckoutCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c AdvanceCheckoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// CustomerInfo returns the customer payload, or nil when not provided.
func (c AdvanceCheckoutCommand) CustomerInfo() *checkout.CustomerInfo {
	return c.customer
}

// ShippingInfo returns the shipping payload, or nil when not provided.
func (c AdvanceCheckoutCommand) ShippingInfo() *checkout.ShippingInfo {
	return c.shipping
}

// PaymentDetails returns the payment payload, or nil when not provided.
func (c AdvanceCheckoutCommand) PaymentDetails() *checkout.PaymentDetails {
	return c.payment
}
