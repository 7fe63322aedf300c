package order

import (
	"errors"
	"fmt"

	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/checkout"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/pkg/errs"
	"neushop/internal/pkg/guard"
)

var (
	ErrPayloadIsNotConstructed = errors.New(
		"SubmissionPayload must be created via NewSubmissionPayload constructor",
	)
	ErrPayloadHasNoItems = errors.New("submission payload requires at least one item")
)

// SubmissionPayload is the immutable snapshot handed to the order-placement
// collaborator. It copies the cart lines at submission time so later cart
// mutations cannot affect a submitted order, and it carries the priced
// subtotal/tax/total triple.
//
// Invariants: items is non-empty, total equals subtotal plus tax, and the
// subtotal equals the cart total the quote was computed for.
type SubmissionPayload struct { //nolint:recvcheck //using for validation
	items    []cart.Line
	shipping checkout.ShippingInfo
	payment  checkout.PaymentDetails
	subtotal kernel.Money
	tax      kernel.Money
	total    kernel.Money

	guard guard.ConstructorGuard
}

// NewSubmissionPayload assembles a payload from a cart snapshot and the
// checkout's shipping and payment data. The items slice is copied, not
// referenced. Total must equal subtotal plus tax.
func NewSubmissionPayload(
	items []cart.Line,
	shipping checkout.ShippingInfo,
	payment checkout.PaymentDetails,
	subtotal, tax, total kernel.Money,
) (SubmissionPayload, error) {
	if len(items) == 0 {
		return SubmissionPayload{}, ErrPayloadHasNoItems
	}
	if !total.IsEqual(subtotal.Add(tax)) {
		return SubmissionPayload{}, errs.NewValueIsInvalidErrorWithCause(
			"total is invalid",
			fmt.Errorf("%s does not equal subtotal %s plus tax %s", total, subtotal, tax),
		)
	}

	snapshot := make([]cart.Line, len(items))
	copy(snapshot, items)

	return SubmissionPayload{
		items:    snapshot,
		shipping: shipping,
		payment:  payment,
		subtotal: subtotal,
		tax:      tax,
		total:    total,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the payload was created through the constructor.
func (p SubmissionPayload) Validate() error {
	return p.guard.Validate(ErrPayloadIsNotConstructed)
}

// Items returns a copy of the item snapshot.
func (p SubmissionPayload) Items() []cart.Line {
	items := make([]cart.Line, len(p.items))
	copy(items, p.items)
	return items
}

// ShippingInfo returns the delivery address for the order.
func (p SubmissionPayload) ShippingInfo() checkout.ShippingInfo {
	return p.shipping
}

// PaymentDetails returns the payment descriptor as entered at checkout.
// Redaction happens when the order is created, not here: the placement
// collaborator may need the full descriptor for the charge.
func (p SubmissionPayload) PaymentDetails() checkout.PaymentDetails {
	return p.payment
}

// Subtotal returns the cart total the quote was computed for.
func (p SubmissionPayload) Subtotal() kernel.Money {
	return p.subtotal
}

// Tax returns the oracle-computed tax amount.
func (p SubmissionPayload) Tax() kernel.Money {
	return p.tax
}

// Total returns subtotal plus tax.
func (p SubmissionPayload) Total() kernel.Money {
	return p.total
}
