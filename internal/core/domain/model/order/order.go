package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/checkout"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Actor identifies who is requesting an order-status transition. Shoppers
// may only settle their own orders (cancel or return); staff may drive every
// transition in the table.
type Actor int

const (
	// ActorUnknown represents an invalid or undefined actor.
	ActorUnknown Actor = iota

	// ActorShopper is the customer who placed the order.
	ActorShopper

	// ActorStaff is a storefront operator.
	ActorStaff
)

// String returns the lower-case actor name. Implements fmt.Stringer.
func (a Actor) String() string {
	switch a {
	case ActorShopper:
		return "shopper"
	case ActorStaff:
		return "staff"
	default:
		return "unknown"
	}
}

// Validate checks if the Actor value is valid.
func (a Actor) Validate() error {
	if a != ActorShopper && a != ActorStaff {
		return errs.NewValueIsInvalidError("actor is invalid")
	}
	return nil
}

// ActorFromString parses an actor name case-insensitively.
func ActorFromString(s string) (Actor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shopper":
		return ActorShopper, nil
	case "staff":
		return ActorStaff, nil
	default:
		return ActorUnknown, errs.NewValueIsInvalidErrorWithCause(
			"actor is invalid",
			fmt.Errorf("%q is not a valid actor", s),
		)
	}
}

// mayRequest reports whether the actor is allowed to target the given
// status at all, before the transition table is consulted.
func (a Actor) mayRequest(target Status) bool {
	if a == ActorStaff {
		return true
	}
	return target == Cancelled || target == Returned
}

// Order is the aggregate root for a placed order. It is owned by the order
// backend once created; the storefront holds a read/transition-request view.
//
// Order follows these invariants:
//   - Created in pending status with at least one item line.
//   - Total equals subtotal plus tax.
//   - Payment details are stored redacted of secrets.
//   - Status changes only through validated table transitions.
//   - Can only be created through NewOrder or RestoreOrder.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// lines is the immutable item snapshot captured at submission
	lines []cart.Line

	// shipping is the delivery address
	shipping checkout.ShippingInfo

	// payment is the redacted payment descriptor
	payment checkout.PaymentDetails

	subtotal kernel.Money
	tax      kernel.Money
	total    kernel.Money

	// status is the current lifecycle state
	status Status

	// paymentStatus tracks the charge independently of fulfilment
	paymentStatus PaymentStatus

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a pending order from a validated submission payload.
// The payment descriptor is redacted before it is stored on the aggregate.
//
// Example:
//
//	payload, _ := NewSubmissionPayload(lines, shipping, payment, subtotal, tax, total)
//	o, err := NewOrder(kernel.NewUUID(), payload, time.Now().UTC())
func NewOrder(id kernel.UUID, payload SubmissionPayload, now time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		lines:         payload.Items(),
		shipping:      payload.ShippingInfo(),
		payment:       payload.PaymentDetails().Redacted(),
		subtotal:      payload.Subtotal(),
		tax:           payload.Tax(),
		total:         payload.Total(),
		status:        Pending,
		paymentStatus: PaymentUnpaid,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. All fields are taken
// as stored; status and payment status must still be valid enum members.
func RestoreOrder(
	id kernel.UUID,
	lines []cart.Line,
	shipping checkout.ShippingInfo,
	payment checkout.PaymentDetails,
	subtotal, tax, total kernel.Money,
	status Status,
	paymentStatus PaymentStatus,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrPayloadHasNoItems
	}

	snapshot := make([]cart.Line, len(lines))
	copy(snapshot, lines)

	return &Order{
		id:            id,
		lines:         snapshot,
		shipping:      shipping,
		payment:       payment,
		subtotal:      subtotal,
		tax:           tax,
		total:         total,
		status:        status,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Lines returns a copy of the order's item snapshot.
func (o *Order) Lines() []cart.Line {
	lines := make([]cart.Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// ShippingInfo returns the delivery address.
func (o *Order) ShippingInfo() checkout.ShippingInfo {
	return o.shipping
}

// PaymentDetails returns the redacted payment descriptor.
func (o *Order) PaymentDetails() checkout.PaymentDetails {
	return o.payment
}

// Subtotal returns the item subtotal at submission time.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Tax returns the tax amount at submission time.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Total returns subtotal plus tax.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// MarkPaid records a captured charge. Only unpaid orders can become paid.
func (o *Order) MarkPaid(now time.Time) error {
	if o.paymentStatus != PaymentUnpaid {
		return errs.NewValueIsInvalidError("order is not awaiting payment")
	}
	o.paymentStatus = PaymentPaid
	o.updatedAt = now
	return nil
}

// ChangeStatus applies a validated lifecycle transition.
//
// Rules enforced, in order:
//   - target must be a valid status and (status, target) must appear in the
//     transition table, otherwise InvalidTransitionError;
//   - shoppers may only request cancellation or return;
//   - cancelled and returned require a non-empty reason.
//
// A paid order settling to cancelled or returned is marked refunded.
// On any rule failure no state changes, local or otherwise.
func (o *Order) ChangeStatus(target Status, actor Actor, reason string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if !actor.mayRequest(target) {
		return errs.NewFieldValidationError("actor", "shoppers may only cancel or return an order")
	}
	if target.RequiresReason() && reason == "" {
		return errs.NewFieldValidationError("reason", "is required for "+target.String())
	}

	o.status = newStatus
	if target.RequiresReason() && o.paymentStatus == PaymentPaid {
		o.paymentStatus = PaymentRefunded
	}
	o.updatedAt = now
	return nil
}

// StatusChange is a tentative, locally applied transition awaiting the
// remote outcome. Commit keeps the optimistic state; Rollback restores the
// exact prior status, payment status, and timestamp.
type StatusChange struct {
	order *Order

	prevStatus        Status
	prevPaymentStatus PaymentStatus
	prevUpdatedAt     time.Time

	settled bool
}

// BeginStatusChange validates and tentatively applies the transition,
// returning a handle to commit or roll it back once the remote call
// resolves. The validation rules are those of ChangeStatus.
func (o *Order) BeginStatusChange(target Status, actor Actor, reason string, now time.Time) (*StatusChange, error) {
	change := &StatusChange{
		order:             o,
		prevStatus:        o.status,
		prevPaymentStatus: o.paymentStatus,
		prevUpdatedAt:     o.updatedAt,
	}

	if err := o.ChangeStatus(target, actor, reason, now); err != nil {
		return nil, err
	}

	return change, nil
}

// Commit finalizes the optimistic transition after remote success.
func (c *StatusChange) Commit() {
	c.settled = true
}

// Rollback restores the order to its state before the tentative transition.
// Called when the remote update fails. Safe to call at most once; a settled
// change is left alone.
func (c *StatusChange) Rollback() {
	if c.settled {
		return
	}

	c.order.status = c.prevStatus
	c.order.paymentStatus = c.prevPaymentStatus
	c.order.updatedAt = c.prevUpdatedAt
	c.settled = true
}
