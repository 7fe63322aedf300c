package session

import (
	"errors"

	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/checkout"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/pkg/errs"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session instance was not
	// created through the NewSession factory method.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrCheckoutNotStarted is returned when a checkout operation is
	// attempted before BeginCheckout.
	ErrCheckoutNotStarted = errors.New("checkout has not been started")
)

// Session is the aggregate root for one shopper session. It owns the cart,
// the checkout once begun, and the in-flight submission flag.
//
// Session follows these invariants:
//   - A session always has a cart; it starts empty.
//   - At most one checkout exists at a time; a submitted checkout is
//     replaced on the next BeginCheckout.
//   - At most one order submission is in flight per session.
//
// The aggregate itself is not goroutine safe; the session store serializes
// access per session.
type Session struct {
	// id is the unique identifier for the session
	id kernel.UUID

	cart     *cart.Cart
	checkout *checkout.Checkout

	// inFlight marks a submission between its begin and finish
	inFlight bool

	// isConstructed ensures the session was created via NewSession
	isConstructed bool
}

// NewSession creates a session with an empty cart and no checkout.
func NewSession(id kernel.UUID) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		id:            id,
		cart:          cart.NewCart(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Session instance was properly constructed.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// Cart returns the session's cart aggregate.
func (s *Session) Cart() *cart.Cart {
	return s.cart
}

// BeginCheckout starts a checkout for the current cart, or returns the one
// already in progress. A checkout that reached its submitted step does not
// block a new purchase: it is replaced. An empty cart is rejected with
// checkout.ErrCartIsEmpty.
func (s *Session) BeginCheckout() (*checkout.Checkout, error) {
	if s.checkout != nil && s.checkout.Step() != checkout.StepSubmitted {
		return s.checkout, nil
	}

	ck, err := checkout.NewCheckout(s.cart)
	if err != nil {
		return nil, err
	}

	s.checkout = ck
	return ck, nil
}

// Checkout returns the checkout in progress, or ErrCheckoutNotStarted when
// BeginCheckout has not been called.
func (s *Session) Checkout() (*checkout.Checkout, error) {
	if s.checkout == nil {
		return nil, ErrCheckoutNotStarted
	}
	return s.checkout, nil
}

// InFlight reports whether an order submission is currently in flight.
func (s *Session) InFlight() bool {
	return s.inFlight
}

// EnsureMutable rejects cart and checkout mutations while an order
// submission is in flight. The snapshot handed to the order backend must
// stay the state the shopper confirmed until the submission settles.
func (s *Session) EnsureMutable() error {
	if s.inFlight {
		return errs.ErrSubmissionConflict
	}
	return nil
}

// BeginSubmission claims the session's single submission slot. A second
// submission while one is in flight fails with errs.ErrSubmissionConflict
// and changes nothing.
func (s *Session) BeginSubmission() error {
	if s.inFlight {
		return errs.ErrSubmissionConflict
	}
	if s.checkout == nil {
		return ErrCheckoutNotStarted
	}
	if err := s.checkout.ValidateForSubmission(); err != nil {
		return err
	}

	s.inFlight = true
	return nil
}

// EndSubmission releases the submission slot after a failed placement. Cart
// and checkout are left untouched so the shopper can retry.
func (s *Session) EndSubmission() {
	s.inFlight = false
}

// CompleteSubmission settles a successful placement: the checkout is marked
// submitted, the cart is cleared, and the submission slot is released. The
// slot is released even when settling fails; the submission attempt is over
// either way, and a held slot would block every future submission.
func (s *Session) CompleteSubmission() error {
	s.inFlight = false

	if s.checkout == nil {
		return ErrCheckoutNotStarted
	}
	if err := s.checkout.MarkSubmitted(); err != nil {
		return err
	}

	s.cart.Clear()
	return nil
}
