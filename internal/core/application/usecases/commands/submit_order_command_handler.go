package commands

import (
	"context"

	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/checkout"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/order"
	"neushop/internal/core/domain/model/session"
	"neushop/internal/core/ports"
	"neushop/internal/pkg/errs"
)

// SubmitOrderCommandHandler drives the order submission flow:
//
//  1. Claim the session's single submission slot and snapshot the cart and
//     checkout data under the session lock.
//  2. Re-price the cart through the pricing oracle and place the order,
//     both outside the lock.
//  3. Settle the session: clear the cart and mark the checkout submitted on
//     success, release the slot with everything untouched on failure.
//
// A quote whose subtotal disagrees with the local cart total fails the
// submission with a field validation error on "subtotal": the cart changed
// or the catalog was repriced since the shopper last saw a total.
type SubmitOrderCommandHandler struct {
	sessions ports.SessionStore
	oracle   ports.PricingOracle
	placer   ports.OrderPlacer
}

// NewSubmitOrderCommandHandler creates a handler for order submissions.
func NewSubmitOrderCommandHandler(
	sessions ports.SessionStore,
	oracle ports.PricingOracle,
	placer ports.OrderPlacer,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		sessions: sessions,
		oracle:   oracle,
		placer:   placer,
	}
}

// submissionSnapshot is the session state captured under the lock for the
// remote calls.
type submissionSnapshot struct {
	lines     []cart.Line
	cartTotal kernel.Money
	shipping  checkout.ShippingInfo
	payment   checkout.PaymentDetails
}

// Handle submits the session's checkout as an order and returns the new
// order's identifier. On any failure the cart, checkout data, and step stay
// untouched so the shopper can retry.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var snapshot submissionSnapshot
	err := h.sessions.Do(ctx, cmd.SessionID(), func(s *session.Session) error {
		if err := s.BeginSubmission(); err != nil {
			return err
		}

		ck, err := s.Checkout()
		if err != nil {
			return err
		}

		// Both are present: BeginSubmission validated the checkout.
		shipping, _ := ck.ShippingInfo()
		payment, _ := ck.PaymentDetails()

		snapshot = submissionSnapshot{
			lines:     s.Cart().Lines(),
			cartTotal: s.Cart().TotalAmount(),
			shipping:  shipping,
			payment:   payment,
		}
		return nil
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	orderID, err := h.placeOrder(ctx, snapshot)
	if err != nil {
		if releaseErr := h.sessions.Do(ctx, cmd.SessionID(), func(s *session.Session) error {
			s.EndSubmission()
			return nil
		}); releaseErr != nil {
			return kernel.UUID{}, releaseErr
		}
		return kernel.UUID{}, err
	}

	err = h.sessions.Do(ctx, cmd.SessionID(), func(s *session.Session) error {
		return s.CompleteSubmission()
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	return orderID, nil
}

// placeOrder runs the remote half of the submission: price, assemble the
// payload, and hand it to the order backend.
func (h *SubmitOrderCommandHandler) placeOrder(ctx context.Context, snapshot submissionSnapshot) (kernel.UUID, error) {
	quote, err := h.oracle.PriceCart(ctx, snapshot.lines)
	if err != nil {
		return kernel.UUID{}, errs.NewRemoteFailureError("price cart", err)
	}

	if !quote.Subtotal.IsEqual(snapshot.cartTotal) {
		return kernel.UUID{}, errs.NewFieldValidationError(
			"subtotal",
			"cart total is out of date; review the cart and submit again",
		)
	}

	payload, err := order.NewSubmissionPayload(
		snapshot.lines,
		snapshot.shipping,
		snapshot.payment,
		quote.Subtotal,
		quote.Tax,
		quote.Total(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	placed, err := h.placer.PlaceOrder(ctx, payload)
	if err != nil {
		return kernel.UUID{}, errs.NewRemoteFailureError("place order", err)
	}

	return placed.ID(), nil
}
