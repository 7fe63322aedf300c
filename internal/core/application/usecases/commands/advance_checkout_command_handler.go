package commands

import (
	"context"

	"neushop/internal/core/domain/model/checkout"
	"neushop/internal/core/domain/model/session"
	"neushop/internal/core/ports"
)

// AdvanceCheckoutCommandHandler stores the provided step data on the
// session's checkout and advances it one step. A validation failure keeps
// both the stored data and the current step.
type AdvanceCheckoutCommandHandler struct {
	sessions ports.SessionStore
}

// NewAdvanceCheckoutCommandHandler creates a handler for checkout advances.
func NewAdvanceCheckoutCommandHandler(sessions ports.SessionStore) AdvanceCheckoutCommandHandler {
	return AdvanceCheckoutCommandHandler{sessions: sessions}
}

// Handle stores the payloads, advances the checkout, and returns the step
// reached.
func (h *AdvanceCheckoutCommandHandler) Handle(ctx context.Context, cmd AdvanceCheckoutCommand) (checkout.Step, error) {
	if err := cmd.Validate(); err != nil {
		return checkout.UnknownStep, err
	}

	var step checkout.Step
	err := h.sessions.Do(ctx, cmd.SessionID(), func(s *session.Session) error {
		if err := s.EnsureMutable(); err != nil {
			return err
		}
		ck, err := s.Checkout()
		if err != nil {
			return err
		}

		if info := cmd.CustomerInfo(); info != nil {
			ck.SetCustomerInfo(*info)
		}
		if info := cmd.ShippingInfo(); info != nil {
			ck.SetShippingInfo(*info)
		}
		if details := cmd.PaymentDetails(); details != nil {
			ck.SetPaymentDetails(*details)
		}

		if err = ck.Advance(); err != nil {
			return err
		}
		step = ck.Step()
		return nil
	})
	if err != nil {
		return checkout.UnknownStep, err
	}

	return step, nil
}
