package commands

import (
	"context"

	"neushop/internal/core/domain/model/checkout"
	"neushop/internal/core/domain/model/session"
	"neushop/internal/core/ports"
)

// RetreatCheckoutCommandHandler moves a session's checkout one step back.
type RetreatCheckoutCommandHandler struct {
	sessions ports.SessionStore
}

// NewRetreatCheckoutCommandHandler creates a handler for checkout retreats.
func NewRetreatCheckoutCommandHandler(sessions ports.SessionStore) RetreatCheckoutCommandHandler {
	return RetreatCheckoutCommandHandler{sessions: sessions}
}

// Handle retreats the checkout and returns the step reached.
func (h *RetreatCheckoutCommandHandler) Handle(ctx context.Context, cmd RetreatCheckoutCommand) (checkout.Step, error) {
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
		if err = ck.Retreat(); err != nil {
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
