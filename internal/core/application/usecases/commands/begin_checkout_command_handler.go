package commands

import (
	"context"

	"neushop/internal/core/domain/model/checkout"
	"neushop/internal/core/domain/model/session"
	"neushop/internal/core/ports"
)

// BeginCheckoutCommandHandler starts a checkout for the session's cart, or
// resumes the one already in progress. Beginning with an empty cart fails
// with checkout.ErrCartIsEmpty.
type BeginCheckoutCommandHandler struct {
	sessions ports.SessionStore
}

// NewBeginCheckoutCommandHandler creates a handler for beginning checkout.
func NewBeginCheckoutCommandHandler(sessions ports.SessionStore) BeginCheckoutCommandHandler {
	return BeginCheckoutCommandHandler{sessions: sessions}
}

// Handle begins (or resumes) checkout and returns the step it is at.
func (h *BeginCheckoutCommandHandler) Handle(ctx context.Context, cmd BeginCheckoutCommand) (checkout.Step, error) {
	if err := cmd.Validate(); err != nil {
		return checkout.UnknownStep, err
	}

	var step checkout.Step
	err := h.sessions.Do(ctx, cmd.SessionID(), func(s *session.Session) error {
		if err := s.EnsureMutable(); err != nil {
			return err
		}
		ck, err := s.BeginCheckout()
		if err != nil {
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
