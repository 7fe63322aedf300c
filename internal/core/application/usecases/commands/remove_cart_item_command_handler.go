package commands

import (
	"context"

	"neushop/internal/core/domain/model/session"
	"neushop/internal/core/ports"
)

// RemoveCartItemCommandHandler removes a line from a session's cart.
type RemoveCartItemCommandHandler struct {
	sessions ports.SessionStore
}

// NewRemoveCartItemCommandHandler creates a handler for cart removals.
func NewRemoveCartItemCommandHandler(sessions ports.SessionStore) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{sessions: sessions}
}

// Handle removes the matching line from the session's cart.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Do(ctx, cmd.SessionID(), func(s *session.Session) error {
		if err := s.EnsureMutable(); err != nil {
			return err
		}
		s.Cart().RemoveItem(cmd.ProductID(), cmd.Variant())
		return nil
	})
}
