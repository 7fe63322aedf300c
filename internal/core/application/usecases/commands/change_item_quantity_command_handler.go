package commands

import (
	"context"

	"neushop/internal/core/domain/model/session"
	"neushop/internal/core/ports"
)

// ChangeItemQuantityCommandHandler sets the quantity of a cart line,
// removing it when the quantity is zero.
type ChangeItemQuantityCommandHandler struct {
	sessions ports.SessionStore
}

// NewChangeItemQuantityCommandHandler creates a handler for quantity changes.
func NewChangeItemQuantityCommandHandler(sessions ports.SessionStore) ChangeItemQuantityCommandHandler {
	return ChangeItemQuantityCommandHandler{sessions: sessions}
}

// Handle applies the quantity change to the session's cart.
func (h *ChangeItemQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeItemQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Do(ctx, cmd.SessionID(), func(s *session.Session) error {
		if err := s.EnsureMutable(); err != nil {
			return err
		}
		s.Cart().ChangeQuantity(cmd.ProductID(), cmd.Variant(), cmd.Quantity())
		return nil
	})
}
