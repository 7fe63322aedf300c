package commands

import (
	"context"

	"neushop/internal/core/domain/model/session"
	"neushop/internal/core/ports"
)

// AddCartItemCommandHandler adds an item to a session's cart. The mutation
// is local and synchronous; mirroring to the remote cart store happens out
// of band.
type AddCartItemCommandHandler struct {
	sessions ports.SessionStore
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(sessions ports.SessionStore) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{sessions: sessions}
}

// Handle adds the command's line to the session's cart, merging with an
// existing line of the same identity.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Do(ctx, cmd.SessionID(), func(s *session.Session) error {
		if err := s.EnsureMutable(); err != nil {
			return err
		}
		s.Cart().AddItem(cmd.Line())
		return nil
	})
}
