package ports

import (
	"context"

	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/session"
)

// SessionStore owns the live shopper sessions and serializes access to each
// one: two operations for the same session never run concurrently, while
// operations on different sessions may.
type SessionStore interface {
	// Do runs fn against the session with the given id, creating the
	// session on first use. fn runs with the session's lock held, so it
	// must not block on remote calls.
	Do(ctx context.Context, id kernel.UUID, fn func(s *session.Session) error) error

	// Range runs fn for every live session, taking each session's lock in
	// turn. Used by background jobs that snapshot session state.
	Range(ctx context.Context, fn func(s *session.Session) error) error
}
