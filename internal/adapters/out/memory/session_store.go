// Package memory provides the in-process session store. Sessions live for
// the process lifetime; the remote cart mirror is a best-effort copy, never
// the source of truth.
package memory

import (
	"context"
	"sync"

	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/session"
)

// SessionStore keeps live shopper sessions in memory and serializes access
// per session: operations on the same session run one at a time, operations
// on different sessions run concurrently.
type SessionStore struct {
	mu      sync.RWMutex
	entries map[kernel.UUID]*entry
}

type entry struct {
	mu      sync.Mutex
	session *session.Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{entries: make(map[kernel.UUID]*entry)}
}

// Do runs fn against the session with the given id, creating the session on
// first use. The session's lock is held for the duration of fn.
func (s *SessionStore) Do(ctx context.Context, id kernel.UUID, fn func(sess *session.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e, err := s.entry(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Range runs fn for every live session, taking each session's lock in turn.
func (s *SessionStore) Range(ctx context.Context, fn func(sess *session.Session) error) error {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		e.mu.Lock()
		err := fn(e.session)
		e.mu.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}

// entry returns the session entry for id, creating it if needed.
func (s *SessionStore) entry(id kernel.UUID) (*entry, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if ok {
		return e, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok = s.entries[id]; ok {
		return e, nil
	}

	sess, err := session.NewSession(id)
	if err != nil {
		return nil, err
	}

	e = &entry{session: sess}
	s.entries[id] = e
	return e, nil
}
