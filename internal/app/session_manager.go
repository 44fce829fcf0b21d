// Package app holds the application services and business logic.
package app

import (
	"context"
	"fmt"
	"time"

	"profileboard/internal/domain"

	"github.com/google/uuid"
)

// SessionManager owns the session token lifecycle on top of the key-value
// store. Expiry is enforced twice: the store evicts the entry via its TTL,
// and Validate rejects a record whose stored deadline has passed even if the
// store has not evicted it yet.
type SessionManager struct {
	kv       domain.KeyValueStore
	duration time.Duration
}

// NewSessionManager creates a session manager issuing sessions that live for
// the given duration.
func NewSessionManager(kv domain.KeyValueStore, duration time.Duration) *SessionManager {
	return &SessionManager{kv: kv, duration: duration}
}

// Create issues a new session for username and returns the opaque token.
func (m *SessionManager) Create(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()
	now := time.Now()

	session := domain.Session{
		Username: username,
		Created:  now.UnixMilli(),
		Expires:  now.Add(m.duration).UnixMilli(),
	}
	if err := m.kv.PutJSON(ctx, domain.SessionKeyPrefix+token, session, m.duration); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// Validate resolves a token to its session. It returns ErrSessionNotFound for
// an empty or unknown token and ErrSessionExpired when the stored deadline
// has passed. Validate has no side effects.
func (m *SessionManager) Validate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	var session domain.Session
	ok, err := m.kv.GetJSON(ctx, domain.SessionKeyPrefix+token, &session)
	if err != nil {
		return nil, fmt.Errorf("validate session: %w", err)
	}
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Expires <= time.Now().UnixMilli() {
		return nil, ErrSessionExpired
	}

	session.Token = token
	return &session, nil
}

// Destroy deletes the session entry. Destroying an empty or unknown token is
// not an error.
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.kv.Delete(ctx, domain.SessionKeyPrefix+token); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
