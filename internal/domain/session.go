package domain

import (
	"context"
	"time"
)

// SessionKeyPrefix prefixes every session entry in the key-value store.
const SessionKeyPrefix = "session:"

// Session represents an active admin session. Created and Expires are Unix
// milliseconds, matching the stored JSON layout. The token is the key suffix
// and is not part of the stored value.
type Session struct {
	Token    string `json:"-"`
	Username string `json:"username"`
	Created  int64  `json:"created"`
	Expires  int64  `json:"expires"`
}

// ExpiresAt returns the expiry deadline as a time.Time.
func (s *Session) ExpiresAt() time.Time {
	return time.UnixMilli(s.Expires)
}

// KeyValueStore defines the port for the external key-value service. Values
// are JSON documents; a zero ttl stores the entry without expiry. GetJSON
// reports a missing (or expired) key as (false, nil), not as an error.
type KeyValueStore interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	PutJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
