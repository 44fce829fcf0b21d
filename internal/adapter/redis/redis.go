// Package adaptredis implements the key-value store and profile repository on
// top of a Redis server.
package adaptredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"profileboard/internal/domain"

	"github.com/redis/go-redis/v9"
)

// appendRetries bounds the optimistic retry loop in Append.
const appendRetries = 32

// Store is a Redis-backed key-value store.
type Store struct {
	client *redis.Client
}

// Open connects to the Redis server at url and verifies the connection.
func Open(ctx context.Context, url string) (*Store, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Store{client: client}, nil
}

// NewStore wraps an existing client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure interfaces are met.
var _ domain.KeyValueStore = (*Store)(nil)
var _ domain.ProfileRepository = (*ProfileRepo)(nil)

// GetJSON decodes the value stored under key into out. A missing key reports
// (false, nil).
func (s *Store) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// PutJSON stores v under key. A positive ttl becomes the Redis expiry.
func (s *Store) PutJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, key, b, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes the entry under key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// --- ProfileRepository ---

// ProfileRepo stores the whole profile sequence as one JSON array under
// domain.ProfilesKey.
type ProfileRepo struct {
	client *redis.Client
}

// NewProfileRepo creates a profile repository backed by the same server.
func (s *Store) NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{client: s.client}
}

// List returns the stored profile sequence.
func (r *ProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	b, err := r.client.Get(ctx, domain.ProfilesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profiles: %w", err)
	}

	var profiles []domain.Profile
	if err := json.Unmarshal(b, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return profiles, nil
}

// Append adds p to the stored sequence. The read-modify-write runs inside an
// optimistic transaction watching the profiles key, so a concurrent append
// forces a retry instead of silently overwriting the other write.
func (r *ProfileRepo) Append(ctx context.Context, p domain.Profile) error {
	txn := func(tx *redis.Tx) error {
		b, err := tx.Get(ctx, domain.ProfilesKey).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		var profiles []domain.Profile
		if len(b) > 0 {
			if err := json.Unmarshal(b, &profiles); err != nil {
				return err
			}
		}
		profiles = append(profiles, p)

		out, err := json.Marshal(profiles)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, domain.ProfilesKey, out, 0)
			return nil
		})
		return err
	}

	var err error
	for i := 0; i < appendRetries; i++ {
		err = r.client.Watch(ctx, txn, domain.ProfilesKey)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("append profile: %w", err)
	}
	return nil
}
