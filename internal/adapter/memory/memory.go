// Package memory implements in-memory adapters for development and testing.
package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"profileboard/internal/domain"
)

// Store implements a mutex-guarded in-memory key-value store. Expiry is
// checked on read; expired entries are pruned lazily, mirroring how the
// external store evicts entries by TTL.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
}

type entry struct {
	data     []byte
	deadline time.Time // zero means no expiry
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{entries: make(map[string]entry)}
}

// Ensure interfaces are met.
var _ domain.KeyValueStore = (*Store)(nil)
var _ domain.ProfileRepository = (*ProfileRepo)(nil)

// GetJSON decodes the value stored under key into out. A missing or expired
// key reports (false, nil).
func (s *Store) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false, nil
	}
	if !e.deadline.IsZero() && time.Now().After(e.deadline) {
		delete(s.entries, key)
		return false, nil
	}
	if err := json.Unmarshal(e.data, out); err != nil {
		return false, err
	}
	return true, nil
}

// PutJSON stores v under key, expiring after ttl when ttl is positive.
func (s *Store) PutJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var deadline time.Time
	if ttl > 0 {
		deadline = time.Now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{data: b, deadline: deadline}
	return nil
}

// Delete removes the entry under key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// --- ProfileRepository ---

// ProfileRepo stores the whole profile sequence as one JSON array under
// domain.ProfilesKey.
type ProfileRepo struct {
	store *Store
}

// NewProfileRepo creates a profile repository backed by the store.
func (s *Store) NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{store: s}
}

// List returns the stored profile sequence.
func (r *ProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	if _, err := r.store.GetJSON(ctx, domain.ProfilesKey, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Append adds p to the stored sequence. The store lock is held across the
// read-modify-write so concurrent appends cannot lose updates.
func (r *ProfileRepo) Append(ctx context.Context, p domain.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var profiles []domain.Profile
	if e, ok := r.store.entries[domain.ProfilesKey]; ok {
		if err := json.Unmarshal(e.data, &profiles); err != nil {
			return err
		}
	}
	profiles = append(profiles, p)

	b, err := json.Marshal(profiles)
	if err != nil {
		return err
	}
	r.store.entries[domain.ProfilesKey] = entry{data: b}
	return nil
}
