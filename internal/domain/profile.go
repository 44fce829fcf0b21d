// Package domain contains the core business entities and ports.
package domain

import "context"

// ProfilesKey is the store key holding the full profile sequence.
const ProfilesKey = "profiles"

// Profile is a displayed person record. The whole sequence is stored as a
// single JSON array under ProfilesKey; there is no per-profile key.
type Profile struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Avatar       string   `json:"avatar"`
	Contact      string   `json:"contact"`
	Tags         []string `json:"tags"`
	Achievements string   `json:"achievements"`
}

// ProfileRepository defines the port for profile persistence. Append must be
// atomic with respect to concurrent appends so no addition is lost.
type ProfileRepository interface {
	List(ctx context.Context) ([]Profile, error)
	Append(ctx context.Context, p Profile) error
}
