package app

import (
	"context"
	"errors"
	"strconv"
	"time"

	"profileboard/internal/domain"
)

// ErrProfileNotFound indicates that no profile with the requested id exists.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService reads and appends the shared profile sequence.
type ProfileService struct {
	repo domain.ProfileRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// List returns all stored profiles in insertion order.
func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.repo.List(ctx)
}

// Get returns the profile with the given id, or ErrProfileNotFound.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i], nil
		}
	}
	return nil, ErrProfileNotFound
}

// Add assigns a current-time-derived id and appends the profile to the stored
// sequence. Ids are caller-visible millisecond timestamps; uniqueness is not
// enforced, so two adds within the same millisecond can collide.
func (s *ProfileService) Add(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	p.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	if err := s.repo.Append(ctx, p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}
