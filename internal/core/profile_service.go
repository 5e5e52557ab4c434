package core

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krthik777/nutritrackBackend/internal/db"
	"github.com/krthik777/nutritrackBackend/internal/models"
)

type profileService struct {
	profileRepo db.ProfileRepository
}

// NewProfileService creates a ProfileService instance.
func NewProfileService(profileRepo db.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrProfileNotFound, email)
		}
		return nil, fmt.Errorf("failed to get profile for '%s': %w", email, err)
	}
	return profile, nil
}

// Upsert validates the owner email before touching the store, then
// replaces-or-inserts the full document. A duplicate-key fault from the
// unique index (racing raw inserts) surfaces as ErrDuplicateEmail.
func (s *profileService) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	if profile == nil || profile.Email == "" {
		return nil, ErrMissingEmail
	}
	// Discard any client-supplied id: the replacement document must not
	// carry an _id, or Mongo rejects the replace when it differs from the
	// stored one.
	profile.ID = primitive.NilObjectID
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to upsert profile for '%s': %w", profile.Email, err)
	}
	return profile, nil
}

func (s *profileService) HasDetails(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, ErrMissingEmail
	}
	exists, err := s.profileRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to check details for '%s': %w", email, err)
	}
	return exists, nil
}
