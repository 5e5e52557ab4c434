package core

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krthik777/nutritrackBackend/internal/db"
	"github.com/krthik777/nutritrackBackend/internal/models"
)

type allergenService struct {
	allergenRepo db.AllergenRepository
}

// NewAllergenService creates an AllergenService instance.
func NewAllergenService(allergenRepo db.AllergenRepository) AllergenService {
	return &allergenService{allergenRepo: allergenRepo}
}

func (s *allergenService) ListByEmail(ctx context.Context, email string) ([]models.Allergen, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	allergens, err := s.allergenRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list allergens for '%s': %w", email, err)
	}
	return allergens, nil
}

func (s *allergenService) Create(ctx context.Context, allergen *models.Allergen) (*models.Allergen, error) {
	if allergen == nil || allergen.Email == "" {
		return nil, ErrMissingEmail
	}
	if err := s.allergenRepo.Create(ctx, allergen); err != nil {
		return nil, fmt.Errorf("failed to create allergen for '%s': %w", allergen.Email, err)
	}
	return allergen, nil
}

// Delete distinguishes a malformed identifier (client error) from a
// well-formed one that matches no record (not found).
func (s *allergenService) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: '%s'", ErrInvalidID, id)
	}
	if err := s.allergenRepo.DeleteByID(ctx, objectID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: allergen '%s'", ErrRecordNotFound, id)
		}
		return fmt.Errorf("failed to delete allergen '%s': %w", id, err)
	}
	return nil
}
