package core

import (
	"context"
	"fmt"

	"github.com/krthik777/nutritrackBackend/internal/db"
	"github.com/krthik777/nutritrackBackend/internal/models"
)

type mealPlanService struct {
	mealPlanRepo db.MealPlanRepository
}

// NewMealPlanService creates a MealPlanService instance.
func NewMealPlanService(mealPlanRepo db.MealPlanRepository) MealPlanService {
	return &mealPlanService{mealPlanRepo: mealPlanRepo}
}

func (s *mealPlanService) ListByEmail(ctx context.Context, email string) ([]models.MealPlan, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	meals, err := s.mealPlanRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans for '%s': %w", email, err)
	}
	return meals, nil
}

func (s *mealPlanService) Create(ctx context.Context, meal *models.MealPlan) (*models.MealPlan, error) {
	if meal == nil || meal.Email == "" {
		return nil, ErrMissingEmail
	}
	if err := s.mealPlanRepo.Create(ctx, meal); err != nil {
		return nil, fmt.Errorf("failed to create meal plan for '%s': %w", meal.Email, err)
	}
	return meal, nil
}
