package core

import (
	"context"

	"github.com/krthik777/nutritrackBackend/internal/models"
)

// ProfileService defines profile operations keyed by owner email.
type ProfileService interface {
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	// Upsert fully replaces the profile for its email, or inserts it if
	// none exists. Returns the stored profile.
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	HasDetails(ctx context.Context, email string) (bool, error)
}

// AllergenService defines allergen operations.
type AllergenService interface {
	ListByEmail(ctx context.Context, email string) ([]models.Allergen, error)
	Create(ctx context.Context, allergen *models.Allergen) (*models.Allergen, error)
	// Delete removes the allergen with the given hex identifier. A
	// malformed id is ErrInvalidID, an absent one ErrRecordNotFound.
	Delete(ctx context.Context, id string) error
}

// MealPlanService defines meal-plan operations.
type MealPlanService interface {
	ListByEmail(ctx context.Context, email string) ([]models.MealPlan, error)
	Create(ctx context.Context, meal *models.MealPlan) (*models.MealPlan, error)
}

// FoodLogService defines food-log operations and the weekly summary.
type FoodLogService interface {
	ListByEmail(ctx context.Context, email string) ([]models.FoodLog, error)
	Create(ctx context.Context, entry *models.FoodLog) (*models.FoodLog, error)
	// WeeklyCalories returns exactly 7 day totals, Sunday through
	// Saturday, for the current calendar week. Days with no logs are
	// zero-filled, never absent.
	WeeklyCalories(ctx context.Context, email string) ([]models.DayCalories, error)
}

// UploadService forwards an in-memory file to the external image host and
// returns a fully-qualified URL for the stored file.
type UploadService interface {
	Upload(ctx context.Context, content []byte, filename, contentType string) (string, error)
}
