package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krthik777/nutritrackBackend/internal/models"
)

// Sentinel errors shared by all repositories. Services discriminate on
// these with errors.Is and translate them into the API taxonomy.
var (
	// ErrNotFound is returned when a query matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// ProfileRepository defines storage operations for user profiles.
type ProfileRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	// Upsert atomically replaces the profile for its email, or inserts it
	// if none exists. The stored document is fully replaced, never merged.
	Upsert(ctx context.Context, profile *models.Profile) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AllergenRepository defines storage operations for allergen entries.
type AllergenRepository interface {
	ListByEmail(ctx context.Context, email string) ([]models.Allergen, error)
	Create(ctx context.Context, allergen *models.Allergen) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// MealPlanRepository defines storage operations for meal-plan entries.
type MealPlanRepository interface {
	ListByEmail(ctx context.Context, email string) ([]models.MealPlan, error)
	Create(ctx context.Context, meal *models.MealPlan) error
}

// FoodLogRepository defines storage operations for food-log entries.
type FoodLogRepository interface {
	ListByEmail(ctx context.Context, email string) ([]models.FoodLog, error)
	Create(ctx context.Context, entry *models.FoodLog) error
	// ListByEmailBetween returns the owner's entries whose timestamp lies
	// in [start, end], both bounds inclusive.
	ListByEmailBetween(ctx context.Context, email string, start, end time.Time) ([]models.FoodLog, error)
}
