package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krthik777/nutritrackBackend/internal/models"
)

type mongoMealPlanRepository struct {
	store *Store
}

// NewMealPlanRepository creates a MealPlanRepository backed by Mongo.
func NewMealPlanRepository(store *Store) MealPlanRepository {
	return &mongoMealPlanRepository{store: store}
}

func (r *mongoMealPlanRepository) ListByEmail(ctx context.Context, email string) ([]models.MealPlan, error) {
	cursor, err := r.store.collection(mealPlanCollection).Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans for '%s': %w", email, err)
	}
	meals := []models.MealPlan{}
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, fmt.Errorf("failed to decode meal plans for '%s': %w", email, err)
	}
	return meals, nil
}

func (r *mongoMealPlanRepository) Create(ctx context.Context, meal *models.MealPlan) error {
	result, err := r.store.collection(mealPlanCollection).InsertOne(ctx, meal)
	if err != nil {
		return fmt.Errorf("failed to create meal plan for '%s': %w", meal.Email, err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		meal.ID = id
	}
	return nil
}
