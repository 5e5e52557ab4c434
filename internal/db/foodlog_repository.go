package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krthik777/nutritrackBackend/internal/models"
)

type mongoFoodLogRepository struct {
	store *Store
}

// NewFoodLogRepository creates a FoodLogRepository backed by Mongo.
func NewFoodLogRepository(store *Store) FoodLogRepository {
	return &mongoFoodLogRepository{store: store}
}

func (r *mongoFoodLogRepository) ListByEmail(ctx context.Context, email string) ([]models.FoodLog, error) {
	cursor, err := r.store.collection(foodLogCollection).Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list food logs for '%s': %w", email, err)
	}
	entries := []models.FoodLog{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode food logs for '%s': %w", email, err)
	}
	return entries, nil
}

func (r *mongoFoodLogRepository) Create(ctx context.Context, entry *models.FoodLog) error {
	result, err := r.store.collection(foodLogCollection).InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to create food log for '%s': %w", entry.Email, err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = id
	}
	return nil
}

// ListByEmailBetween selects the owner's entries with timestamp in
// [start, end] inclusive. This is a plain window query; the weekly
// grouping itself happens in the service layer.
func (r *mongoFoodLogRepository) ListByEmailBetween(ctx context.Context, email string, start, end time.Time) ([]models.FoodLog, error) {
	filter := bson.M{
		"email":     email,
		"timestamp": bson.M{"$gte": start, "$lte": end},
	}
	cursor, err := r.store.collection(foodLogCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query food logs for '%s' in window: %w", email, err)
	}
	entries := []models.FoodLog{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode food logs for '%s' in window: %w", email, err)
	}
	return entries, nil
}
