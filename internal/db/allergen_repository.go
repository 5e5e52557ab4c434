package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/krthik777/nutritrackBackend/internal/models"
)

type mongoAllergenRepository struct {
	store *Store
}

// NewAllergenRepository creates an AllergenRepository backed by Mongo.
func NewAllergenRepository(store *Store) AllergenRepository {
	return &mongoAllergenRepository{store: store}
}

// ListByEmail returns the owner's allergens in store-native order. No sort
// is applied; callers must not rely on insertion order.
func (r *mongoAllergenRepository) ListByEmail(ctx context.Context, email string) ([]models.Allergen, error) {
	cursor, err := r.store.collection(allergenCollection).Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list allergens for '%s': %w", email, err)
	}
	allergens := []models.Allergen{}
	if err := cursor.All(ctx, &allergens); err != nil {
		return nil, fmt.Errorf("failed to decode allergens for '%s': %w", email, err)
	}
	return allergens, nil
}

func (r *mongoAllergenRepository) Create(ctx context.Context, allergen *models.Allergen) error {
	result, err := r.store.collection(allergenCollection).InsertOne(ctx, allergen)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("allergen for '%s': %w", allergen.Email, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create allergen for '%s': %w", allergen.Email, err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		allergen.ID = id
	}
	return nil
}

// DeleteByID removes exactly the record with the given identifier. A
// well-formed id that matches nothing reports ErrNotFound.
func (r *mongoAllergenRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.store.collection(allergenCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete allergen '%s': %w", id.Hex(), err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("allergen '%s': %w", id.Hex(), ErrNotFound)
	}
	return nil
}
