package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/krthik777/nutritrackBackend/internal/models"
)

// mongoProfileRepository implements ProfileRepository on top of the shared Store.
type mongoProfileRepository struct {
	store *Store
}

// NewProfileRepository creates a ProfileRepository backed by Mongo.
func NewProfileRepository(store *Store) ProfileRepository {
	return &mongoProfileRepository{store: store}
}

func (r *mongoProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.store.collection(profileCollection).FindOne(ctx, bson.M{"email": email}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("profile for '%s': %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile for '%s': %w", email, err)
	}
	return &profile, nil
}

// Upsert replaces the document matching the profile's email, inserting it
// when absent. The unique index on email is the backstop: if two inserts
// for the same new email race, Mongo fails one with a duplicate-key error,
// which is surfaced as ErrDuplicateKey.
func (r *mongoProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	_, err := r.store.collection(profileCollection).ReplaceOne(
		ctx,
		bson.M{"email": profile.Email},
		profile,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("profile for '%s': %w", profile.Email, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to upsert profile for '%s': %w", profile.Email, err)
	}
	return nil
}

func (r *mongoProfileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.store.collection(profileCollection).CountDocuments(
		ctx,
		bson.M{"email": email},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("failed to check profile existence for '%s': %w", email, err)
	}
	return count > 0, nil
}
