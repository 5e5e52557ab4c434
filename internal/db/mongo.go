package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/krthik777/nutritrackBackend/internal/config"
)

// Collection names. Kept identical to what the frontend was built against.
const (
	profileCollection  = "profile"
	allergenCollection = "allergens"
	mealPlanCollection = "mealPlanner"
	foodLogCollection  = "foodLog"
)

// Store owns the Mongo client and the application database handle. It is
// created once at startup and injected into the repositories; there is no
// ambient global client.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the shared Mongo connection and verifies it with a
// ping. A failure here is fatal for the process: main logs and exits.
func Connect(ctx context.Context, appConfig *config.Config) (*Store, error) {
	if appConfig == nil {
		return nil, fmt.Errorf("db.Connect: appConfig cannot be nil")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appConfig.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(appConfig.MongoDatabase),
	}, nil
}

// EnsureIndexes creates the unique index on profile.email. CreateOne is
// idempotent for an identical index definition, so this is safe to run on
// every startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(profileCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create unique email index on %s: %w", profileCollection, err)
	}
	return nil
}

// Close disconnects the underlying client. Called once during shutdown.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}
